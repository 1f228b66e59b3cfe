package stress

import (
	"math"
	"strings"
	"time"

	"mindcare/internal/domain"
)

const (
	MinLevel     = 1
	MaxLevel     = 10
	NeutralLevel = 5

	smoothingWindow    = 3
	smoothingThreshold = 3.0
	smoothingFactor    = 0.7
	intensifierStep    = 0.5
)

var intensifiers = []string{"very", "extremely", "really", "so", "incredibly", "absolutely"}

// Hits cuenta las frases encontradas por nivel.
type Hits struct {
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Mild     int `json:"mild"`
	Positive int `json:"positive"`
}

// Assessment es el resultado completo de estimar un mensaje.
type Assessment struct {
	Level      int
	Descriptor domain.StressDescriptor
	Emotion    domain.EmotionAnalysis
	Hits       Hits
}

// Turn arma el turno que el llamador debe agregar al historial de la sesión.
func (a Assessment) Turn(id, message, response string, at time.Time) domain.ConversationTurn {
	return domain.ConversationTurn{
		ID:              id,
		Message:         message,
		Response:        response,
		StressLevel:     a.Level,
		Timestamp:       at,
		EmotionAnalysis: a.Emotion,
	}
}

// Estimator deriva el nivel de estrés de un mensaje. No tiene estado mutable:
// el historial llega como parámetro y la actualización la hace el llamador.
type Estimator struct {
	tiers Tiers
}

func NewEstimator(tiers Tiers) *Estimator {
	return &Estimator{tiers: tiers}
}

// Tiers devuelve los niveles con los que fue construido el estimador.
func (e *Estimator) Tiers() Tiers {
	return e.tiers
}

func (e *Estimator) Estimate(utterance string, history []domain.ConversationTurn) Assessment {
	lower := strings.ToLower(utterance)

	high := matches(lower, e.tiers.High)
	moderate := matches(lower, e.tiers.Moderate)
	mild := matches(lower, e.tiers.Mild)
	positive := matches(lower, e.tiers.Positive)
	hits := Hits{High: len(high), Moderate: len(moderate), Mild: len(mild), Positive: len(positive)}

	base := baseLevel(hits)

	if hits.High > 0 || hits.Moderate > 0 {
		if n := countIntensifiers(lower); n > 0 {
			base = math.Min(base+float64(n)*intensifierStep, MaxLevel)
		}
	}

	if len(history) > 0 {
		mean := recentMean(history)
		if math.Abs(base-mean) > smoothingThreshold {
			base = mean + (base-mean)*smoothingFactor
		}
	}

	level := clamp(roundHalfUp(base))

	prev := 0
	if last, ok := domain.LastTurn(history); ok {
		prev = last.StressLevel
	}

	markers := make([]string, 0, len(high)+len(moderate)+len(mild))
	markers = append(markers, high...)
	markers = append(markers, moderate...)
	markers = append(markers, mild...)

	return Assessment{
		Level:      level,
		Descriptor: Describe(level, prev),
		Emotion: domain.EmotionAnalysis{
			PrimaryEmotion:       primaryEmotion(hits),
			StressLevel:          level,
			EmotionIntensity:     0.5 + float64(level)/20,
			RiskAssessment:       Risk(level),
			PsychologicalMarkers: markers,
		},
		Hits: hits,
	}
}

func baseLevel(h Hits) float64 {
	switch {
	case h.High > 0:
		return math.Min(9+float64(h.High), 10)
	case h.Moderate > 0:
		return math.Min(6+float64(h.Moderate)*1.5, 9)
	case h.Mild > 0:
		return math.Min(4+float64(h.Mild), 7)
	case h.Positive > 0:
		return math.Max(3-float64(h.Positive)*0.5, 1)
	default:
		return NeutralLevel
	}
}

// countIntensifiers cuenta palabras distintas; cada una suma una sola vez.
func countIntensifiers(lower string) int {
	n := 0
	for _, w := range intensifiers {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func recentMean(history []domain.ConversationTurn) float64 {
	recent := history[max(0, len(history)-smoothingWindow):]
	sum := 0
	for _, t := range recent {
		sum += t.StressLevel
	}
	return float64(sum) / float64(len(recent))
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

func primaryEmotion(h Hits) string {
	switch {
	case h.High > 0:
		return "crisis"
	case h.Moderate > 0:
		return "anxious"
	case h.Mild > 0:
		return "distressed"
	case h.Positive > 0:
		return "positive"
	default:
		return "neutral"
	}
}

// Describe arma el descriptor del medidor para un nivel. prev es el nivel del turno
// anterior; 0 significa que no hay turno previo.
func Describe(level, prev int) domain.StressDescriptor {
	level = clamp(level)
	return domain.StressDescriptor{
		Current:    level,
		Percentage: level * 10,
		Color:      Color(level),
		Label:      Label(level),
		Animation:  Animation(level),
		Trend:      Trend(level, prev),
	}
}

func Label(level int) string {
	switch {
	case level >= 9:
		return domain.StressLabelCrisis
	case level >= 7:
		return domain.StressLabelHigh
	case level >= 5:
		return domain.StressLabelModerate
	case level >= 3:
		return domain.StressLabelLow
	default:
		return domain.StressLabelCalm
	}
}

func Color(level int) domain.StressColor {
	switch {
	case level >= 8:
		return domain.StressColorCritical
	case level >= 6:
		return domain.StressColorHigh
	case level >= 4:
		return domain.StressColorModerate
	default:
		return domain.StressColorCalm
	}
}

func Animation(level int) string {
	switch {
	case level >= 8:
		return domain.StressAnimationAlert
	case level >= 6:
		return domain.StressAnimationPulse
	case level >= 4:
		return domain.StressAnimationBeat
	default:
		return domain.StressAnimationNone
	}
}

func Trend(level, prev int) string {
	switch {
	case prev == 0 || level == prev:
		return domain.TrendStable
	case level > prev:
		return domain.TrendIncreasing
	default:
		return domain.TrendDecreasing
	}
}

func Risk(level int) string {
	switch {
	case level >= 8:
		return domain.RiskHigh
	case level >= 6:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
