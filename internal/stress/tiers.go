package stress

import (
	"strings"

	"mindcare/internal/domain"
)

// Tiers agrupa las frases de severidad usadas por el estimador.
type Tiers struct {
	High     []string
	Moderate []string
	Mild     []string
	Positive []string
}

var tierByTopic = map[domain.Topic]int{
	domain.TopicTraumaResponse:          tierHigh,
	domain.TopicPanicAttacks:            tierHigh,
	domain.TopicGriefLoss:               tierHigh,
	domain.TopicDepressionSupport:       tierHigh,
	domain.TopicAngerManagement:         tierHigh,
	domain.TopicAnxietyCoping:           tierModerate,
	domain.TopicWorkplaceStress:         tierModerate,
	domain.TopicSocialAnxiety:           tierModerate,
	domain.TopicProcrastination:         tierMild,
	domain.TopicDecisionMaking:          tierMild,
	domain.TopicComparison:              tierMild,
	domain.TopicMindfulnessIntroduction: tierPositive,
	domain.TopicSelfEsteem:              tierPositive,
	domain.TopicBoundarySetting:         tierPositive,
}

const (
	tierHigh = iota
	tierModerate
	tierMild
	tierPositive
	tierCount
)

// Piso fijo de frases: se agregan siempre, aunque el corpus esté vacío.
var (
	fixedHigh = []string{
		"suicide", "kill myself", "end it all", "hopeless", "can't go on",
		"worthless", "hate myself", "no point", "give up", "hurt myself",
	}
	fixedModerate = []string{
		"overwhelmed", "stressed", "anxious", "worried", "panic",
		"scared", "nervous", "tense", "pressure", "burden",
	}
	fixedMild = []string{
		"tired", "frustrated", "annoyed", "bothered", "upset",
		"disappointed", "confused", "uncertain", "restless", "irritated",
	}
	fixedPositive = []string{
		"better", "good", "happy", "grateful", "hopeful",
		"calm", "peaceful", "confident", "excited", "motivated",
	}
)

// BuildTiers arma los niveles a partir de los keywords del corpus más las listas fijas.
// Cada nivel queda en minúsculas y sin duplicados, preservando el primer orden de aparición.
func BuildTiers(entries []domain.TemplateEntry) Tiers {
	var buckets [tierCount][]string
	for _, e := range entries {
		tier, ok := tierByTopic[e.Topic]
		if !ok {
			continue
		}
		buckets[tier] = append(buckets[tier], e.Keywords...)
	}
	buckets[tierHigh] = append(buckets[tierHigh], fixedHigh...)
	buckets[tierModerate] = append(buckets[tierModerate], fixedModerate...)
	buckets[tierMild] = append(buckets[tierMild], fixedMild...)
	buckets[tierPositive] = append(buckets[tierPositive], fixedPositive...)

	return Tiers{
		High:     dedupe(buckets[tierHigh]),
		Moderate: dedupe(buckets[tierModerate]),
		Mild:     dedupe(buckets[tierMild]),
		Positive: dedupe(buckets[tierPositive]),
	}
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// matches devuelve las frases del nivel contenidas en el texto ya en minúsculas.
func matches(lower string, tier []string) []string {
	var hits []string
	for _, phrase := range tier {
		if strings.Contains(lower, phrase) {
			hits = append(hits, phrase)
		}
	}
	return hits
}
