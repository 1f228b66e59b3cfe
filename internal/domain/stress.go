package domain

import "time"

// StressColor es el nivel visual del medidor.
type StressColor string

const (
	StressColorCritical StressColor = "critical"
	StressColorHigh     StressColor = "high"
	StressColorModerate StressColor = "moderate"
	StressColorCalm     StressColor = "calm"
)

const (
	StressLabelCrisis    = "Crisis"
	StressLabelHigh      = "High Stress"
	StressLabelModerate  = "Moderate"
	StressLabelLow       = "Low Stress"
	StressLabelCalm      = "Calm"
	StressAnimationAlert = "warning-pulse"
	StressAnimationPulse = "pulse-stress"
	StressAnimationBeat  = "heartbeat"
	StressAnimationNone  = "none"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

const (
	RecentTrendHigh     = "high_stress"
	RecentTrendModerate = "moderate_stress"
	RecentTrendLow      = "low_stress"
	RecentTrendStable   = "stable"
	RecentTrendNeutral  = "neutral"
)

const (
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
)

// StressDescriptor es lo que consume el medidor de la UI. Se recalcula en cada turno.
type StressDescriptor struct {
	Current    int         `json:"current"`
	Percentage int         `json:"percentage"`
	Color      StressColor `json:"color"`
	Label      string      `json:"label"`
	Animation  string      `json:"animation"`
	Trend      string      `json:"trend"`
}

// IsCrisis indica si la capa de presentación debe mostrar el overlay de emergencia.
func (d StressDescriptor) IsCrisis() bool {
	return d.Label == StressLabelCrisis
}

// StressSummary agrega el historial de estrés de una sesión.
type StressSummary struct {
	CurrentStress int           `json:"current_stress"`
	Trend         string        `json:"trend"`
	RecentTrend   string        `json:"recent_trend"`
	History       []StressPoint `json:"stress_history"`
	AverageStress float64       `json:"average_stress"`
	PeakStress    int           `json:"peak_stress"`
	TurnsCount    int           `json:"sessions_count"`
	LastUpdated   time.Time     `json:"last_updated"`
}

// StressPoint es un punto de la serie mostrada en el monitor.
type StressPoint struct {
	Turn   int       `json:"session"`
	Stress int       `json:"stress"`
	Time   time.Time `json:"time"`
}
