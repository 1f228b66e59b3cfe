package domain

import "time"

// MaxHistoryTurns limita la ventana de historial reciente por sesión.
const MaxHistoryTurns = 10

// ConversationTurn registra un intercambio completo usuario/asistente.
type ConversationTurn struct {
	ID              string          `json:"id"`
	Message         string          `json:"message"`
	Response        string          `json:"response"`
	StressLevel     int             `json:"stress_level"`
	Timestamp       time.Time       `json:"timestamp"`
	EmotionAnalysis EmotionAnalysis `json:"emotion_analysis"`
}

// EmotionAnalysis son las etiquetas derivadas del mensaje del usuario.
type EmotionAnalysis struct {
	PrimaryEmotion       string   `json:"primary_emotion"`
	StressLevel          int      `json:"stress_level"`
	EmotionIntensity     float64  `json:"emotion_intensity"`
	RiskAssessment       string   `json:"risk_assessment"`
	PsychologicalMarkers []string `json:"psychological_markers"`
}

// ContextAnalysis resume patrones del historial reciente para el compositor de respuestas.
type ContextAnalysis struct {
	Patterns      []string `json:"patterns"`
	AverageStress *float64 `json:"average_stress,omitempty"`
}

// AppendTurn agrega un turno y descarta los más antiguos por encima de limit.
// No modifica el slice recibido.
func AppendTurn(history []ConversationTurn, turn ConversationTurn, limit int) []ConversationTurn {
	if limit <= 0 {
		limit = MaxHistoryTurns
	}
	out := make([]ConversationTurn, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, turn)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// LastTurn devuelve el turno más reciente, si existe.
func LastTurn(history []ConversationTurn) (ConversationTurn, bool) {
	if len(history) == 0 {
		return ConversationTurn{}, false
	}
	return history[len(history)-1], true
}
