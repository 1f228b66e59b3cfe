package domain

import "strings"

// Topic identifica la categoría terapéutica de una plantilla.
type Topic string

// Technique es la etiqueta de intervención de una plantilla.
type Technique string

// Tone es el estilo de entrega de una plantilla.
type Tone string

const (
	TopicAnxietyCoping           Topic = "anxiety_coping"
	TopicWorkplaceStress         Topic = "workplace_stress"
	TopicDepressionSupport       Topic = "depression_support"
	TopicRelationshipIssues      Topic = "relationship_issues"
	TopicGriefLoss               Topic = "grief_loss"
	TopicAngerManagement         Topic = "anger_management"
	TopicSelfEsteem              Topic = "self_esteem"
	TopicTraumaResponse          Topic = "trauma_response"
	TopicPanicAttacks            Topic = "panic_attacks"
	TopicSocialAnxiety           Topic = "social_anxiety"
	TopicProcrastination         Topic = "procrastination"
	TopicDecisionMaking          Topic = "decision_making"
	TopicComparison              Topic = "comparison"
	TopicMindfulnessIntroduction Topic = "mindfulness_introduction"
	TopicBoundarySetting         Topic = "boundary_setting"
)

const (
	TechniqueActiveListening        Technique = "active_listening"
	TechniqueBriefIntervention      Technique = "brief_intervention"
	TechniquePsychoeducation        Technique = "psychoeducation"
	TechniqueCognitiveRestructuring Technique = "cognitive_restructuring"
	TechniqueGrounding              Technique = "grounding"
	TechniqueBehavioralActivation   Technique = "behavioral_activation"
	TechniqueValidation             Technique = "validation"
	TechniqueSafetyPlanning         Technique = "safety_planning"
)

const (
	ToneEmpatheticSupportive   Tone = "empathetic_supportive"
	ToneUnderstandingPractical Tone = "understanding_practical"
	ToneCrisisSupport          Tone = "crisis_support"
	ToneCalmReassuring         Tone = "calm_reassuring"
	ToneEncouraging            Tone = "encouraging"
)

var knownTopics = map[Topic]struct{}{
	TopicAnxietyCoping: {}, TopicWorkplaceStress: {}, TopicDepressionSupport: {},
	TopicRelationshipIssues: {}, TopicGriefLoss: {}, TopicAngerManagement: {},
	TopicSelfEsteem: {}, TopicTraumaResponse: {}, TopicPanicAttacks: {},
	TopicSocialAnxiety: {}, TopicProcrastination: {}, TopicDecisionMaking: {},
	TopicComparison: {}, TopicMindfulnessIntroduction: {}, TopicBoundarySetting: {},
}

var knownTechniques = map[Technique]struct{}{
	TechniqueActiveListening: {}, TechniqueBriefIntervention: {}, TechniquePsychoeducation: {},
	TechniqueCognitiveRestructuring: {}, TechniqueGrounding: {}, TechniqueBehavioralActivation: {},
	TechniqueValidation: {}, TechniqueSafetyPlanning: {},
}

var knownTones = map[Tone]struct{}{
	ToneEmpatheticSupportive: {}, ToneUnderstandingPractical: {}, ToneCrisisSupport: {},
	ToneCalmReassuring: {}, ToneEncouraging: {},
}

// Known indica si el topic pertenece al vocabulario cerrado.
func (t Topic) Known() bool {
	_, ok := knownTopics[t]
	return ok
}

// Known indica si la técnica pertenece al vocabulario cerrado.
func (t Technique) Known() bool {
	_, ok := knownTechniques[t]
	return ok
}

// Known indica si el tono pertenece al vocabulario cerrado.
func (t Tone) Known() bool {
	_, ok := knownTones[t]
	return ok
}

// Humanize reemplaza guiones bajos por espacios ("grief_loss" -> "grief loss").
func Humanize(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

// TemplateEntry es una respuesta terapéutica preescrita del corpus. Inmutable tras la carga.
type TemplateEntry struct {
	Topic       Topic     `json:"topic"`
	Keywords    []string  `json:"keywords"`
	UserContext string    `json:"user_context"`
	Response    string    `json:"response"`
	Technique   Technique `json:"technique"`
	Tone        Tone      `json:"tone"`
}

// ScoredMatch es una plantilla con su puntaje de similitud para una consulta.
type ScoredMatch struct {
	TemplateEntry
	Similarity int `json:"similarity"`
}

// MatchSummary expone solo metadatos de un match (nunca el texto de la respuesta).
type MatchSummary struct {
	Topic      Topic     `json:"topic"`
	Technique  Technique `json:"technique"`
	Tone       Tone      `json:"tone"`
	Similarity int       `json:"similarity"`
}

// Summary devuelve los metadatos enumerables del match.
func (m ScoredMatch) Summary() MatchSummary {
	return MatchSummary{
		Topic:      m.Topic,
		Technique:  m.Technique,
		Tone:       m.Tone,
		Similarity: m.Similarity,
	}
}
