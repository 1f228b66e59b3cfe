package rag

import "mindcare/internal/domain"

type emotionLexicon struct {
	name  string
	terms []string
}

// emotionLexicons mantiene un orden fijo para que el puntaje sea determinista.
var emotionLexicons = []emotionLexicon{
	{name: "anxiety", terms: []string{"anxious", "worried", "nervous", "panic", "overwhelmed", "stressed", "tense"}},
	{name: "depression", terms: []string{"sad", "depressed", "hopeless", "empty", "worthless", "tired", "exhausted"}},
	{name: "anger", terms: []string{"angry", "frustrated", "furious", "irritated", "mad", "rage", "annoyed"}},
	{name: "fear", terms: []string{"scared", "afraid", "terrified", "frightened", "worried", "anxious"}},
	{name: "grief", terms: []string{"loss", "grief", "mourning", "death", "goodbye", "missing", "gone"}},
	{name: "stress", terms: []string{"pressure", "overwhelmed", "burden", "demanding", "exhausted", "burnout"}},
}

// topicRelevance: términos que, presentes en el mensaje, refuerzan un topic conocido.
var topicRelevance = map[domain.Topic][]string{
	domain.TopicAnxietyCoping:      {"anxiety", "panic", "worry", "overwhelmed", "nervous"},
	domain.TopicWorkplaceStress:    {"work", "job", "career", "boss", "deadline", "pressure"},
	domain.TopicDepressionSupport:  {"sad", "depressed", "hopeless", "empty", "tired"},
	domain.TopicRelationshipIssues: {"relationship", "partner", "marriage", "dating", "love"},
	domain.TopicGriefLoss:          {"loss", "death", "grief", "mourning", "goodbye"},
	domain.TopicAngerManagement:    {"angry", "frustrated", "rage", "mad", "irritated"},
	domain.TopicSelfEsteem:         {"confidence", "self-worth", "insecure", "doubt", "inadequate"},
	domain.TopicTraumaResponse:     {"trauma", "ptsd", "flashback", "triggered", "abuse"},
	domain.TopicPanicAttacks:       {"panic", "attack", "breathing", "heart racing", "dizzy"},
	domain.TopicSocialAnxiety:      {"social", "people", "embarrassed", "judged", "awkward"},
}

var urgencyWords = []string{"urgent", "emergency", "crisis", "immediate", "help", "now"}

var questionPrefixes = []string{"how", "what", "why"}

const (
	weightExactKeyword   = 10
	weightPartialKeyword = 6
	weightContextTerm    = 8
	weightResponseTerm   = 4
	weightEmotion        = 12
	weightTopicTerm      = 15

	bonusLongMessage  = 5
	bonusShortMessage = 5
	bonusUrgency      = 15
	bonusQuestion     = 8

	longMessageWords  = 10
	shortMessageWords = 5
)
