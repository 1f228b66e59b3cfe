package rag

import (
	"strings"

	"mindcare/internal/domain"
)

// preparedEntry guarda lo derivado de una plantilla para no recalcularlo en cada consulta.
type preparedEntry struct {
	entry         domain.TemplateEntry
	keywords      []string
	keywordSet    map[string]struct{}
	contextTerms  []string
	responseTerms []string
	topicTerms    []string
}

func prepare(entry domain.TemplateEntry) preparedEntry {
	keywords := make([]string, 0, len(entry.Keywords))
	for _, k := range entry.Keywords {
		k = strings.ToLower(k)
		if strings.TrimSpace(k) == "" {
			continue
		}
		keywords = append(keywords, k)
	}
	return preparedEntry{
		entry:         entry,
		keywords:      keywords,
		keywordSet:    termSet(keywords),
		contextTerms:  ExtractTerms(entry.UserContext),
		responseTerms: ExtractTerms(entry.Response),
		topicTerms:    topicRelevance[entry.Topic],
	}
}

// query es el mensaje del usuario ya preprocesado, compartido entre todas las plantillas.
type query struct {
	lower     string
	terms     []string
	termSet   map[string]struct{}
	blank     bool
	wordCount int
	urgent    bool
	question  bool
}

func newQuery(utterance string) query {
	lower := strings.ToLower(utterance)
	terms := ExtractTerms(utterance)
	q := query{
		lower:     lower,
		terms:     terms,
		termSet:   termSet(terms),
		blank:     strings.TrimSpace(utterance) == "",
		wordCount: len(strings.Split(utterance, " ")),
		urgent:    containsAny(lower, urgencyWords),
		question:  strings.Contains(utterance, "?"),
	}
	for _, p := range questionPrefixes {
		if strings.HasPrefix(lower, p) {
			q.question = true
			break
		}
	}
	return q
}

// Engine puntúa y selecciona plantillas del corpus. Inmutable y seguro para uso concurrente.
type Engine struct {
	entries []preparedEntry
}

// NewEngine precalcula los datos de cada plantilla una sola vez.
func NewEngine(entries []domain.TemplateEntry) *Engine {
	prepared := make([]preparedEntry, 0, len(entries))
	for _, e := range entries {
		prepared = append(prepared, prepare(e))
	}
	return &Engine{entries: prepared}
}

// Len devuelve la cantidad de plantillas indexadas.
func (e *Engine) Len() int {
	return len(e.entries)
}

// Score calcula la similitud entre el mensaje y una plantilla arbitraria.
func (e *Engine) Score(utterance string, entry domain.TemplateEntry) int {
	return scoreEntry(newQuery(utterance), prepare(entry))
}

func scoreEntry(q query, p preparedEntry) int {
	// Un mensaje vacío no aporta señales; tampoco cuenta como mensaje corto.
	if q.blank {
		return 0
	}
	score := 0

	for _, k := range p.keywords {
		if strings.Contains(q.lower, k) {
			score += weightExactKeyword
		}
	}

	// Cuenta cada par (término, keyword): un término repetido suma varias veces.
	for _, term := range q.terms {
		for _, k := range p.keywords {
			if strings.Contains(k, term) || strings.Contains(term, k) {
				score += weightPartialKeyword
			}
		}
	}

	for _, term := range p.contextTerms {
		if _, ok := q.termSet[term]; ok {
			score += weightContextTerm
		}
	}

	for _, term := range p.responseTerms {
		if _, ok := q.termSet[term]; ok {
			score += weightResponseTerm
		}
	}

	// Solo las categorías conocidas suman resonancia emocional.
	if p.entry.Topic.Known() {
		topic := string(p.entry.Topic)
		for _, lex := range emotionLexicons {
			if !containsAny(q.lower, lex.terms) {
				continue
			}
			if strings.Contains(topic, lex.name) || hasAnyKey(p.keywordSet, lex.terms) {
				score += weightEmotion
			}
		}
	}

	for _, term := range p.topicTerms {
		if strings.Contains(q.lower, term) {
			score += weightTopicTerm
		}
	}

	return score + contextBonus(q, p.entry)
}

func contextBonus(q query, entry domain.TemplateEntry) int {
	bonus := 0
	if q.wordCount > longMessageWords && entry.Technique == domain.TechniqueActiveListening {
		bonus += bonusLongMessage
	}
	if q.wordCount < shortMessageWords && entry.Technique == domain.TechniqueBriefIntervention {
		bonus += bonusShortMessage
	}
	if q.urgent && entry.Tone == domain.ToneCrisisSupport {
		bonus += bonusUrgency
	}
	if q.question && entry.Technique == domain.TechniquePsychoeducation {
		bonus += bonusQuestion
	}
	return bonus
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func hasAnyKey(set map[string]struct{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := set[k]; ok {
			return true
		}
	}
	return false
}
