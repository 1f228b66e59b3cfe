package rag

import (
	"sort"

	"mindcare/internal/domain"
)

const (
	// DefaultTopK se usa cuando el llamador pide k <= 0.
	DefaultTopK = 3
	// MinRelevantScore es el umbral de relevancia; equivale a un keyword exacto.
	MinRelevantScore = 10
)

// Select devuelve hasta k plantillas ordenadas por similitud, con diversidad de topics.
// El historial hoy no altera el puntaje; se recibe para mantener el contrato estable.
func (e *Engine) Select(utterance string, _ []domain.ConversationTurn, k int) []domain.ScoredMatch {
	if k <= 0 {
		k = DefaultTopK
	}
	if len(e.entries) == 0 {
		return []domain.ScoredMatch{}
	}

	q := newQuery(utterance)
	scored := make([]domain.ScoredMatch, 0, len(e.entries))
	for _, p := range e.entries {
		scored = append(scored, domain.ScoredMatch{TemplateEntry: p.entry, Similarity: scoreEntry(q, p)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	candidates := make([]domain.ScoredMatch, 0, len(scored))
	for _, m := range scored {
		if m.Similarity >= MinRelevantScore {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = scored[:min(k, len(scored))]
	}

	out := diversify(candidates, k)
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// diversify prioriza un match por topic y luego completa con los de mayor puntaje.
func diversify(matches []domain.ScoredMatch, k int) []domain.ScoredMatch {
	if len(matches) <= k {
		return matches
	}
	out := make([]domain.ScoredMatch, 0, k)
	used := make([]bool, len(matches))
	topics := make(map[domain.Topic]struct{})
	for i, m := range matches {
		if len(out) >= k {
			break
		}
		if _, seen := topics[m.Topic]; seen {
			continue
		}
		topics[m.Topic] = struct{}{}
		used[i] = true
		out = append(out, m)
	}
	for i, m := range matches {
		if len(out) >= k {
			break
		}
		if !used[i] {
			out = append(out, m)
		}
	}
	return out
}

// Confident indica si el match principal tiene algún puntaje. Un resultado todo en cero
// proviene del fallback y no debe tratarse como coincidencia real.
func (e *Engine) Confident(matches []domain.ScoredMatch) bool {
	return len(matches) > 0 && matches[0].Similarity > 0
}
