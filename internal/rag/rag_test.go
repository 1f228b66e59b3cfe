package rag

import (
	"reflect"
	"testing"

	"mindcare/internal/corpus"
	"mindcare/internal/domain"
)

func TestExtractTerms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "whitespace only", input: "   \t\n", expected: []string{}},
		{name: "punctuation numbers and stop words", input: "I'm feeling SO anxious!!! 123 about_work", expected: []string{"feeling", "anxious", "about_work"}},
		{name: "keeps duplicates", input: "panic panic, panic", expected: []string{"panic", "panic", "panic"}},
		{name: "non ascii letters split words", input: "café", expected: []string{"caf"}},
		{name: "drops short tokens", input: "go to it ok", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTerms(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestScore_DeadlineExactKeyword(t *testing.T) {
	entry := domain.TemplateEntry{Topic: domain.TopicWorkplaceStress, Keywords: []string{"deadline"}}
	engine := NewEngine([]domain.TemplateEntry{entry})

	// 10 exacto + 6 parcial + 15 relevancia de topic.
	if got := engine.Score("my deadline is crushing me", entry); got != 31 {
		t.Fatalf("expected 31, got %d", got)
	}

	matches := engine.Select("my deadline is crushing me", nil, 1)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Topic != domain.TopicWorkplaceStress || matches[0].Similarity < MinRelevantScore {
		t.Fatalf("unexpected match: %+v", matches[0])
	}
}

func TestScore_ConversationalBonuses(t *testing.T) {
	engine := NewEngine(nil)
	tests := []struct {
		name      string
		utterance string
		entry     domain.TemplateEntry
		want      int
	}{
		{"urgency", "I need help now", domain.TemplateEntry{Topic: "other", Tone: domain.ToneCrisisSupport}, 15},
		{"question", "what is grounding?", domain.TemplateEntry{Topic: "other", Technique: domain.TechniquePsychoeducation}, 8},
		{"short message", "hello there", domain.TemplateEntry{Topic: "other", Technique: domain.TechniqueBriefIntervention}, 5},
		{"long message", "one two three four five six seven eight nine ten eleven", domain.TemplateEntry{Topic: "other", Technique: domain.TechniqueActiveListening}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Score(tt.utterance, tt.entry); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_EmptyUtteranceIsZero(t *testing.T) {
	engine := NewEngine(nil)
	for _, e := range corpus.DefaultEntries() {
		for _, msg := range []string{"", "   "} {
			if got := engine.Score(msg, e); got != 0 {
				t.Fatalf("topic %s: expected 0 for %q, got %d", e.Topic, msg, got)
			}
		}
	}
}

func TestScore_IgnoresEmptyKeywords(t *testing.T) {
	engine := NewEngine(nil)
	entry := domain.TemplateEntry{Topic: "other", Keywords: []string{"", "  "}}
	if got := engine.Score("anything at all here", entry); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScore_UnknownTopicSkipsCategoryBonus(t *testing.T) {
	engine := NewEngine(nil)
	msg := "coping with grief"
	if got := engine.Score(msg, domain.TemplateEntry{Topic: domain.TopicGriefLoss}); got <= 0 {
		t.Fatalf("expected known topic to score, got %d", got)
	}

	// Un nombre parecido a una categoría no la vuelve conocida.
	tests := []struct {
		utterance string
		entry     domain.TemplateEntry
	}{
		{msg, domain.TemplateEntry{Topic: "astrology"}},
		{"I am anxious", domain.TemplateEntry{Topic: "anxiety_misc"}},
		{"the loss hurts", domain.TemplateEntry{Topic: "grief_extra"}},
		{"the loss hurts", domain.TemplateEntry{Topic: "grief_extra", Keywords: []string{"grief"}}},
	}
	for _, tt := range tests {
		if got := engine.Score(tt.utterance, tt.entry); got != 0 {
			t.Fatalf("topic %q with %q: expected 0, got %d", tt.entry.Topic, tt.utterance, got)
		}
	}

	if got := engine.Score("the loss hurts", domain.TemplateEntry{Topic: domain.TopicGriefLoss}); got <= 0 {
		t.Fatalf("expected grief_loss to resonate with loss, got %d", got)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	engine := NewEngine(corpus.DefaultEntries())
	msg := "I feel anxious about my deadline and my boss keeps pushing"
	first := engine.Select(msg, nil, 3)
	for i := 0; i < 5; i++ {
		if got := engine.Select(msg, nil, 3); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d: selection changed\nfirst=%+v\ngot=%+v", i, first, got)
		}
	}
}

func TestSelect_DefaultCorpusDeadline(t *testing.T) {
	engine := NewEngine(corpus.DefaultEntries())
	matches := engine.Select("my deadline is crushing me", nil, 1)
	if len(matches) != 1 || matches[0].Topic != domain.TopicWorkplaceStress {
		t.Fatalf("expected single workplace_stress match, got %+v", matches)
	}
	if !engine.Confident(matches) {
		t.Fatalf("expected confident selection")
	}
}

func TestSelect_FallbackReturnsTopK(t *testing.T) {
	entries := []domain.TemplateEntry{
		{Topic: domain.TopicComparison, Keywords: []string{"envy"}, Technique: domain.TechniqueBriefIntervention},
		{Topic: domain.TopicSelfEsteem, Keywords: []string{"doubt"}, Technique: domain.TechniqueValidation},
		{Topic: domain.TopicProcrastination, Keywords: []string{"later"}, Technique: domain.TechniqueBriefIntervention},
	}
	engine := NewEngine(entries)

	matches := engine.Select("hello there", nil, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Topic != domain.TopicComparison || matches[1].Topic != domain.TopicProcrastination {
		t.Fatalf("unexpected fallback order: %s, %s", matches[0].Topic, matches[1].Topic)
	}
	if matches[0].Similarity != 5 {
		t.Fatalf("expected similarity 5, got %d", matches[0].Similarity)
	}
}

func TestSelect_EmptyUtteranceFallsBackInCorpusOrder(t *testing.T) {
	entries := corpus.DefaultEntries()
	engine := NewEngine(entries)

	matches := engine.Select("", nil, 0)
	if len(matches) != DefaultTopK {
		t.Fatalf("expected %d matches, got %d", DefaultTopK, len(matches))
	}
	for i, m := range matches {
		if m.Topic != entries[i].Topic || m.Similarity != 0 {
			t.Fatalf("match %d: expected %s with 0, got %s with %d", i, entries[i].Topic, m.Topic, m.Similarity)
		}
	}
	if engine.Confident(matches) {
		t.Fatalf("zero-score selection must not be confident")
	}
}

func TestSelect_TopicDiversity(t *testing.T) {
	entries := []domain.TemplateEntry{
		{Topic: domain.TopicGriefLoss, Keywords: []string{"grief"}},
		{Topic: domain.TopicGriefLoss, Keywords: []string{"grief", "loss"}},
		{Topic: domain.TopicComparison, Keywords: []string{"envy"}},
	}
	engine := NewEngine(entries)
	msg := "grief and loss and envy"

	two := engine.Select(msg, nil, 2)
	if len(two) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(two))
	}
	if two[0].Topic != domain.TopicGriefLoss || two[0].Similarity != 74 {
		t.Fatalf("unexpected first match: %+v", two[0])
	}
	if two[1].Topic != domain.TopicComparison || two[1].Similarity != 16 {
		t.Fatalf("expected a different topic second, got %+v", two[1])
	}

	three := engine.Select(msg, nil, 3)
	if len(three) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(three))
	}
	got := []int{three[0].Similarity, three[1].Similarity, three[2].Similarity}
	if !reflect.DeepEqual(got, []int{74, 58, 16}) {
		t.Fatalf("unexpected similarities: %v", got)
	}
}

func TestSelect_EmptyCorpus(t *testing.T) {
	engine := NewEngine(nil)
	matches := engine.Select("I feel anxious", nil, 3)
	if matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", matches)
	}
	if engine.Confident(matches) {
		t.Fatalf("empty selection must not be confident")
	}
}

func TestSelect_NeverExceedsKOrRepeats(t *testing.T) {
	engine := NewEngine(corpus.DefaultEntries())
	for _, k := range []int{1, 2, 3, 5} {
		matches := engine.Select("I'm anxious, sad, angry and grieving a loss at work", nil, k)
		if len(matches) > k {
			t.Fatalf("k=%d: got %d matches", k, len(matches))
		}
		seen := make(map[string]bool)
		for _, m := range matches {
			if seen[m.Response] {
				t.Fatalf("k=%d: duplicate match for topic %s", k, m.Topic)
			}
			seen[m.Response] = true
		}
	}
}
