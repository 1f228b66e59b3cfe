package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"mindcare/internal/domain"
	"mindcare/internal/llm"
)

func seededComposer(client llm.LLMClient) *ResponseComposer {
	return NewResponseComposer(client, nil, rand.New(rand.NewSource(42)))
}

func workplaceMatch() domain.ScoredMatch {
	return domain.ScoredMatch{
		TemplateEntry: domain.TemplateEntry{
			Topic:     domain.TopicWorkplaceStress,
			Keywords:  []string{"deadline"},
			Response:  "List every task and mark what is truly urgent.",
			Technique: domain.TechniqueBriefIntervention,
			Tone:      domain.ToneUnderstandingPractical,
		},
		Similarity: 31,
	}
}

func inList(s string, list []string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestCompose_UsesLLM(t *testing.T) {
	mock := &llm.MockClient{Response: "  A grounded reply.  "}
	c := seededComposer(mock)

	got, err := c.Compose(context.Background(), ComposeInput{
		Message:   "my deadline is crushing me",
		Matches:   []domain.ScoredMatch{workplaceMatch()},
		Confident: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "A grounded reply." || got.Source != SourceLLM {
		t.Fatalf("unexpected composition: %+v", got)
	}
	if mock.Calls != 1 || !strings.Contains(mock.LastPrompt, "workplace stress") {
		t.Fatalf("expected prompt built from primary match, got %q", mock.LastPrompt)
	}
}

func TestCompose_SynthesizesFromCorpusWhenLLMFails(t *testing.T) {
	c := seededComposer(&llm.MockClient{Err: errors.New("timeout")})
	match := workplaceMatch()

	got, err := c.Compose(context.Background(), ComposeInput{
		Message:   "my deadline is crushing me",
		Matches:   []domain.ScoredMatch{match},
		Confident: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != SourceCorpus {
		t.Fatalf("expected corpus source, got %s", got.Source)
	}
	parts := strings.Split(got.Text, "\n\n")
	if len(parts) != 3 {
		t.Fatalf("expected intro, response and closer, got %q", got.Text)
	}
	if !inList(parts[0], toneIntros[match.Tone]) || parts[1] != match.Response || !inList(parts[2], synthesisClosers) {
		t.Fatalf("unexpected synthesis: %q", got.Text)
	}
}

func TestCompose_UnknownToneUsesDefaultIntros(t *testing.T) {
	match := workplaceMatch()
	match.Tone = "mystic"
	got, err := seededComposer(nil).Compose(context.Background(), ComposeInput{
		Message:   "deadline",
		Matches:   []domain.ScoredMatch{match},
		Confident: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inList(strings.Split(got.Text, "\n\n")[0], defaultIntros) {
		t.Fatalf("expected default intro, got %q", got.Text)
	}
}

func TestCompose_KeywordFallbackWithoutConfidentMatch(t *testing.T) {
	got, err := seededComposer(nil).Compose(context.Background(), ComposeInput{
		Message:   "I'm so stressed lately",
		Matches:   []domain.ScoredMatch{{TemplateEntry: workplaceMatch().TemplateEntry}},
		Confident: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != SourceFallback || !inList(got.Text, fallbackResponses[fallbackStress]) {
		t.Fatalf("expected stress fallback, got %+v", got)
	}
}

func TestCompose_CrisisAlwaysCarriesResources(t *testing.T) {
	match := workplaceMatch()
	got, err := seededComposer(nil).Compose(context.Background(), ComposeInput{
		Message:   "I want to die, this deadline is too much",
		Matches:   []domain.ScoredMatch{match},
		Confident: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ResponseType != ResponseTypeCrisis || got.Source != SourceFallback {
		t.Fatalf("expected crisis fallback, got %+v", got)
	}
	if !strings.Contains(got.Text, crisisResources) {
		t.Fatalf("crisis reply must include resources: %q", got.Text)
	}
}

func TestCompose_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := seededComposer(&llm.MockClient{Err: context.Canceled})

	if _, err := c.Compose(ctx, ComposeInput{Message: "hello"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCompose_EmptyLLMReplyFallsBack(t *testing.T) {
	got, err := seededComposer(&llm.MockClient{Response: "   "}).Compose(context.Background(), ComposeInput{Message: "I need some help"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != SourceFallback || !inList(got.Text, fallbackResponses[fallbackHelp]) {
		t.Fatalf("expected help fallback, got %+v", got)
	}
}

func TestWithVariety(t *testing.T) {
	c := seededComposer(nil)

	if got := c.WithVariety("Take a breath.", "Something else entirely."); got != "Take a breath." {
		t.Fatalf("different reply must stay unchanged, got %q", got)
	}
	if got := c.WithVariety("Take a breath.", ""); got != "Take a breath." {
		t.Fatalf("first turn must stay unchanged, got %q", got)
	}

	got := c.WithVariety("Take a breath.", "take  a breath.")
	parts := strings.SplitN(got, "\n\n", 2)
	if len(parts) != 2 || parts[0] != "Take a breath." || !inList(parts[1], varietyClosers) {
		t.Fatalf("expected variety closer appended, got %q", got)
	}
}
