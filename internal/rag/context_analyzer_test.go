package rag

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"mindcare/internal/domain"
)

func turns(levels ...int) []domain.ConversationTurn {
	out := make([]domain.ConversationTurn, 0, len(levels))
	for _, l := range levels {
		out = append(out, domain.ConversationTurn{Message: "hi", StressLevel: l})
	}
	return out
}

func TestAnalyzeContext_FirstInteraction(t *testing.T) {
	got := AnalyzeContext(nil)
	if !reflect.DeepEqual(got.Patterns, []string{PatternFirstInteraction}) {
		t.Fatalf("expected first interaction pattern, got %v", got.Patterns)
	}
	if got.AverageStress != nil {
		t.Fatalf("expected no average without history, got %v", *got.AverageStress)
	}
}

func TestAnalyzeContext_StressPatterns(t *testing.T) {
	tests := []struct {
		name     string
		levels   []int
		pattern  string
		expected float64
	}{
		{name: "high stress uses last three", levels: []int{1, 8, 9, 9}, pattern: PatternHighStress, expected: 26.0 / 3},
		{name: "low stress", levels: []int{2, 3, 3}, pattern: PatternLowStress, expected: 8.0 / 3},
		{name: "zero counts as neutral", levels: []int{0, 0, 0}, pattern: "", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeContext(turns(tt.levels...))
			if got.AverageStress == nil {
				t.Fatalf("expected average stress")
			}
			if math.Abs(*got.AverageStress-tt.expected) > 0.001 {
				t.Fatalf("expected average %.3f, got %.3f", tt.expected, *got.AverageStress)
			}
			if tt.pattern == "" {
				if len(got.Patterns) != 0 {
					t.Fatalf("expected no patterns, got %v", got.Patterns)
				}
				return
			}
			if !slices.Contains(got.Patterns, tt.pattern) {
				t.Fatalf("expected pattern %q in %v", tt.pattern, got.Patterns)
			}
		})
	}
}

func TestAnalyzeContext_RecurringThemes(t *testing.T) {
	history := []domain.ConversationTurn{
		{Message: "Work has been rough", StressLevel: 5},
		{Message: "My boss yelled again", StressLevel: 6},
		{Message: "My partner noticed", StressLevel: 5},
	}
	got := AnalyzeContext(history)
	if !slices.Contains(got.Patterns, "- Recurring work theme: Build on previous discussions") {
		t.Fatalf("expected recurring work theme, got %v", got.Patterns)
	}
	if slices.Contains(got.Patterns, "- Recurring relationships theme: Build on previous discussions") {
		t.Fatalf("single relationship mention must not recur, got %v", got.Patterns)
	}
}
