package rag

import (
	"fmt"
	"strings"

	"mindcare/internal/domain"
)

const (
	PatternFirstInteraction = "- First interaction: Focus on building rapport and understanding"
	PatternHighStress       = "- High stress pattern detected: Prioritize immediate coping strategies"
	PatternLowStress        = "- Lower stress context: Focus on growth and skill building"
	patternRecurringTheme   = "- Recurring %s theme: Build on previous discussions"

	contextWindow        = 3
	neutralStress        = 5
	themeMentionsTrigger = 2
)

type theme struct {
	name     string
	keywords []string
}

var themes = []theme{
	{name: "work", keywords: []string{"work", "job", "career", "boss"}},
	{name: "relationships", keywords: []string{"relationship", "partner", "family", "friend"}},
	{name: "anxiety", keywords: []string{"anxious", "worry", "panic", "nervous"}},
	{name: "depression", keywords: []string{"sad", "depressed", "hopeless", "tired"}},
}

// AnalyzeContext resume el historial reciente en notas para el compositor.
func AnalyzeContext(history []domain.ConversationTurn) domain.ContextAnalysis {
	if len(history) == 0 {
		return domain.ContextAnalysis{Patterns: []string{PatternFirstInteraction}}
	}

	recent := history[max(0, len(history)-contextWindow):]
	sum := 0
	for _, t := range recent {
		level := t.StressLevel
		if level == 0 {
			level = neutralStress
		}
		sum += level
	}
	avg := float64(sum) / float64(len(recent))

	var patterns []string
	switch {
	case avg > 7:
		patterns = append(patterns, PatternHighStress)
	case avg < 4:
		patterns = append(patterns, PatternLowStress)
	}

	messages := make([]string, 0, len(history))
	for _, t := range history {
		messages = append(messages, t.Message)
	}
	all := strings.ToLower(strings.Join(messages, " "))
	for _, th := range themes {
		mentions := 0
		for _, k := range th.keywords {
			if strings.Contains(all, k) {
				mentions++
			}
		}
		if mentions >= themeMentionsTrigger {
			patterns = append(patterns, fmt.Sprintf(patternRecurringTheme, th.name))
		}
	}

	return domain.ContextAnalysis{Patterns: patterns, AverageStress: &avg}
}
