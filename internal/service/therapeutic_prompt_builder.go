package service

import (
	"fmt"
	"strings"

	"mindcare/internal/domain"
)

// TherapeuticPromptBuilder arma el prompt que se envía al LLM a partir de los matches del corpus.
type TherapeuticPromptBuilder struct{}

// Build usa el match principal como marco de respuesta. Los alternativos solo aportan
// metadatos; su texto nunca entra al prompt.
func (TherapeuticPromptBuilder) Build(message string, matches []domain.ScoredMatch, ctx domain.ContextAnalysis) string {
	if len(matches) == 0 {
		return TherapeuticPromptBuilder{}.BuildGeneric(message, DetectResponseType(message), ctx)
	}
	primary := matches[0]
	technique := domain.Humanize(string(primary.Technique))
	tone := domain.Humanize(string(primary.Tone))

	var sb strings.Builder
	sb.WriteString("You are MindCare, a compassionate wellness companion grounded in evidence-based therapeutic approaches.\n\n")
	sb.WriteString(fmt.Sprintf("USER MESSAGE: %q\n\n", message))

	sb.WriteString("=== CONTEXTUAL ANALYSIS ===\n")
	sb.WriteString(fmt.Sprintf("- Primary therapeutic focus: %s\n", domain.Humanize(string(primary.Topic))))
	sb.WriteString(fmt.Sprintf("- Recommended approach: %s\n", technique))
	sb.WriteString(fmt.Sprintf("- Optimal tone: %s\n", tone))
	sb.WriteString(fmt.Sprintf("- Similarity score: %d\n\n", primary.Similarity))

	sb.WriteString("=== THERAPEUTIC GUIDANCE ===\n")
	sb.WriteString("Primary response framework:\n")
	sb.WriteString(fmt.Sprintf("%q\n", primary.Response))

	if len(matches) > 1 {
		sb.WriteString("\nAlternative approaches to consider:\n")
		for _, m := range matches[1:] {
			sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n",
				domain.Humanize(string(m.Topic)),
				domain.Humanize(string(m.Technique)),
				domain.Humanize(string(m.Tone)),
			))
		}
	}

	writeContextPatterns(&sb, ctx)

	sb.WriteString("\n=== RESPONSE REQUIREMENTS ===\n")
	sb.WriteString("1. Empathy first: begin with validation and emotional attunement.\n")
	sb.WriteString(fmt.Sprintf("2. Technique: integrate the %s approach naturally.\n", technique))
	sb.WriteString(fmt.Sprintf("3. Tone: keep a %s tone throughout.\n", tone))
	sb.WriteString("4. Personalization: address their specific situation, not generic advice.\n")
	sb.WriteString("5. Action: offer concrete steps they can take.\n")
	sb.WriteString("6. Hope: close with encouragement and forward momentum.\n")
	sb.WriteString("\nNever present yourself as a replacement for professional care. If the user mentions self-harm, encourage contacting emergency services or a crisis line.\n")
	return sb.String()
}

// BuildGeneric se usa cuando el corpus no ofrece ningún match.
func (TherapeuticPromptBuilder) BuildGeneric(message string, responseType ResponseType, ctx domain.ContextAnalysis) string {
	var sb strings.Builder
	sb.WriteString("You are MindCare, a warm and empathetic wellness companion.\n\n")
	sb.WriteString(fmt.Sprintf("USER MESSAGE: %q\n", message))
	sb.WriteString(fmt.Sprintf("RESPONSE MODE: %s\n", strings.ToUpper(string(responseType))))
	writeContextPatterns(&sb, ctx)
	sb.WriteString("\nReply in 2-3 short paragraphs. Reflect the emotion underneath their words, validate it, and offer one gentle, practical next step.\n")
	if responseType == ResponseTypeCrisis {
		sb.WriteString("The user may be at risk: prioritise safety and point them to emergency services or a crisis line.\n")
	}
	return sb.String()
}

func writeContextPatterns(sb *strings.Builder, ctx domain.ContextAnalysis) {
	if len(ctx.Patterns) == 0 {
		return
	}
	sb.WriteString("\n=== CONVERSATION CONTEXT ===\n")
	for _, p := range ctx.Patterns {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
}
