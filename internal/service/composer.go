package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"mindcare/internal/domain"
	"mindcare/internal/llm"
)

// Origen del texto devuelto al usuario.
const (
	SourceLLM      = "llm"
	SourceCorpus   = "corpus"
	SourceFallback = "fallback"
	SourceBoundary = "boundary"
)

type ComposeInput struct {
	Message   string
	Matches   []domain.ScoredMatch
	Context   domain.ContextAnalysis
	Confident bool
}

type Composition struct {
	Text         string       `json:"text"`
	Source       string       `json:"source"`
	ResponseType ResponseType `json:"response_type"`
}

// ResponseComposer produce el texto de respuesta: primero el LLM y, si no está o falla,
// una síntesis a partir del corpus o un respaldo por palabras clave.
type ResponseComposer struct {
	llm     llm.LLMClient
	prompts TherapeuticPromptBuilder
	logger  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponseComposer acepta un cliente nil (modo sin LLM). rng permite respuestas reproducibles en tests.
func NewResponseComposer(client llm.LLMClient, logger *zap.Logger, rng *rand.Rand) *ResponseComposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ResponseComposer{
		llm:    client,
		logger: logger,
		rng:    rng,
	}
}

func (c *ResponseComposer) Compose(ctx context.Context, in ComposeInput) (Composition, error) {
	responseType := DetectResponseType(in.Message)

	if c.llm != nil {
		prompt := c.prompts.Build(in.Message, in.Matches, in.Context)
		text, err := c.llm.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return Composition{Text: strings.TrimSpace(text), Source: SourceLLM, ResponseType: responseType}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Composition{}, ctxErr
		}
		c.logger.Warn("llm generation failed, using local response", zap.Error(err))
	}

	// En crisis siempre se devuelven los recursos de ayuda, aunque haya match en el corpus.
	if responseType != ResponseTypeCrisis && in.Confident && len(in.Matches) > 0 {
		return Composition{
			Text:         c.synthesize(in.Matches[0]),
			Source:       SourceCorpus,
			ResponseType: responseType,
		}, nil
	}

	return Composition{
		Text:         c.pick(fallbackResponses[fallbackCategory(in.Message)]),
		Source:       SourceFallback,
		ResponseType: responseType,
	}, nil
}

// synthesize combina una intro según el tono, la respuesta del corpus y un cierre orientado a la acción.
func (c *ResponseComposer) synthesize(match domain.ScoredMatch) string {
	intros, ok := toneIntros[match.Tone]
	if !ok {
		intros = defaultIntros
	}
	intro := c.pick(intros)
	closer := c.pick(synthesisClosers)
	return intro + "\n\n" + match.Response + "\n\n" + closer
}

// WithVariety agrega un cierre distinto cuando la respuesta repite la anterior.
func (c *ResponseComposer) WithVariety(text, previous string) string {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(previous) == "" {
		return text
	}
	if collapseSpaces(text) != collapseSpaces(previous) {
		return text
	}
	return text + "\n\n" + c.pick(varietyClosers)
}

func (c *ResponseComposer) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return options[c.rng.Intn(len(options))]
}

func collapseSpaces(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
