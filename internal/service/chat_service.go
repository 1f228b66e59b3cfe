package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindcare/internal/domain"
	"mindcare/internal/rag"
	"mindcare/internal/stress"
)

var ErrEmptyMessage = errors.New("message is empty")

const (
	copingHighStress = "Consider taking some deep breaths and grounding yourself"
	copingDefault    = "Continue sharing your thoughts and feelings"
	approachDefault  = "supportive"
	highStressLevel  = 7
	crisisLevel      = 9
)

type TherapeuticInsights struct {
	Approach         string `json:"approach"`
	CopingSuggestion string `json:"coping_suggestion"`
	IsCrisis         bool   `json:"is_crisis"`
}

// ChatResult es la respuesta completa de un turno.
type ChatResult struct {
	Response        string                  `json:"response"`
	Source          string                  `json:"source"`
	ResponseType    ResponseType            `json:"response_type"`
	EmotionAnalysis domain.EmotionAnalysis  `json:"emotion_analysis"`
	StressMeter     domain.StressDescriptor `json:"stress_meter"`
	Insights        TherapeuticInsights     `json:"therapeutic_insights"`
	Matches         []domain.MatchSummary   `json:"matches"`
	Confident       bool                    `json:"confident_match"`
	ContextPatterns []string                `json:"context_patterns"`
	Timestamp       time.Time               `json:"timestamp"`
}

// ChatService orquesta un turno: selección en el corpus, composición, estrés e historial.
type ChatService struct {
	engine    *rag.Engine
	estimator *stress.Estimator
	composer  *ResponseComposer
	history   HistoryStore
	logger    *zap.Logger
	topK      int
	now       func() time.Time
	newID     func() string
}

func NewChatService(
	engine *rag.Engine,
	estimator *stress.Estimator,
	composer *ResponseComposer,
	history HistoryStore,
	logger *zap.Logger,
	topK int,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if history == nil {
		history = NewMemoryHistoryStore(domain.MaxHistoryTurns)
	}
	if topK <= 0 {
		topK = rag.DefaultTopK
	}
	return &ChatService{
		engine:    engine,
		estimator: estimator,
		composer:  composer,
		history:   history,
		logger:    logger,
		topK:      topK,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, ErrEmptyMessage
	}

	history, err := s.history.Recent(ctx, sessionID)
	if err != nil {
		s.logger.Warn("history unavailable, continuing without context",
			zap.String("session_id", sessionID), zap.Error(err))
		history = nil
	}

	var (
		comp     Composition
		matches  []domain.ScoredMatch
		analysis = rag.AnalyzeContext(history)
	)
	confident := false

	if IsBoundaryViolation(message) {
		comp = Composition{Text: BoundaryReply, Source: SourceBoundary, ResponseType: ResponseTypeStandard}
	} else {
		matches = s.engine.Select(message, history, s.topK)
		confident = s.engine.Confident(matches)
		comp, err = s.composer.Compose(ctx, ComposeInput{
			Message:   message,
			Matches:   matches,
			Context:   analysis,
			Confident: confident,
		})
		if err != nil {
			return ChatResult{}, fmt.Errorf("compose response: %w", err)
		}
	}

	assessment := s.estimator.Estimate(message, history)

	text := comp.Text
	if last, ok := domain.LastTurn(history); ok {
		text = s.composer.WithVariety(text, last.Response)
	}

	now := s.now()
	turn := assessment.Turn(s.newID(), message, text, now)
	if err := s.history.Append(ctx, sessionID, turn); err != nil {
		s.logger.Warn("failed to store turn", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Info("chat turn",
		zap.String("session_id", sessionID),
		zap.String("source", comp.Source),
		zap.String("response_type", string(comp.ResponseType)),
		zap.Int("stress", assessment.Level),
		zap.Int("matches", len(matches)),
		zap.Bool("confident", confident),
	)

	summaries := make([]domain.MatchSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, m.Summary())
	}

	return ChatResult{
		Response:        text,
		Source:          comp.Source,
		ResponseType:    comp.ResponseType,
		EmotionAnalysis: assessment.Emotion,
		StressMeter:     assessment.Descriptor,
		Insights:        insightsFor(matches, confident, assessment.Level),
		Matches:         summaries,
		Confident:       confident,
		ContextPatterns: analysis.Patterns,
		Timestamp:       now,
	}, nil
}

// Reset borra el historial de la sesión.
func (s *ChatService) Reset(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}

func insightsFor(matches []domain.ScoredMatch, confident bool, level int) TherapeuticInsights {
	approach := approachDefault
	if confident && len(matches) > 0 && matches[0].Technique != "" {
		approach = domain.Humanize(string(matches[0].Technique))
	}
	coping := copingDefault
	if level >= highStressLevel {
		coping = copingHighStress
	}
	return TherapeuticInsights{
		Approach:         approach,
		CopingSuggestion: coping,
		IsCrisis:         level >= crisisLevel,
	}
}
