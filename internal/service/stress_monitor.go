package service

import (
	"context"
	"fmt"
	"time"

	"mindcare/internal/domain"
	"mindcare/internal/stress"
)

const (
	monitorHistoryPoints = 5
	recentTrendTurns     = 7
)

// StressMonitor resume la evolución del estrés de una sesión para el panel de la UI.
type StressMonitor struct {
	history HistoryStore
	now     func() time.Time
}

func NewStressMonitor(history HistoryStore) *StressMonitor {
	return &StressMonitor{
		history: history,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *StressMonitor) Summary(ctx context.Context, sessionID string) (domain.StressSummary, error) {
	turns, err := m.history.Recent(ctx, sessionID)
	if err != nil {
		return domain.StressSummary{}, fmt.Errorf("load history: %w", err)
	}
	return Summarize(turns, m.now()), nil
}

// Summarize calcula el resumen sobre la ventana de historial recibida.
func Summarize(turns []domain.ConversationTurn, at time.Time) domain.StressSummary {
	if len(turns) == 0 {
		return domain.StressSummary{
			CurrentStress: stress.NeutralLevel,
			Trend:         domain.TrendStable,
			RecentTrend:   domain.RecentTrendNeutral,
			History:       []domain.StressPoint{},
			AverageStress: stress.NeutralLevel,
			PeakStress:    stress.NeutralLevel,
			LastUpdated:   at,
		}
	}

	levels := make([]int, 0, len(turns))
	for _, t := range turns {
		levels = append(levels, levelOrNeutral(t.StressLevel))
	}

	current := levels[len(levels)-1]
	prev := 0
	if len(levels) > 1 {
		prev = levels[len(levels)-2]
	}

	sum, peak := 0, 0
	for _, l := range levels {
		sum += l
		peak = max(peak, l)
	}

	start := max(0, len(turns)-monitorHistoryPoints)
	points := make([]domain.StressPoint, 0, len(turns)-start)
	for i, t := range turns[start:] {
		points = append(points, domain.StressPoint{Turn: i + 1, Stress: levels[start+i], Time: t.Timestamp})
	}

	return domain.StressSummary{
		CurrentStress: current,
		Trend:         stress.Trend(current, prev),
		RecentTrend:   recentTrend(levels),
		History:       points,
		AverageStress: float64(sum) / float64(len(levels)),
		PeakStress:    peak,
		TurnsCount:    len(turns),
		LastUpdated:   at,
	}
}

func recentTrend(levels []int) string {
	recent := levels[max(0, len(levels)-recentTrendTurns):]
	if len(recent) == 0 {
		return domain.RecentTrendNeutral
	}
	sum := 0
	for _, l := range recent {
		sum += l
	}
	avg := float64(sum) / float64(len(recent))
	switch {
	case avg > 7:
		return domain.RecentTrendHigh
	case avg > 5:
		return domain.RecentTrendModerate
	case avg < 3:
		return domain.RecentTrendLow
	default:
		return domain.RecentTrendStable
	}
}

func levelOrNeutral(level int) int {
	if level <= 0 {
		return stress.NeutralLevel
	}
	return level
}
