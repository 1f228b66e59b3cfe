package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"mindcare/internal/domain"
)

func turnsWithLevels(levels ...int) []domain.ConversationTurn {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	out := make([]domain.ConversationTurn, 0, len(levels))
	for i, l := range levels {
		out = append(out, domain.ConversationTurn{
			ID:          "t",
			Message:     "msg",
			StressLevel: l,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := Summarize(nil, at)
	if got.CurrentStress != 5 || got.PeakStress != 5 || got.AverageStress != 5 {
		t.Fatalf("expected neutral summary, got %+v", got)
	}
	if got.Trend != domain.TrendStable || got.RecentTrend != domain.RecentTrendNeutral {
		t.Fatalf("unexpected trends: %+v", got)
	}
	if got.TurnsCount != 0 || len(got.History) != 0 || !got.LastUpdated.Equal(at) {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	got := Summarize(turnsWithLevels(3, 6, 8), time.Now())
	if got.CurrentStress != 8 || got.Trend != domain.TrendIncreasing {
		t.Fatalf("expected current 8 increasing, got %+v", got)
	}
	if got.PeakStress != 8 || got.TurnsCount != 3 {
		t.Fatalf("unexpected peak/count: %+v", got)
	}
	if math.Abs(got.AverageStress-17.0/3.0) > 1e-9 {
		t.Fatalf("unexpected average %f", got.AverageStress)
	}
	if got.RecentTrend != domain.RecentTrendModerate {
		t.Fatalf("expected moderate recent trend, got %s", got.RecentTrend)
	}
}

func TestSummarize_HistoryKeepsLastFivePoints(t *testing.T) {
	turns := turnsWithLevels(1, 2, 3, 4, 5, 6, 7)
	got := Summarize(turns, time.Now())
	if len(got.History) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got.History))
	}
	for i, p := range got.History {
		if p.Turn != i+1 || p.Stress != i+3 {
			t.Fatalf("unexpected point %d: %+v", i, p)
		}
		if !p.Time.Equal(turns[i+2].Timestamp) {
			t.Fatalf("point %d should carry its turn timestamp", i)
		}
	}
	if got.Trend != domain.TrendIncreasing || got.TurnsCount != 7 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestSummarize_RecentTrendClasses(t *testing.T) {
	tests := []struct {
		levels []int
		want   string
	}{
		{[]int{9, 8, 9}, domain.RecentTrendHigh},
		{[]int{6, 6}, domain.RecentTrendModerate},
		{[]int{2, 1, 2}, domain.RecentTrendLow},
		{[]int{4, 5, 4}, domain.RecentTrendStable},
	}
	for _, tt := range tests {
		if got := Summarize(turnsWithLevels(tt.levels...), time.Now()).RecentTrend; got != tt.want {
			t.Fatalf("levels %v: expected %s, got %s", tt.levels, tt.want, got)
		}
	}
}

func TestSummarize_ZeroLevelCountsAsNeutral(t *testing.T) {
	got := Summarize(turnsWithLevels(0, 7), time.Now())
	if got.AverageStress != 6 || got.Trend != domain.TrendIncreasing {
		t.Fatalf("expected unset level treated as 5, got %+v", got)
	}
}

func TestStressMonitor_Summary(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHistoryStore(domain.MaxHistoryTurns)
	for _, turn := range turnsWithLevels(7, 4) {
		if err := store.Append(ctx, "sess-1", turn); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	monitor := NewStressMonitor(store)
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	monitor.now = func() time.Time { return fixed }

	got, err := monitor.Summary(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CurrentStress != 4 || got.Trend != domain.TrendDecreasing || !got.LastUpdated.Equal(fixed) {
		t.Fatalf("unexpected summary: %+v", got)
	}

	other, err := monitor.Summary(ctx, "sess-2")
	if err != nil || other.TurnsCount != 0 {
		t.Fatalf("expected empty summary for unknown session, got %+v err=%v", other, err)
	}
}

func TestStressMonitor_StoreError(t *testing.T) {
	monitor := NewStressMonitor(failingHistoryStore{err: errors.New("redis down")})
	if _, err := monitor.Summary(context.Background(), "sess"); err == nil {
		t.Fatalf("expected error from history store")
	}
}
