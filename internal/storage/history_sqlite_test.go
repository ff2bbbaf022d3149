package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"focusdesk/internal/core/model"
)

func openTempHistory(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := OpenHistory(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close history: %v", err)
		}
	})
	return store
}

func TestRecordAndListIntervals(t *testing.T) {
	store := openTempHistory(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if err := store.RecordInterval(ctx, model.IntervalRecord{
		Mode:    model.ModeWork,
		Planned: model.WorkDuration,
		EndedAt: now,
	}); err != nil {
		t.Fatalf("record work: %v", err)
	}
	if err := store.RecordInterval(ctx, model.IntervalRecord{
		Mode:    model.ModeBreak,
		Planned: model.BreakDuration,
		EndedAt: now.Add(5 * time.Minute),
	}); err != nil {
		t.Fatalf("record break: %v", err)
	}

	records, err := store.ListIntervals(ctx, 10)
	if err != nil {
		t.Fatalf("list intervals: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records len = %d, want 2", len(records))
	}
	if records[0].Mode != model.ModeBreak || records[0].Planned != model.BreakDuration {
		t.Fatalf("records[0] = %+v, want newest break", records[0])
	}
	if !records[1].EndedAt.Equal(now) {
		t.Fatalf("records[1].EndedAt = %v, want %v", records[1].EndedAt, now)
	}
	if records[0].ID == 0 || records[0].ID == records[1].ID {
		t.Fatalf("ids = %d, %d, want distinct non-zero", records[0].ID, records[1].ID)
	}

	limited, err := store.ListIntervals(ctx, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited len = %d, want 1", len(limited))
	}
}

func TestRecordIntervalValidation(t *testing.T) {
	store := openTempHistory(t)
	ctx := context.Background()

	if err := store.RecordInterval(ctx, model.IntervalRecord{Mode: "nap", Planned: time.Minute}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if err := store.RecordInterval(ctx, model.IntervalRecord{Mode: model.ModeWork}); err == nil {
		t.Fatal("expected error for zero planned duration")
	}
}

func TestListIntervalsRequiresLimit(t *testing.T) {
	store := openTempHistory(t)
	if _, err := store.ListIntervals(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTempHistory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.RecordInterval(ctx, model.IntervalRecord{Mode: model.ModeWork, Planned: model.WorkDuration})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestSummarizeDay(t *testing.T) {
	store := openTempHistory(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	records := []model.IntervalRecord{
		{Mode: model.ModeWork, Planned: model.WorkDuration, EndedAt: day.Add(9 * time.Hour)},
		{Mode: model.ModeBreak, Planned: model.BreakDuration, EndedAt: day.Add(9*time.Hour + 5*time.Minute)},
		{Mode: model.ModeWork, Planned: model.WorkDuration, EndedAt: day.Add(10 * time.Hour)},
		{Mode: model.ModeWork, Planned: model.WorkDuration, EndedAt: day.Add(-time.Minute)},
		{Mode: model.ModeWork, Planned: model.WorkDuration, EndedAt: day.Add(24 * time.Hour)},
	}
	for _, record := range records {
		if err := store.RecordInterval(ctx, record); err != nil {
			t.Fatalf("record interval: %v", err)
		}
	}

	summary, err := store.SummarizeDay(ctx, day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("summarize day: %v", err)
	}
	if !summary.Day.Equal(day) {
		t.Fatalf("Day = %v, want %v", summary.Day, day)
	}
	if summary.WorkIntervals != 2 || summary.BreakIntervals != 1 {
		t.Fatalf("summary = %+v, want 2 work and 1 break", summary)
	}
	if summary.FocusTime != 50*time.Minute {
		t.Fatalf("FocusTime = %v, want 50m", summary.FocusTime)
	}
}

func TestOpenHistoryRequiresPath(t *testing.T) {
	if _, err := OpenHistory("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
