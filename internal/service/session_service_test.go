package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/AliAmouz/rustyPromodo/internal/db"
	"github.com/AliAmouz/rustyPromodo/internal/repository"
	"github.com/AliAmouz/rustyPromodo/internal/service"
)

func setupService(t *testing.T) *service.SessionService {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := db.RunMigrations(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return service.NewSessionService(repository.NewSessionRepository(database))
}

func TestRecordAndHistory(t *testing.T) {
	sessions := setupService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	recorded, err := sessions.Record(ctx, start, start.Add(25*time.Minute), 1, true)
	if err != nil {
		t.Fatalf("record session: %v", err)
	}
	if recorded.ID == "" {
		t.Fatal("expected generated session id")
	}

	history, err := sessions.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 session, got %d", len(history))
	}
	if history[0].ID != recorded.ID {
		t.Fatalf("expected session %s, got %s", recorded.ID, history[0].ID)
	}
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	sessions := setupService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	if _, err := sessions.Record(ctx, start, start.Add(-time.Minute), 1, true); !errors.Is(err, service.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for reversed span, got %v", err)
	}
	if _, err := sessions.Record(ctx, start, start.Add(time.Minute), -1, true); !errors.Is(err, service.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for negative count, got %v", err)
	}
}

func TestHistoryClampsLimit(t *testing.T) {
	sessions := setupService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := sessions.Record(ctx, start.Add(time.Duration(i)*time.Hour), start.Add(time.Duration(i)*time.Hour+25*time.Minute), i+1, true); err != nil {
			t.Fatalf("record session %d: %v", i, err)
		}
	}

	history, err := sessions.History(ctx, -5)
	if err != nil {
		t.Fatalf("history with invalid limit: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected all 3 sessions with clamped limit, got %d", len(history))
	}
}

func TestStats(t *testing.T) {
	sessions := setupService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	if _, err := sessions.Record(ctx, start, start.Add(25*time.Minute), 1, true); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := sessions.Record(ctx, start.Add(time.Hour), start.Add(time.Hour+5*time.Minute), 1, false); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := sessions.Record(ctx, start.Add(2*time.Hour), start.Add(2*time.Hour+25*time.Minute), 2, true); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := sessions.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 3 {
		t.Fatalf("expected 3 total, got %d", stats.TotalSessions)
	}
	if stats.CompletedSessions != 2 {
		t.Fatalf("expected 2 completed, got %d", stats.CompletedSessions)
	}
	if stats.CompletionRate != 67 {
		t.Fatalf("expected rounded 67%% rate, got %v", stats.CompletionRate)
	}
	if stats.FocusMinutes != 55 {
		t.Fatalf("expected 55 focus minutes, got %d", stats.FocusMinutes)
	}
	if len(stats.TopDays) != 1 {
		t.Fatalf("expected 1 top day, got %d", len(stats.TopDays))
	}
}

func TestStatsOnEmptyDatabase(t *testing.T) {
	sessions := setupService(t)

	stats, err := sessions.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 0 || stats.CompletionRate != 0 || stats.FocusMinutes != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestExportDerivesDuration(t *testing.T) {
	sessions := setupService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	if _, err := sessions.Record(ctx, start, start.Add(25*time.Minute), 1, true); err != nil {
		t.Fatalf("record: %v", err)
	}

	exported, err := sessions.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 1 {
		t.Fatalf("expected 1 exported session, got %d", len(exported))
	}
	if exported[0].DurationMinutes != 25 {
		t.Fatalf("expected 25 minute duration, got %d", exported[0].DurationMinutes)
	}
}
