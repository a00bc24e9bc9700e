package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AliAmouz/rustyPromodo/internal/db"
	"github.com/AliAmouz/rustyPromodo/internal/model"
	"github.com/AliAmouz/rustyPromodo/internal/repository"
)

func setupRepo(t *testing.T) *repository.SessionRepository {
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

	return repository.NewSessionRepository(database)
}

func insertSession(t *testing.T, repo *repository.SessionRepository, start time.Time, span time.Duration, completed bool) model.Session {
	t.Helper()

	session := model.Session{
		ID:            uuid.NewString(),
		StartedAt:     start,
		EndedAt:       start.Add(span),
		PomodoroCount: 1,
		Completed:     completed,
		CreatedAt:     start.Add(span),
	}
	if err := repo.Insert(context.Background(), &session); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	return session
}

func TestInsertAndGet(t *testing.T) {
	repo := setupRepo(t)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	inserted := insertSession(t, repo, start, 25*time.Minute, true)

	got, err := repo.Get(context.Background(), inserted.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !got.StartedAt.Equal(start) {
		t.Fatalf("expected start %s, got %s", start, got.StartedAt)
	}
	if !got.Completed {
		t.Fatal("expected completed session")
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Get(context.Background(), uuid.NewString())
	if err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo := setupRepo(t)

	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	old := insertSession(t, repo, base, 25*time.Minute, true)
	recent := insertSession(t, repo, base.Add(2*time.Hour), 25*time.Minute, true)

	sessions, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != recent.ID || sessions[1].ID != old.ID {
		t.Fatal("expected newest-first ordering")
	}
}

func TestAggregates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	day1 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	insertSession(t, repo, day1, 25*time.Minute, true)
	insertSession(t, repo, day1.Add(time.Hour), 25*time.Minute, true)
	insertSession(t, repo, day2, 10*time.Minute, false)

	total, err := repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 sessions, got %d", total)
	}

	completed, err := repo.CountCompleted(ctx)
	if err != nil {
		t.Fatalf("count completed: %v", err)
	}
	if completed != 2 {
		t.Fatalf("expected 2 completed, got %d", completed)
	}

	minutes, err := repo.TotalFocusMinutes(ctx)
	if err != nil {
		t.Fatalf("total focus minutes: %v", err)
	}
	if minutes != 60 {
		t.Fatalf("expected 60 focus minutes, got %d", minutes)
	}

	days, err := repo.TopDays(ctx, 5)
	if err != nil {
		t.Fatalf("top days: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 day totals, got %d", len(days))
	}
	if days[0].Day != "2025-06-02" || days[0].Sessions != 2 || days[0].Minutes != 50 {
		t.Fatalf("unexpected top day: %+v", days[0])
	}
}

func TestAggregatesOnEmptyDatabase(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	minutes, err := repo.TotalFocusMinutes(ctx)
	if err != nil {
		t.Fatalf("total focus minutes: %v", err)
	}
	if minutes != 0 {
		t.Fatalf("expected 0 minutes on empty db, got %d", minutes)
	}

	days, err := repo.TopDays(ctx, 5)
	if err != nil {
		t.Fatalf("top days: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected no day totals, got %d", len(days))
	}
}
