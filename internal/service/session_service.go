package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AliAmouz/rustyPromodo/internal/model"
	"github.com/AliAmouz/rustyPromodo/internal/repository"
)

// ErrInvalidSession is returned for session records that cannot be stored.
var ErrInvalidSession = errors.New("invalid session")

type SessionService struct {
	repo *repository.SessionRepository
}

// StatsView aggregates the stored history for the stats command and API.
type StatsView struct {
	TotalSessions     int              `json:"totalSessions"`
	CompletedSessions int              `json:"completedSessions"`
	CompletionRate    float64          `json:"completionRate"`
	FocusMinutes      int              `json:"focusMinutes"`
	TopDays           []model.DayTotal `json:"topDays"`
}

// ExportedSession is a session with its derived duration, as written by the
// export command.
type ExportedSession struct {
	ID              string    `json:"id"`
	StartedAt       time.Time `json:"startedAt"`
	EndedAt         time.Time `json:"endedAt"`
	PomodoroCount   int       `json:"pomodoroCount"`
	Completed       bool      `json:"completed"`
	DurationMinutes int       `json:"durationMinutes"`
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Record stores one finished or abandoned work session.
func (s *SessionService) Record(
	ctx context.Context,
	startedAt, endedAt time.Time,
	pomodoroCount int,
	completed bool,
) (*model.Session, error) {
	if endedAt.Before(startedAt) {
		return nil, fmt.Errorf("%w: ends before it starts", ErrInvalidSession)
	}
	if pomodoroCount < 0 {
		return nil, fmt.Errorf("%w: negative pomodoro count", ErrInvalidSession)
	}

	now := time.Now().UTC()
	session := model.Session{
		ID:            uuid.NewString(),
		StartedAt:     startedAt,
		EndedAt:       endedAt,
		PomodoroCount: pomodoroCount,
		Completed:     completed,
		CreatedAt:     now,
	}
	if err := s.repo.Insert(ctx, &session); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	return &session, nil
}

// History returns the most recent sessions, newest first.
func (s *SessionService) History(ctx context.Context, limit int) ([]model.Session, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	return sessions, nil
}

// Stats aggregates the whole stored history.
func (s *SessionService) Stats(ctx context.Context) (*StatsView, error) {
	total, err := s.repo.CountSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	completed, err := s.repo.CountCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	minutes, err := s.repo.TotalFocusMinutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	topDays, err := s.repo.TopDays(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	view := StatsView{
		TotalSessions:     total,
		CompletedSessions: completed,
		FocusMinutes:      minutes,
		TopDays:           topDays,
	}
	if total > 0 {
		view.CompletionRate = math.Round(float64(completed) / float64(total) * 100)
	}
	return &view, nil
}

// Export returns every stored session with its derived duration, newest first.
func (s *SessionService) Export(ctx context.Context) ([]ExportedSession, error) {
	sessions, err := s.repo.List(ctx, 10000)
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}

	exported := make([]ExportedSession, 0, len(sessions))
	for _, session := range sessions {
		exported = append(exported, ExportedSession{
			ID:              session.ID,
			StartedAt:       session.StartedAt,
			EndedAt:         session.EndedAt,
			PomodoroCount:   session.PomodoroCount,
			Completed:       session.Completed,
			DurationMinutes: int(session.EndedAt.Sub(session.StartedAt).Minutes()),
		})
	}
	return exported, nil
}
