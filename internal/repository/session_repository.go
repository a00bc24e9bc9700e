package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AliAmouz/rustyPromodo/internal/model"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Insert(ctx context.Context, session *model.Session) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO sessions (id, started_at, ended_at, pomodoro_count, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.StartedAt.UTC().Format(time.RFC3339Nano),
		session.EndedAt.UTC().Format(time.RFC3339Nano),
		session.PomodoroCount,
		session.Completed,
		session.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, started_at, ended_at, pomodoro_count, completed, created_at
		 FROM sessions WHERE id = ?`,
		id,
	)
	return scanSession(row)
}

func (r *SessionRepository) List(ctx context.Context, limit int) ([]model.Session, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, started_at, ended_at, pomodoro_count, completed, created_at
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.Session, 0, limit)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

func (r *SessionRepository) CountSessions(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM sessions`,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func (r *SessionRepository) CountCompleted(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM sessions WHERE completed = 1`,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return count, nil
}

// TotalFocusMinutes sums the wall-clock span of every stored session.
func (r *SessionRepository) TotalFocusMinutes(ctx context.Context) (int, error) {
	var minutes sql.NullInt64
	if err := r.db.QueryRowContext(
		ctx,
		`SELECT SUM(CAST((julianday(ended_at) - julianday(started_at)) * 24 * 60 AS INTEGER))
		 FROM sessions`,
	).Scan(&minutes); err != nil {
		return 0, fmt.Errorf("total focus minutes: %w", err)
	}
	if !minutes.Valid {
		return 0, nil
	}
	return int(minutes.Int64), nil
}

// TopDays returns the calendar days with the most recorded focus minutes.
func (r *SessionRepository) TopDays(ctx context.Context, limit int) ([]model.DayTotal, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT date(started_at) AS day,
		        COUNT(*) AS sessions,
		        SUM(CAST((julianday(ended_at) - julianday(started_at)) * 24 * 60 AS INTEGER)) AS minutes
		 FROM sessions
		 GROUP BY day
		 ORDER BY minutes DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top days: %w", err)
	}
	defer rows.Close()

	days := make([]model.DayTotal, 0, limit)
	for rows.Next() {
		var day model.DayTotal
		var minutes sql.NullInt64
		if err := rows.Scan(&day.Day, &day.Sessions, &minutes); err != nil {
			return nil, fmt.Errorf("scan day total: %w", err)
		}
		if minutes.Valid {
			day.Minutes = int(minutes.Int64)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day totals: %w", err)
	}

	return days, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(s scanner) (*model.Session, error) {
	session := model.Session{}
	var startedAt string
	var endedAt string
	var createdAt string
	err := s.Scan(
		&session.ID,
		&startedAt,
		&endedAt,
		&session.PomodoroCount,
		&session.Completed,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	parsedStartedAt, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse session started_at: %w", err)
	}
	session.StartedAt = parsedStartedAt

	parsedEndedAt, err := parseTime(endedAt)
	if err != nil {
		return nil, fmt.Errorf("parse session ended_at: %w", err)
	}
	session.EndedAt = parsedEndedAt

	parsedCreatedAt, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse session created_at: %w", err)
	}
	session.CreatedAt = parsedCreatedAt

	return &session, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t.UTC(), nil
	}
	t, err = time.Parse(time.RFC3339, raw)
	if err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}
