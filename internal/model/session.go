package model

import "time"

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Session is one stored work session: either a completed work interval or an
// abandoned one saved when the user quit mid-phase. Break intervals are never
// recorded. PomodoroCount is the cumulative number of completed work
// intervals in the terminal session at the time the record was written.
type Session struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"startedAt"`
	EndedAt       time.Time `json:"endedAt"`
	PomodoroCount int       `json:"pomodoroCount"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DayTotal aggregates the sessions recorded on one calendar day.
type DayTotal struct {
	Day      string `json:"day"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}
