// Package tui implements the interactive pomodoro session screen. It is the
// driving loop for the timer core: once per tick it checks for phase
// completion, records finished work intervals, and forwards key presses as
// timer commands.
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AliAmouz/rustyPromodo/internal/model"
	"github.com/AliAmouz/rustyPromodo/internal/timer"
)

// Sessions shorter than this are discarded on quit instead of being recorded
// as abandoned.
const minRecordableElapsed = time.Minute

const tickInterval = 250 * time.Millisecond

// SessionRecorder persists finished or abandoned work sessions.
type SessionRecorder interface {
	Record(ctx context.Context, startedAt, endedAt time.Time, pomodoroCount int, completed bool) (*model.Session, error)
}

// Config carries everything the session screen needs.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	Recorder      SessionRecorder
	Clock         timer.Clock
}

type tickMsg time.Time

// Model is the bubbletea model for one pomodoro session.
type Model struct {
	timer     *timer.Timer
	recorder  SessionRecorder
	clock     timer.Clock
	progress  progress.Model
	workTotal time.Duration

	sessionStart       time.Time
	completedPomodoros int
	width              int
	recordErr          error
	quitting           bool
}

// New creates the session model and starts its timer immediately, matching
// the behavior of launching a session from the command line.
func New(cfg Config) Model {
	clock := cfg.Clock
	if clock == nil {
		clock = timer.SystemClock
	}

	t := timer.NewWithClock(cfg.WorkDuration, cfg.BreakDuration, clock)
	t.Start()

	return Model{
		timer:        t,
		recorder:     cfg.Recorder,
		clock:        clock,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		workTotal:    cfg.WorkDuration,
		sessionStart: clock.Now(),
		width:        60,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 72 {
			m.progress.Width = 72
		}
		return m, nil

	case tickMsg:
		m = m.advance()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// advance applies the driving contract: on completion of a work phase the
// session is recorded and the timer switches to break; a finished break
// switches back to work without recording.
func (m Model) advance() Model {
	if m.timer.State() != timer.StateRunning || !m.timer.IsComplete() {
		return m
	}

	if m.timer.Phase() == timer.PhaseWork {
		m.completedPomodoros++
		m.record(true)
		m.timer.SwitchToBreak()
	} else {
		m.timer.SwitchToWork()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.timer.Phase() == timer.PhaseWork && m.timer.Elapsed() > minRecordableElapsed {
			m.record(false)
		}
		m.quitting = true
		return m, tea.Quit
	case "p":
		if !m.timer.Pause() {
			m.timer.Resume()
		}
	case "r":
		m.timer.Reset()
	case "s":
		m.timer.Start()
	}
	return m, nil
}

func (m *Model) record(completed bool) {
	if m.recorder == nil {
		return
	}
	_, err := m.recorder.Record(
		context.Background(),
		m.sessionStart,
		m.clock.Now(),
		m.completedPomodoros,
		completed,
	)
	m.recordErr = err
}

// CompletedPomodoros reports how many work intervals finished this session.
func (m Model) CompletedPomodoros() int {
	return m.completedPomodoros
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := fmt.Sprintf("Work Session (%s)", formatClock(m.workTotal))
	barStyle := workBarStyle
	if m.timer.Phase() == timer.PhaseBreak {
		title = fmt.Sprintf("Break (%s)", formatClock(m.timer.TotalTime()))
		barStyle = breakBarStyle
	}

	total := m.timer.TotalTime()
	percent := 0.0
	if total > 0 {
		percent = math.Min(float64(m.timer.Elapsed())/float64(total), 1.0)
	}

	status := "running"
	switch m.timer.State() {
	case timer.StatePaused:
		status = "paused"
	case timer.StateStopped:
		status = "stopped"
	}

	view := titleStyle.Render(title) + "\n\n" +
		barStyle.Render(m.progress.ViewAs(percent)) + "\n" +
		countdownStyle.Render(formatClock(m.timer.Remaining())) + "\n\n" +
		statusStyle.Render("status: "+status) + "\n" +
		statusStyle.Render(fmt.Sprintf("completed: %d", m.completedPomodoros)) + "\n\n" +
		helpStyle.Render("p pause/resume • r reset • s restart phase • q quit")

	if m.recordErr != nil {
		view += "\n" + errorStyle.Render("could not save session: "+m.recordErr.Error())
	}

	return appStyle.Render(view)
}

// formatClock renders a duration as MM:SS, rounding partial seconds up so the
// display starts at the full configured time.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
