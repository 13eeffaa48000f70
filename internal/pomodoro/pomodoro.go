// Package pomodoro implements the work/break cycle state machine behind the
// pomodoro widget. The engine is purely synchronous: callers own the clock and
// feed it one Tick per second while it is running.
package pomodoro

import "strconv"

// Mode is a phase of the pomodoro cycle.
type Mode string

const (
	Work       Mode = "Work"
	ShortBreak Mode = "Short Break"
	LongBreak  Mode = "Long Break"
)

// Durations maps each mode to its length in minutes.
type Durations map[Mode]int

// DefaultDurations returns the stock 25/5/15 minute configuration.
func DefaultDurations() Durations {
	return Durations{Work: 25, ShortBreak: 5, LongBreak: 15}
}

// ParseMinutes converts user input to whole minutes, coercing anything
// non-numeric to 0.
func ParseMinutes(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Engine is the pomodoro state machine.
//
// After every fourth completed work cycle the break is a long one; otherwise
// short. Editing durations is only allowed while the clock is stopped, which
// the settings panel enforces by pausing on open.
type Engine struct {
	mode         Mode
	remaining    int
	cycles       int
	running      bool
	settingsOpen bool
	durations    Durations
}

// NewEngine creates an Engine in Work mode with the given durations, loaded
// and stopped. Nil durations fall back to [DefaultDurations].
func NewEngine(durations Durations) *Engine {
	if durations == nil {
		durations = DefaultDurations()
	}
	e := &Engine{mode: Work, durations: durations}
	e.remaining = e.secondsFor(Work)
	return e
}

func (e *Engine) secondsFor(mode Mode) int {
	return e.durations[mode] * 60
}

// Start begins the countdown. Ignored while the settings panel is open. A
// spent timer reloads the current mode's duration first.
func (e *Engine) Start() {
	if e.settingsOpen || e.running {
		return
	}
	if e.remaining == 0 {
		e.remaining = e.secondsFor(e.mode)
	}
	e.running = true
}

// Pause stops the countdown, retaining the remaining time.
func (e *Engine) Pause() {
	e.running = false
}

// Reset returns to a stopped Work mode with zero completed cycles. Ignored
// while the settings panel is open.
func (e *Engine) Reset() {
	if e.settingsOpen {
		return
	}
	e.running = false
	e.mode = Work
	e.cycles = 0
	e.remaining = e.secondsFor(Work)
}

// Tick advances the countdown by one second. When the countdown reaches zero
// the engine transitions to the next mode and stops.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining == 0 {
		e.cycleEnd()
	}
}

// cycleEnd advances mode: work counts a cycle and picks the break length,
// breaks always return to work.
func (e *Engine) cycleEnd() {
	e.running = false
	next := Work
	if e.mode == Work {
		e.cycles++
		if e.cycles%4 == 0 {
			next = LongBreak
		} else {
			next = ShortBreak
		}
	}
	e.mode = next
	e.remaining = e.secondsFor(next)
}

// ApplyDurations replaces the duration table and closes the settings panel.
// While stopped, the remaining time reloads from the current mode.
func (e *Engine) ApplyDurations(durations Durations) {
	if durations != nil {
		e.durations = durations
	}
	if !e.running {
		e.remaining = e.secondsFor(e.mode)
	}
	e.settingsOpen = false
}

// ToggleSettings opens or closes the settings panel. Opening always stops the
// countdown; durations cannot change mid-count.
func (e *Engine) ToggleSettings() {
	e.settingsOpen = !e.settingsOpen
	e.running = false
}

// Mode returns the current cycle phase.
func (e *Engine) Mode() Mode { return e.mode }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.remaining }

// Cycles returns the number of completed work cycles.
func (e *Engine) Cycles() int { return e.cycles }

// Running reports whether the countdown is active.
func (e *Engine) Running() bool { return e.running }

// SettingsOpen reports whether the settings panel is open.
func (e *Engine) SettingsOpen() bool { return e.settingsOpen }

// Duration returns the configured minutes for a mode.
func (e *Engine) Duration(mode Mode) int { return e.durations[mode] }
