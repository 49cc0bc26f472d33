package core

import "time"

// TimerMode selects whether a timer stops or wraps when it reaches its duration
type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer is a frame-stepped countdown driven by Tick
// A once timer saturates at its duration and reports JustFinished on a single tick only
// A repeating timer wraps and reports every completion that fell inside the tick
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	paused   bool
	finished bool

	timesFinished int // completions during the last Tick
}

// NewTimer creates a running timer
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// NewPausedTimer creates a timer that ignores Tick until Unpause
func NewPausedTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode, paused: true}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	if t.paused {
		t.timesFinished = 0
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return
	}

	if t.mode == TimerOnce && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.duration

	if !t.finished {
		t.timesFinished = 0
		return
	}

	if t.mode == TimerRepeating {
		if t.duration <= 0 {
			t.timesFinished = 1
			t.elapsed = 0
			return
		}
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		return
	}

	t.timesFinished = 1
	t.elapsed = t.duration
}

// Duration returns the configured period
func (t *Timer) Duration() time.Duration { return t.duration }

// SetDuration changes the period without touching elapsed time
func (t *Timer) SetDuration(d time.Duration) { t.duration = d }

// Elapsed returns time accumulated toward the current period
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Mode returns the timer mode
func (t *Timer) Mode() TimerMode { return t.mode }

// Finished reports whether a once timer has saturated, or a repeating timer wrapped on the last tick
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick completed at least one period
func (t *Timer) JustFinished() bool { return t.timesFinished > 0 }

// TimesFinishedThisTick returns the number of completions during the last Tick
func (t *Timer) TimesFinishedThisTick() int { return t.timesFinished }

// Paused reports whether Tick is ignored
func (t *Timer) Paused() bool { return t.paused }

// Pause stops the timer from advancing
func (t *Timer) Pause() { t.paused = true }

// Unpause resumes advancing on Tick
func (t *Timer) Unpause() { t.paused = false }

// Reset clears elapsed time and completion state, pause state is kept
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Percent returns the completed fraction of the period in [0, 1]
func (t *Timer) Percent() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// PercentLeft returns 1 - Percent
func (t *Timer) PercentLeft() float64 {
	return 1 - t.Percent()
}
