package timer

import "time"

// Clock abstracts the time source so tests can drive the state machine
// with fabricated timestamps instead of real sleeps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default clock implementation.
var SystemClock Clock = systemClock{}
