package wire

import "time"

// Clock supplies the timestamps stamped into response envelopes. Injectable
// so encoded documents stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// FixedClock returns a Clock pinned at t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}
