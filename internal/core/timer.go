package core

import "time"

// FixedStep paces the headless tick loop at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	ticks       uint64

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first call to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate; non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Ticks returns how many times ShouldStep has fired.
func (f *FixedStep) Ticks() uint64 { return f.ticks }

// ShouldStep reports whether the loop should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	f.ticks++
	return true
}

// Wait sleeps until the next tick is due.
func (f *FixedStep) Wait() {
	for !f.ShouldStep() {
		remaining := f.step - f.accumulator
		if remaining <= 0 {
			continue
		}
		time.Sleep(remaining)
	}
}
