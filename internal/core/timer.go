package core

import "time"

// Pacer computes how long a paced loop should sleep so that iterations run at
// a target number of generations per second. It never asks for a negative
// sleep and never compensates for iterations that ran over their period.
type Pacer struct {
	rate   int
	period time.Duration
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(gps int) *Pacer {
	p := &Pacer{}
	p.SetRate(gps)
	return p
}

// SetRate changes the target rate. Non-positive rates fall back to 10.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	p.rate = gps
	p.period = time.Second / time.Duration(gps)
}

// Rate returns the target generations per second.
func (p *Pacer) Rate() int { return p.rate }

// Period returns the target duration of one iteration.
func (p *Pacer) Period() time.Duration { return p.period }

// Remaining returns max(0, period - elapsed).
func (p *Pacer) Remaining(elapsed time.Duration) time.Duration {
	if elapsed >= p.period {
		return 0
	}
	return p.period - elapsed
}

// Since returns the sleep still owed for an iteration that began at start.
func (p *Pacer) Since(start time.Time) time.Duration {
	return p.Remaining(time.Since(start))
}
