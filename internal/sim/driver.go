package sim

import (
	"sync"
	"time"

	"lifesim/internal/core"
)

// Stepper advances a simulation by one generation, blocking until done.
type Stepper interface {
	Step() error
}

// Driver runs a Stepper on its own goroutine at a target number of
// generations per second. It starts out stopped.
type Driver struct {
	stepper Stepper

	mu    sync.Mutex
	pacer *core.Pacer
	stop  chan struct{}
}

// NewDriver returns a stopped Driver targeting speed generations per second.
func NewDriver(s Stepper, speed int) *Driver {
	return &Driver{stepper: s, pacer: core.NewPacer(speed)}
}

// Start begins the pacing loop. It is a no-op while running.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return
	}
	stop := make(chan struct{})
	d.stop = stop
	go d.loop(stop)
}

// Stop asks the pacing loop to exit after the step in progress, if any. It is
// a no-op while stopped and never waits for the loop.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == nil {
		return
	}
	close(d.stop)
	d.stop = nil
}

// Toggle starts a stopped driver or stops a running one.
func (d *Driver) Toggle() {
	if d.Running() {
		d.Stop()
		return
	}
	d.Start()
}

// Running reports whether the driver is in the running state.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// SetSpeed changes the target rate from the next iteration on. Non-positive
// values are ignored.
func (d *Driver) SetSpeed(gps int) {
	if gps <= 0 {
		return
	}
	d.mu.Lock()
	d.pacer.SetRate(gps)
	d.mu.Unlock()
}

// Speed returns the target rate in generations per second.
func (d *Driver) Speed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pacer.Rate()
}

func (d *Driver) remaining(start time.Time) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pacer.Since(start)
}

// loop steps until stop is closed. Each iteration sleeps whatever is left of
// the period; an iteration that ran long is not made up for.
func (d *Driver) loop(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		start := time.Now()
		if err := d.stepper.Step(); err != nil {
			d.halt(stop)
			return
		}

		wait := d.remaining(start)
		if wait <= 0 {
			continue
		}
		t := time.NewTimer(wait)
		select {
		case <-stop:
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// halt moves the driver to stopped when the loop that owns stop gives up.
func (d *Driver) halt(stop chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == stop {
		close(stop)
		d.stop = nil
	}
}
