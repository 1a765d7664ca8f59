// Package sim runs the automaton: a Board goroutine owns the grid and
// serializes every mutation, and a Driver advances it at a paced rate.
package sim

import (
	"context"
	"errors"
	"sync"

	"lifesim/internal/core"
	"lifesim/internal/life"
	"lifesim/internal/render"
)

// ErrClosed is returned by blocking Board calls once Run has returned.
var ErrClosed = errors.New("sim: board closed")

// Change reports that a cell flipped to the given state.
type Change struct {
	X, Y  int
	Alive bool
}

// Stats describes the board after the last applied request.
type Stats struct {
	Generation int
	Population int
}

type requestKind int

const (
	reqStep requestKind = iota
	reqToggle
	reqClear
	reqSnapshot
)

type request struct {
	kind requestKind
	x, y int
	done chan struct{}
	grid chan *core.Grid
}

// inboxSize bounds how many fire-and-forget requests can queue up before a
// sender waits for the board to catch up.
const inboxSize = 256

// Board owns a Life engine. All requests are applied in arrival order on the
// goroutine running Run; cell flips are queued for the UI to drain with
// Changes.
type Board struct {
	life *life.Life
	prev *core.Grid
	size core.Size

	reqs    chan request
	stopped chan struct{}

	mu      sync.Mutex
	pending []Change
	stats   Stats
}

// NewBoard returns an all-dead board. Requests are only served once Run is
// called.
func NewBoard(w, h int) *Board {
	l := life.New(w, h)
	return &Board{
		life:    l,
		prev:    l.Grid().Clone(),
		size:    l.Size(),
		reqs:    make(chan request, inboxSize),
		stopped: make(chan struct{}),
	}
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.size }

// Run serves requests until ctx is done. It must be called exactly once.
func (b *Board) Run(ctx context.Context) error {
	defer close(b.stopped)
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-b.reqs:
			b.apply(r)
		}
	}
}

func (b *Board) apply(r request) {
	switch r.kind {
	case reqStep:
		b.prev.CopyFrom(b.life.Grid())
		b.life.Step()
		b.mu.Lock()
		render.DiffRedraw((*changeQueue)(b), b.prev, b.life.Grid())
		b.mu.Unlock()
	case reqToggle:
		if b.life.Toggle(r.x, r.y) {
			b.mu.Lock()
			b.pending = append(b.pending, Change{X: r.x, Y: r.y, Alive: b.life.Grid().Alive(r.x, r.y)})
			b.mu.Unlock()
		}
	case reqClear:
		g := b.life.Grid()
		b.mu.Lock()
		for i, c := range g.Cells() {
			if c == core.Alive {
				b.pending = append(b.pending, Change{X: i % g.W, Y: i / g.W})
			}
		}
		b.mu.Unlock()
		b.life.Clear()
	case reqSnapshot:
		r.grid <- b.life.Grid().Clone()
	}

	b.mu.Lock()
	b.stats = Stats{Generation: b.life.Generation(), Population: b.life.Population()}
	b.mu.Unlock()

	if r.done != nil {
		close(r.done)
	}
}

// changeQueue lets DiffRedraw append flips straight onto the pending queue.
// Callers hold b.mu.
type changeQueue Board

func (q *changeQueue) SetCell(x, y int, alive bool) {
	q.pending = append(q.pending, Change{X: x, Y: y, Alive: alive})
}

func (b *Board) send(r request) bool {
	select {
	case b.reqs <- r:
		return true
	case <-b.stopped:
		return false
	}
}

// Step advances one generation and waits until it has been applied.
func (b *Board) Step() error {
	done := make(chan struct{})
	if !b.send(request{kind: reqStep, done: done}) {
		return ErrClosed
	}
	select {
	case <-done:
		return nil
	case <-b.stopped:
		return ErrClosed
	}
}

// Advance queues a single step without waiting for it.
func (b *Board) Advance() { b.send(request{kind: reqStep}) }

// Toggle queues a flip of the cell at (x, y). Coordinates outside the grid are
// ignored when the request is applied.
func (b *Board) Toggle(x, y int) { b.send(request{kind: reqToggle, x: x, y: y}) }

// Clear queues killing every cell.
func (b *Board) Clear() { b.send(request{kind: reqClear}) }

// Snapshot returns a copy of the grid once every earlier request has been
// applied.
func (b *Board) Snapshot() (*core.Grid, error) {
	out := make(chan *core.Grid, 1)
	if !b.send(request{kind: reqSnapshot, grid: out}) {
		return nil, ErrClosed
	}
	select {
	case g := <-out:
		return g, nil
	case <-b.stopped:
		return nil, ErrClosed
	}
}

// Changes drains the cell flips published since the previous call, oldest
// first. It never blocks on the board goroutine.
func (b *Board) Changes() []Change {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = nil
	return out
}

// Stats returns the generation and population after the last applied request.
func (b *Board) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// Apply paints a batch of changes.
func Apply(p render.CellPainter, changes []Change) {
	for _, c := range changes {
		p.SetCell(c.X, c.Y, c.Alive)
	}
}
