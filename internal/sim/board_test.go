package sim

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func runBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b := NewBoard(w, h)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return b
}

func settle(t *testing.T, b *Board) {
	t.Helper()
	if _, err := b.Snapshot(); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
}

func TestToggleQueuesChange(t *testing.T) {
	b := runBoard(t, 5, 5)
	b.Toggle(1, 2)
	b.Toggle(7, 0)
	b.Toggle(1, 2)
	settle(t, b)

	got := b.Changes()
	want := []Change{{X: 1, Y: 2, Alive: true}, {X: 1, Y: 2, Alive: false}}
	if !slices.Equal(got, want) {
		t.Fatalf("Changes() = %v, expected %v", got, want)
	}
	if more := b.Changes(); more != nil {
		t.Fatalf("Changes() did not drain the queue, got %v", more)
	}
}

func TestStepPublishesDiff(t *testing.T) {
	b := runBoard(t, 5, 5)
	b.Toggle(2, 1)
	b.Toggle(2, 2)
	b.Toggle(2, 3)
	settle(t, b)
	b.Changes()

	if err := b.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	got := b.Changes()
	want := []Change{
		{X: 2, Y: 1, Alive: false},
		{X: 1, Y: 2, Alive: true},
		{X: 3, Y: 2, Alive: true},
		{X: 2, Y: 3, Alive: false},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("blinker step changes = %v, expected %v", got, want)
	}
	if s := b.Stats(); s.Generation != 1 || s.Population != 3 {
		t.Fatalf("Stats() = %+v, expected generation 1 population 3", s)
	}
}

func TestClearPublishesDeaths(t *testing.T) {
	b := runBoard(t, 4, 4)
	b.Toggle(0, 0)
	b.Toggle(3, 3)
	b.Step()
	b.Changes()

	b.Toggle(1, 1)
	b.Clear()
	g, err := b.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatalf("Clear left %d live cells", g.Population())
	}
	got := b.Changes()
	want := []Change{{X: 1, Y: 1, Alive: true}, {X: 1, Y: 1, Alive: false}}
	if !slices.Equal(got, want) {
		t.Fatalf("Changes() = %v, expected %v", got, want)
	}
	if s := b.Stats(); s.Generation != 0 || s.Population != 0 {
		t.Fatalf("Stats() after Clear = %+v", s)
	}

	if err := b.Step(); err != nil {
		t.Fatal(err)
	}
	if c := b.Changes(); c != nil {
		t.Fatalf("step of a cleared board changed cells: %v", c)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := runBoard(t, 3, 3)
	b.Toggle(1, 1)
	g, err := b.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)
	g2, _ := b.Snapshot()
	if g2.Alive(0, 0) || !g2.Alive(1, 1) {
		t.Fatal("snapshot shares storage with the board")
	}
}

func TestClosedBoardRejectsRequests(t *testing.T) {
	b := NewBoard(3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Run(ctx); err != nil {
		t.Fatalf("Run returned %v on cancellation", err)
	}
	if err := b.Step(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Step on closed board = %v, expected ErrClosed", err)
	}
	if _, err := b.Snapshot(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Snapshot on closed board = %v, expected ErrClosed", err)
	}
	for i := 0; i < inboxSize+1; i++ {
		b.Toggle(0, 0)
	}
}
