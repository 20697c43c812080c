package clony

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// scriptedRand returns values from a fixed script, clamped to [0, n).
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	if v >= n {
		v = n - 1
	}
	return v
}

func newTestStream(rng RandSource) *Stream {
	field := core.Playfield{Width: 80, Height: 23}
	return NewStream(rng, field, config.DefaultConfig().Obstacles)
}

func TestStreamSpawnsAtRightEdgeWhenEmpty(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(1)))

	if !s.MaybeSpawn() {
		t.Fatal("empty stream should spawn")
	}
	pipes := s.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("expected 1 pipe, got %d", len(pipes))
	}
	if pipes[0].X != 80 {
		t.Errorf("first pipe X = %v, expected right edge 80", pipes[0].X)
	}
	if pipes[0].Width != 3 {
		t.Errorf("pipe width = %d, expected 3", pipes[0].Width)
	}
}

func TestStreamSpawnsOnePerCall(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(1)))
	s.MaybeSpawn()

	if s.MaybeSpawn() {
		t.Error("second spawn should wait until the last pipe scrolls a full spacing in")
	}

	// Scroll far enough that two spacings fit; still only one pipe per call.
	s.Advance(60)
	if !s.MaybeSpawn() {
		t.Fatal("spawn expected after scrolling")
	}
	if len(s.Pipes()) != 2 {
		t.Errorf("expected 2 pipes, got %d", len(s.Pipes()))
	}
}

func TestStreamSpacingIsConstant(t *testing.T) {
	for _, speed := range []float64{1.0, 1.5, 2.0, 2.5, 3.0} {
		s := newTestStream(rand.New(rand.NewSource(7)))

		for tick := 0; tick < 300; tick++ {
			s.Advance(speed)
			s.MaybeSpawn()
			s.Reap()

			pipes := s.Pipes()
			for i := 1; i < len(pipes); i++ {
				if d := pipes[i].X - pipes[i-1].X; d != 25 {
					t.Fatalf("speed %v tick %d: spacing %v, expected 25", speed, tick, d)
				}
			}
		}
	}
}

func TestStreamGapsStayInsideField(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(99)))
	lo, hi := s.GapRange()
	if lo != 2 || hi != 13 {
		t.Fatalf("GapRange() = (%d, %d), expected (2, 13)", lo, hi)
	}

	for i := 0; i < 500; i++ {
		s.Reset()
		s.MaybeSpawn()
		p := s.Pipes()[0]

		if p.GapTop < lo || p.GapTop > hi {
			t.Fatalf("gap top %d outside [%d, %d]", p.GapTop, lo, hi)
		}
		if p.GapBottom-p.GapTop != 8 {
			t.Fatalf("gap height %d, expected 8", p.GapBottom-p.GapTop)
		}
		if p.GapBottom > 23-2 {
			t.Fatalf("gap bottom %d violates the bottom margin", p.GapBottom)
		}
	}
}

func TestStreamBoundsConsecutiveGapShift(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(3)))
	maxShift := config.DefaultConfig().Obstacles.MaxGapShift

	var tops []int
	for tick := 0; tick < 2000; tick++ {
		s.Advance(1.0)
		if s.MaybeSpawn() {
			pipes := s.Pipes()
			tops = append(tops, pipes[len(pipes)-1].GapTop)
		}
		s.Reap()
	}

	if len(tops) < 50 {
		t.Fatalf("expected many spawns, got %d", len(tops))
	}
	for i := 1; i < len(tops); i++ {
		shift := core.Max(tops[i]-tops[i-1], tops[i-1]-tops[i])
		if shift > maxShift {
			t.Fatalf("gap %d shifted %d rows, max is %d", i, shift, maxShift)
		}
	}
}

func TestStreamExtremeGapsAreBounded(t *testing.T) {
	// First draw takes the topmost gap, the second asks for the lowest one
	// and is held to within max_gap_shift of the first.
	s := newTestStream(&scriptedRand{values: []int{0, 1000}})

	s.MaybeSpawn()
	first := s.Pipes()[0].GapTop
	if first != 2 {
		t.Fatalf("first gap top = %d, expected 2", first)
	}

	s.Advance(25)
	s.MaybeSpawn()
	second := s.Pipes()[1].GapTop
	if second != 7 {
		t.Errorf("second gap top = %d, expected 7 (2 + max shift)", second)
	}
}

func TestStreamReap(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(1)))
	s.pipes = []Pipe{
		{X: -3, Width: 3},
		{X: -2.5, Width: 3},
		{X: -2, Width: 3},
		{X: 40, Width: 3},
	}

	if removed := s.Reap(); removed != 2 {
		t.Errorf("Reap() removed %d, expected 2", removed)
	}
	if len(s.Pipes()) != 2 || s.Pipes()[0].X != -2 {
		t.Errorf("unexpected pipes after Reap: %+v", s.Pipes())
	}
}

func TestStreamReset(t *testing.T) {
	s := newTestStream(rand.New(rand.NewSource(1)))
	s.MaybeSpawn()
	s.Reset()

	if len(s.Pipes()) != 0 {
		t.Errorf("Reset should clear pipes, got %d", len(s.Pipes()))
	}
	if !s.MaybeSpawn() || s.Pipes()[0].X != 80 {
		t.Error("stream should spawn at the right edge after Reset")
	}
}

func TestStreamSameSeedSameGaps(t *testing.T) {
	a := newTestStream(rand.New(rand.NewSource(42)))
	b := newTestStream(rand.New(rand.NewSource(42)))

	for tick := 0; tick < 500; tick++ {
		a.Advance(1.5)
		b.Advance(1.5)
		a.MaybeSpawn()
		b.MaybeSpawn()
		a.Reap()
		b.Reap()
	}

	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) != len(pb) {
		t.Fatalf("pipe counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
