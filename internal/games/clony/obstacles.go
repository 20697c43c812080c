package clony

import (
	"math"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// RandSource is the random source used for gap placement.
// *rand.Rand satisfies it; tests may pass a scripted source.
type RandSource interface {
	Intn(n int) int
}

// Pipe is a pair of top and bottom segments sharing a column span,
// with a passable gap of rows [GapTop, GapBottom) between them.
type Pipe struct {
	X         float64 // Left edge, scrolls left every tick
	Width     int
	GapTop    int
	GapBottom int
	Passed    bool // Set once the avatar is fully past this pipe
}

// Column returns the grid column of the pipe's left edge.
func (p Pipe) Column() int {
	return int(math.Floor(p.X))
}

// Right returns the column one past the pipe's right edge.
func (p Pipe) Right() int {
	return p.Column() + p.Width
}

// Covers reports whether the pipe's span includes the column.
func (p Pipe) Covers(col int) bool {
	return col >= p.Column() && col < p.Right()
}

// InGap reports whether a grid row is inside the passable band.
func (p Pipe) InGap(row int) bool {
	return row >= p.GapTop && row < p.GapBottom
}

// Stream handles spawning, movement and removal of pipes.
// Pipes are kept in spawn order, so the last one is always the rightmost.
type Stream struct {
	pipes      []Pipe
	rng        RandSource
	field      core.Playfield
	cfg        config.Obstacles
	lastGapTop int
	hasLastGap bool
}

// NewStream creates an empty pipe stream for the given playfield.
func NewStream(rng RandSource, field core.Playfield, cfg config.Obstacles) *Stream {
	return &Stream{
		pipes: make([]Pipe, 0, 8),
		rng:   rng,
		field: field,
		cfg:   cfg,
	}
}

// Reset clears all pipes. The random source keeps its state so a restarted
// attempt gets fresh gaps while a whole run stays reproducible from its seed.
func (s *Stream) Reset() {
	s.pipes = s.pipes[:0]
	s.hasLastGap = false
}

// Advance moves every pipe left by the base step scaled by the speed multiplier.
func (s *Stream) Advance(speed float64) {
	step := s.cfg.BaseStep * speed
	for i := range s.pipes {
		s.pipes[i].X -= step
	}
}

// MaybeSpawn appends at most one pipe. An empty stream spawns at the right
// edge; otherwise a pipe spawns once the rightmost one has scrolled a full
// spacing inside the field, exactly one spacing behind it.
// Returns true if a pipe was added.
func (s *Stream) MaybeSpawn() bool {
	x := float64(s.field.Width)
	if n := len(s.pipes); n > 0 {
		next := s.pipes[n-1].X + float64(s.cfg.Spacing)
		if next > float64(s.field.Width) {
			return false
		}
		x = next
	}

	top := s.nextGapTop()
	s.pipes = append(s.pipes, Pipe{
		X:         x,
		Width:     s.cfg.PipeWidth,
		GapTop:    top,
		GapBottom: top + s.cfg.GapHeight,
	})
	return true
}

// Reap removes pipes that have scrolled completely past the left edge.
// Returns the number of pipes removed.
func (s *Stream) Reap() int {
	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if p.Right() > 0 {
			kept = append(kept, p)
		}
	}
	removed := len(s.pipes) - len(kept)
	s.pipes = kept
	return removed
}

// Pipes returns the active pipes, leftmost first.
// The slice is shared with the stream so scoring can mark pipes passed.
func (s *Stream) Pipes() []Pipe {
	return s.pipes
}

// GapRange returns the inclusive range of gap tops that keep the gap and
// its margins inside the playfield.
func (s *Stream) GapRange() (lo, hi int) {
	lo = s.cfg.Margin
	hi = s.field.Height - s.cfg.Margin - s.cfg.GapHeight
	if hi < lo {
		hi = lo // Edge case for very small fields
	}
	return lo, hi
}

// nextGapTop picks a uniform gap top within GapRange, no further than
// MaxGapShift rows from the previous gap so the avatar can always reach it.
func (s *Stream) nextGapTop() int {
	lo, hi := s.GapRange()
	if s.hasLastGap {
		lo = core.Max(lo, s.lastGapTop-s.cfg.MaxGapShift)
		hi = core.Min(hi, s.lastGapTop+s.cfg.MaxGapShift)
	}

	top := lo
	if hi > lo {
		top = lo + s.rng.Intn(hi-lo+1)
	}

	s.lastGapTop = top
	s.hasLastGap = true
	return top
}
