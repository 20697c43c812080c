// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Avatar    Avatar    `yaml:"avatar"`
	Levels    Levels    `yaml:"levels"`
}

// Physics defines the avatar's vertical motion.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Obstacles defines pipe geometry and placement.
type Obstacles struct {
	BaseStep    float64 `yaml:"base_step"`
	PipeWidth   int     `yaml:"pipe_width"`
	Spacing     int     `yaml:"spacing"`
	GapHeight   int     `yaml:"gap_height"`
	Margin      int     `yaml:"margin"`
	MaxGapShift int     `yaml:"max_gap_shift"`
}

// Avatar defines where the avatar flies.
type Avatar struct {
	ColumnDivisor int `yaml:"column_divisor"`
}

// The game always has this many levels, each cleared by the same number
// of points. Only the per-level speeds are tunable.
const (
	LevelCount     = 5
	PointsPerLevel = 30
)

// Levels defines level thresholds and per-level obstacle speed.
type Levels struct {
	PointsPerLevel int       `yaml:"points_per_level"`
	BannerTicks    int       `yaml:"banner_ticks"`
	Speed          []float64 `yaml:"speed"` // Speed[i] is the multiplier of level i+1
}

// MaxLevel returns the highest reachable level.
func (l Levels) MaxLevel() int {
	return len(l.Speed)
}

// SpeedFor returns the obstacle speed multiplier of a level.
// Levels outside [1, MaxLevel] are clamped.
func (l Levels) SpeedFor(level int) float64 {
	if len(l.Speed) == 0 {
		return 1.0
	}
	if level < 1 {
		level = 1
	}
	if level > len(l.Speed) {
		level = len(l.Speed)
	}
	return l.Speed[level-1]
}

// ClimbRate returns how many rows per tick the avatar gains when flapping
// every tick. Jump resets velocity before gravity applies in the same tick.
func (p Physics) ClimbRate() float64 {
	return -(p.JumpImpulse + p.Gravity)
}

// MaxReachableShift returns the largest vertical distance between two
// consecutive gap tops the avatar can still climb at the fastest level.
func (c GameConfig) MaxReachableShift() int {
	fastest := 0.0
	for _, s := range c.Levels.Speed {
		fastest = math.Max(fastest, s)
	}
	if fastest <= 0 || c.Obstacles.BaseStep <= 0 {
		return 0
	}
	ticks := float64(c.Obstacles.Spacing) / (c.Obstacles.BaseStep * fastest)
	return int(math.Floor(ticks * c.Physics.ClimbRate()))
}

// MinFieldHeight returns the smallest playfield height that holds a gap
// with its margins.
func (c GameConfig) MinFieldHeight() int {
	return c.Obstacles.GapHeight + 2*c.Obstacles.Margin
}

// CheckField returns an error if a playfield of the given height cannot
// hold a gap with its margins.
func (c GameConfig) CheckField(height int) error {
	if height < c.MinFieldHeight() {
		return fmt.Errorf("%w: playfield has %d rows, gap_height %d with margin %d needs %d",
			ErrInvalidConfig, height, c.Obstacles.GapHeight, c.Obstacles.Margin, c.MinFieldHeight())
	}
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	p, o, l := c.Physics, c.Obstacles, c.Levels
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", p.JumpImpulse)
	check(p.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	check(p.ClimbRate() > 0, "physics.jump_impulse %v cannot overcome gravity %v", p.JumpImpulse, p.Gravity)

	check(o.BaseStep > 0, "obstacles.base_step must be positive, got %v", o.BaseStep)
	check(o.PipeWidth >= 1, "obstacles.pipe_width must be at least 1, got %d", o.PipeWidth)
	check(o.Spacing > o.PipeWidth, "obstacles.spacing %d must exceed pipe_width %d", o.Spacing, o.PipeWidth)
	check(o.GapHeight >= 3, "obstacles.gap_height must be at least 3, got %d", o.GapHeight)
	check(o.Margin >= 0, "obstacles.margin must not be negative, got %d", o.Margin)
	check(o.MaxGapShift >= 1, "obstacles.max_gap_shift must be at least 1, got %d", o.MaxGapShift)

	check(c.Avatar.ColumnDivisor >= 2, "avatar.column_divisor must be at least 2, got %d", c.Avatar.ColumnDivisor)

	check(l.PointsPerLevel == PointsPerLevel, "levels.points_per_level must be %d, got %d", PointsPerLevel, l.PointsPerLevel)
	check(l.BannerTicks >= 0, "levels.banner_ticks must not be negative, got %d", l.BannerTicks)
	check(len(l.Speed) == LevelCount, "levels.speed must list exactly %d levels, got %d", LevelCount, len(l.Speed))
	for i, s := range l.Speed {
		check(s > 0, "levels.speed[%d] must be positive, got %v", i, s)
		if i > 0 {
			check(s >= l.Speed[i-1], "levels.speed[%d] %v is slower than the level before it", i, s)
		}
	}

	if len(errs) == 0 {
		fastest := o.BaseStep * l.Speed[0]
		for _, s := range l.Speed {
			fastest = math.Max(fastest, o.BaseStep*s)
		}
		check(fastest <= float64(o.PipeWidth),
			"pipes move %v columns per tick at the top level, more than pipe_width %d", fastest, o.PipeWidth)

		reach := c.MaxReachableShift()
		check(o.MaxGapShift <= reach,
			"obstacles.max_gap_shift %d is unreachable, avatar climbs at most %d rows between pipes", o.MaxGapShift, reach)
	}

	return errors.Join(errs...)
}
