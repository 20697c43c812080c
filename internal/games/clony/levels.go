package clony

import "github.com/vovakirdan/clony-bird/internal/config"

// Progression tracks the current level and the points collected within it.
type Progression struct {
	Level      int
	LevelScore int

	levels config.Levels
}

// NewProgression starts at level 1 with no points.
func NewProgression(levels config.Levels) Progression {
	return Progression{Level: 1, levels: levels}
}

// Reset returns to level 1.
func (p *Progression) Reset() {
	p.Level = 1
	p.LevelScore = 0
}

// Advance adds points to the current level. When the level score reaches
// the threshold the level goes up by one (up to the last level) and the
// surplus carries over. At the last level points still count toward the
// total score, but the level score stays capped at the threshold.
func (p *Progression) Advance(points int) (level int, leveledUp bool) {
	p.LevelScore += points
	threshold := p.levels.PointsPerLevel

	for p.LevelScore >= threshold && p.Level < p.levels.MaxLevel() {
		p.Level++
		p.LevelScore -= threshold
		leveledUp = true
	}
	if p.Level == p.levels.MaxLevel() && p.LevelScore > threshold {
		p.LevelScore = threshold
	}
	return p.Level, leveledUp
}

// Speed returns the obstacle speed multiplier of the current level.
func (p Progression) Speed() float64 {
	return p.levels.SpeedFor(p.Level)
}

// MaxLevel returns the last level.
func (p Progression) MaxLevel() int {
	return p.levels.MaxLevel()
}

// Threshold returns the points needed to clear a level.
func (p Progression) Threshold() int {
	return p.levels.PointsPerLevel
}
