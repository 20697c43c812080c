package clony

import (
	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// Avatar is the bird. It only moves vertically; Column never changes.
type Avatar struct {
	Row      float64 // Vertical position, grows downward
	Velocity float64 // Rows per tick, negative is up
	Column   int

	physics config.Physics
}

// NewAvatar places the avatar at its start position: a quarter of the way
// across the field, halfway down, at rest.
func NewAvatar(field core.Playfield, cfg config.GameConfig) Avatar {
	return Avatar{
		Row:     float64(field.Height / 2),
		Column:  field.Width / cfg.Avatar.ColumnDivisor,
		physics: cfg.Physics,
	}
}

// ApplyGravity accelerates the avatar downward, capped at terminal velocity.
func (a *Avatar) ApplyGravity() {
	a.Velocity += a.physics.Gravity
	if a.Velocity > a.physics.MaxFallSpeed {
		a.Velocity = a.physics.MaxFallSpeed
	}
}

// Jump replaces the current velocity with the jump impulse.
func (a *Avatar) Jump() {
	a.Velocity = a.physics.JumpImpulse
}

// Advance moves the avatar by one tick of velocity. Position is never
// clamped here; leaving the playfield is detected as a collision.
func (a *Avatar) Advance() {
	a.Row += a.Velocity
}

// Cell returns the grid row the avatar occupies.
func (a Avatar) Cell() int {
	return core.RowCell(a.Row)
}
