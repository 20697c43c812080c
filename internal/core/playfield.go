package core

import "math"

// Playfield is the fixed-size flight area of the game.
//
// Rows grow downward: row 0 is the top of the screen and rows [0, Height)
// are open air. The screen row at Height holds the ground line, so a
// playfield always needs one more screen row than its Height.
type Playfield struct {
	Width  int
	Height int
}

// PlayfieldForScreen returns the playfield that fits a screen of the given size.
func PlayfieldForScreen(screenW, screenH int) Playfield {
	return Playfield{Width: screenW, Height: screenH - 1}
}

// GroundRow returns the screen row where the ground is drawn.
func (p Playfield) GroundRow() int {
	return p.Height
}

// ContainsRow reports whether a (fractional) row lies inside [0, Height).
func (p Playfield) ContainsRow(row float64) bool {
	return row >= 0 && row < float64(p.Height)
}

// ContainsColumn reports whether a column lies inside [0, Width).
func (p Playfield) ContainsColumn(col int) bool {
	return col >= 0 && col < p.Width
}

// RowCell converts a fractional row into the grid row it occupies.
func RowCell(row float64) int {
	return int(math.Floor(row))
}

// ClampRow maps a fractional row onto a drawable grid row.
// Only rendering clamps; physics never does.
func (p Playfield) ClampRow(row float64) int {
	return Clamp(RowCell(row), 0, p.Height-1)
}
