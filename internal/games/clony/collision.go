package clony

import "github.com/vovakirdan/clony-bird/internal/core"

// CheckCollision reports whether the avatar has left the playfield or sits
// in a pipe's column span outside that pipe's gap.
func CheckCollision(a Avatar, pipes []Pipe, field core.Playfield) bool {
	if !field.ContainsRow(a.Row) {
		return true
	}
	row := a.Cell()
	for _, p := range pipes {
		if p.Covers(a.Column) && !p.InGap(row) {
			return true
		}
	}
	return false
}

// CheckScoring marks every pipe the avatar is now fully past and returns
// one point per newly passed pipe. A pipe scores at most once.
func CheckScoring(a Avatar, pipes []Pipe) int {
	points := 0
	for i := range pipes {
		if !pipes[i].Passed && pipes[i].Right() <= a.Column {
			pipes[i].Passed = true
			points++
		}
	}
	return points
}
