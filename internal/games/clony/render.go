package clony

import (
	"fmt"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Visual characters for rendering.
const (
	AvatarChar    = 'O'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.field.GroundRow(), dst.Width(), GroundChar, core.ColorGreen)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	dst.SetColored(g.avatar.Column, g.field.ClampRow(g.avatar.Row), AvatarChar, core.ColorYellow)

	g.drawHUD(dst)

	if g.banner > 0 {
		dst.DrawTextCentered(g.field.Height/2, fmt.Sprintf("LEVEL %d!", g.progress.Level), core.ColorRed)
	}

	switch {
	case g.phase == core.PhaseMenu:
		dst.DrawTextCentered(g.field.Height/2, "Press SPACE to start/jump", core.ColorWhite)
	case g.phase == core.PhaseGameOver:
		drawMessageBox(dst, core.ColorRed,
			"GAME OVER!",
			fmt.Sprintf("Reached Level: %d | Total Score: %d", g.progress.Level, g.score),
			fmt.Sprintf("Session best: %d (attempt %d)", g.best, g.attempt),
			"Press R to restart, Q to quit",
		)
	case g.paused:
		drawMessageBox(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	}
}

// drawHUD draws the level and score lines over the top rows.
func (g *Game) drawHUD(dst *core.Screen) {
	level := fmt.Sprintf(" Level: %d/%d ", g.progress.Level, g.progress.MaxLevel())
	score := fmt.Sprintf(" Level Score: %d/%d | Total: %d ", g.progress.LevelScore, g.progress.Threshold(), g.score)
	dst.DrawTextColored(2, 0, level, core.ColorWhite)
	dst.DrawTextColored(2, 1, score, core.ColorWhite)
}

// drawPipe renders a single pipe from the top of the field to the ground.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	col := p.Column()
	for x := col; x < p.Right(); x++ {
		if !g.field.ContainsColumn(x) {
			continue
		}
		for y := 0; y < p.GapTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if p.GapTop > 0 {
			dst.SetColored(x, p.GapTop-1, PipeCapTop, core.ColorGreen)
		}
		for y := p.GapBottom; y < g.field.Height; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if p.GapBottom < g.field.Height {
			dst.SetColored(x, p.GapBottom, PipeCapBottom, core.ColorGreen)
		}
	}
}

// drawMessageBox draws a framed block of centered lines in the middle of the screen.
func drawMessageBox(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
