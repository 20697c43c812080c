// Package clony implements Clony Bird, a Flappy Bird-style game.
// The player steers a bird through gaps in scrolling pipes across five
// levels of increasing speed.
package clony

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// Recorder keeps the results of finished attempts for the current process.
type Recorder interface {
	RecordAttempt(score, level, ticks int) error
	BestScore() (int, error)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRecorder sets where finished attempts are recorded.
func WithRecorder(r Recorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// Game owns the session state: phase, avatar, pipes, score and level.
// It is driven one tick at a time by a frontend and is not safe for
// concurrent use.
type Game struct {
	cfg      config.GameConfig
	runtime  core.RuntimeConfig
	field    core.Playfield
	avatar   Avatar
	pipes    *Stream
	progress Progression

	phase     core.Phase
	score     int
	paused    bool
	tickCount int // Ticks played in the current attempt
	banner    int // Ticks left to show the level-up banner
	attempt   int
	best      int

	recorder Recorder
	logger   *log.Logger
}

var _ core.Game = (*Game)(nil)

// New creates a game with the given configuration. Reset must be called
// before the first Step.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used in logs and the session ledger.
func (g *Game) ID() string {
	return "clony"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Clony Bird"
}

// Reset sizes the playfield to the screen, seeds gap placement and returns
// to the menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.field = core.PlayfieldForScreen(rt.ScreenW, rt.ScreenH)
	g.pipes = NewStream(rand.New(rand.NewSource(rt.Seed)), g.field, g.cfg.Obstacles)
	g.progress = NewProgression(g.cfg.Levels)
	g.attempt = 0
	g.best = 0
	g.newAttempt()
	g.phase = core.PhaseMenu
}

// newAttempt puts avatar, pipes, score and level back to their start values.
func (g *Game) newAttempt() {
	g.avatar = NewAvatar(g.field, g.cfg)
	g.pipes.Reset()
	g.progress.Reset()
	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.banner = 0
	g.attempt++
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.logger.Debug("quit requested", "phase", g.phase)
		return core.StepResult{State: g.State(), Quit: true}
	}

	var events []core.Event
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionJump) {
			g.phase = core.PhasePlaying
			events = append(events, core.EventStart)
			g.logger.Info("attempt started", "attempt", g.attempt)
		}

	case core.PhasePlaying:
		events = g.tick(in)

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.newAttempt()
			g.phase = core.PhasePlaying
			events = append(events, core.EventRestart)
			g.logger.Info("attempt restarted", "attempt", g.attempt)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// tick runs one Playing tick: input, physics, pipes, collision, scoring.
func (g *Game) tick(in core.InputFrame) []core.Event {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	var events []core.Event
	g.tickCount++

	if in.Has(core.ActionJump) {
		g.avatar.Jump()
		events = append(events, core.EventFlap)
	}
	g.avatar.ApplyGravity()
	g.avatar.Advance()

	g.pipes.Advance(g.progress.Speed())
	g.pipes.MaybeSpawn()
	g.pipes.Reap()

	if CheckCollision(g.avatar, g.pipes.Pipes(), g.field) {
		g.crash()
		return append(events, core.EventCrash)
	}

	if points := CheckScoring(g.avatar, g.pipes.Pipes()); points > 0 {
		g.score += points
		events = append(events, core.EventScore)

		if level, up := g.progress.Advance(points); up {
			g.banner = g.cfg.Levels.BannerTicks
			events = append(events, core.EventLevelUp)
			g.logger.Info("level up", "level", level, "speed", g.progress.Speed(), "score", g.score)
		}
	}

	if g.banner > 0 {
		g.banner--
	}
	return events
}

// crash ends the attempt and records it.
func (g *Game) crash() {
	g.phase = core.PhaseGameOver
	g.banner = 0
	g.logger.Info("attempt over", "attempt", g.attempt, "score", g.score, "level", g.progress.Level, "ticks", g.tickCount)

	if g.score > g.best {
		g.best = g.score
	}
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordAttempt(g.score, g.progress.Level, g.tickCount); err != nil {
		g.logger.Warn("could not record attempt", "err", err)
		return
	}
	if best, err := g.recorder.BestScore(); err == nil {
		g.best = best
	} else {
		g.logger.Warn("could not read session best", "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase,
		Score:      g.score,
		LevelScore: g.progress.LevelScore,
		Level:      g.progress.Level,
		Speed:      g.progress.Speed(),
		Paused:     g.paused,
	}
}

// Playfield returns the flight area.
func (g *Game) Playfield() core.Playfield {
	return g.field
}

// Avatar returns a copy of the avatar.
func (g *Game) Avatar() Avatar {
	return g.avatar
}

// Pipes returns a copy of the active pipes.
func (g *Game) Pipes() []Pipe {
	return append([]Pipe(nil), g.pipes.Pipes()...)
}

// Attempt returns the 1-based number of the current attempt.
func (g *Game) Attempt() int {
	return g.attempt
}

// BestScore returns the best score of this process.
func (g *Game) BestScore() int {
	return g.best
}
