package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Terminal is what the loop needs from a display.
type Terminal interface {
	core.InputPoller
	Render(frame *core.Screen) error
	Notice(msg string) error
	Size() (int, int)
}

// Option configures Run.
type Option func(*loop)

// WithAudio plays effects for the events of each tick.
func WithAudio(p core.SoundPlayer) Option {
	return func(l *loop) {
		l.player = p
	}
}

// WithLogger sets the logger for loop events.
func WithLogger(lg *log.Logger) Option {
	return func(l *loop) {
		l.logger = lg
	}
}

type loop struct {
	term   Terminal
	game   core.Game
	cfg    core.RuntimeConfig
	screen *core.Screen
	player core.SoundPlayer
	logger *log.Logger
}

// Run resets game to cfg and drives it at cfg.TickRate until the player
// quits or ctx is cancelled. Both end the loop without error.
func Run(ctx context.Context, term Terminal, game core.Game, cfg core.RuntimeConfig, opts ...Option) error {
	l := &loop{
		term:   term,
		game:   game,
		cfg:    cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player: core.Silent{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.run(ctx)
}

func (l *loop) run(ctx context.Context) error {
	l.game.Reset(l.cfg)

	interval := time.Second / 20
	if l.cfg.TickRate > 0 {
		interval = time.Second / time.Duration(l.cfg.TickRate)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	suspended := false
	for {
		frame := core.DrainInput(l.term)

		w, h := l.term.Size()
		fits := w >= l.cfg.ScreenW && h >= l.cfg.ScreenH
		if fits == suspended {
			suspended = !fits
			l.logger.Debug("terminal resized", "width", w, "height", h, "suspended", suspended)
		}

		if suspended {
			if frame.Has(core.ActionQuit) {
				return nil
			}
			if !frame.Empty() {
				l.logger.Debug("input dropped while suspended", "actions", len(frame.Actions))
			}
			msg := fmt.Sprintf("Terminal too small: %dx%d, need %dx%d", w, h, l.cfg.ScreenW, l.cfg.ScreenH)
			if err := l.term.Notice(msg); err != nil {
				return err
			}
		} else {
			result := l.game.Step(frame)
			l.player.Play(result.Events)
			if result.Quit {
				return nil
			}

			l.game.Render(l.screen)
			if err := l.term.Render(l.screen); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "err", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}
