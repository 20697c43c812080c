package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clony-bird/internal/audio"
	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
	"github.com/vovakirdan/clony-bird/internal/games/clony"
	"github.com/vovakirdan/clony-bird/internal/platform/console"
	"github.com/vovakirdan/clony-bird/internal/platform/tui"
	"github.com/vovakirdan/clony-bird/internal/storage"
)

// Frontends selectable with --renderer.
const (
	rendererTea   = "tea"
	rendererTcell = "tcell"
)

// terminalSize reports the size of the terminal on stdout.
var terminalSize = func() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: stdout is not a terminal", core.ErrNoTerminal)
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", core.ErrNoTerminal, err)
	}
	return w, h, nil
}

// preflight sizes the game to the terminal and rejects terminals that
// cannot hold it, before the screen is touched.
func preflight(cfg config.GameConfig, size func() (int, int, error), fps int, seed int64) (core.RuntimeConfig, error) {
	w, h, err := size()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if err := core.CheckTerminalSize(w, h); err != nil {
		return core.RuntimeConfig{}, err
	}
	if err := cfg.CheckField(core.PlayfieldForScreen(w, h).Height); err != nil {
		return core.RuntimeConfig{}, err
	}

	if fps <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", fps)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: fps,
		Seed:     seed,
	}, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagRenderer != rendererTea && flagRenderer != rendererTcell {
		return fmt.Errorf("unknown renderer %q (want %s or %s)", flagRenderer, rendererTea, rendererTcell)
	}

	logger, logCloser, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, src, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", src, "difficulty", flagDifficulty)

	rt, err := preflight(cfg, terminalSize, flagFPS, flagSeed)
	if err != nil {
		return err
	}

	opts := []clony.Option{clony.WithLogger(logger)}
	ledger, err := storage.OpenSession()
	if err != nil {
		logger.Warn("session ledger unavailable, best score is kept in memory only", "err", err)
	} else {
		defer ledger.Close()
		opts = append(opts, clony.WithRecorder(ledger))
	}

	player := openPlayer(logger)
	defer player.Close()

	game := clony.New(cfg, opts...)
	logger.Info("starting", "game", game.ID(), "renderer", flagRenderer, "size", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH), "fps", rt.TickRate, "seed", rt.Seed)

	// Stderr shares the terminal with the game while it is in raw mode
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}
	runErr := runFrontend(cmd.Context(), game, rt, player, logger)
	if flagLogFile == "" {
		logger.SetOutput(os.Stderr)
	}
	if runErr != nil {
		return runErr
	}

	if ledger != nil {
		printSummary(cmd, ledger, rt.TickRate, logger)
	}
	return nil
}

func runFrontend(ctx context.Context, game core.Game, rt core.RuntimeConfig, player core.SoundPlayer, logger *log.Logger) error {
	switch flagRenderer {
	case rendererTcell:
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		surface, err := console.Open()
		if err != nil {
			return err
		}
		defer surface.Close()

		return console.Run(ctx, surface, game, rt,
			console.WithAudio(player),
			console.WithLogger(logger),
		)

	default:
		return tui.Run(game, rt,
			tui.WithAudio(player),
			tui.WithLogger(logger),
		)
	}
}

// openPlayer returns the speaker when --sound is set and the device opens,
// and a silent player otherwise.
func openPlayer(logger *log.Logger) core.SoundPlayer {
	if !flagSound {
		return core.Silent{}
	}
	sp, err := audio.NewSpeaker(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return core.Silent{}
	}
	return sp
}

func printSummary(cmd *cobra.Command, ledger *storage.Ledger, tickRate int, logger *log.Logger) {
	total, err := ledger.Count()
	if err != nil {
		logger.Warn("cannot read session", "err", err)
		return
	}
	top, err := ledger.TopAttempts(10)
	if err != nil {
		logger.Warn("cannot read session", "err", err)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.Summary(top, total, tickRate))
}
