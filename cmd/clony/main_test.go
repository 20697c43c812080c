package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestPreflight(t *testing.T) {
	rt, err := preflight(config.DefaultConfig(), fixedSize(80, 24), 20, 42)
	if err != nil {
		t.Fatalf("preflight() failed: %v", err)
	}
	want := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 42}
	if rt != want {
		t.Errorf("preflight() = %+v, expected %+v", rt, want)
	}
}

func TestPreflightSeedsFromClock(t *testing.T) {
	rt, err := preflight(config.DefaultConfig(), fixedSize(80, 24), 20, 0)
	if err != nil {
		t.Fatalf("preflight() failed: %v", err)
	}
	if rt.Seed == 0 {
		t.Error("seed 0 should be replaced")
	}
}

func TestPreflightErrors(t *testing.T) {
	huge := config.DefaultConfig()
	huge.Obstacles.GapHeight = 30

	tests := []struct {
		name string
		cfg  config.GameConfig
		size func() (int, int, error)
		fps  int
		want error
	}{
		{"too small", config.DefaultConfig(), fixedSize(30, 15), 20, core.ErrTerminalTooSmall},
		{"too narrow", config.DefaultConfig(), fixedSize(39, 40), 20, core.ErrTerminalTooSmall},
		{"too short", config.DefaultConfig(), fixedSize(120, 19), 20, core.ErrTerminalTooSmall},
		{"no terminal", config.DefaultConfig(), func() (int, int, error) {
			return 0, 0, core.ErrNoTerminal
		}, 20, core.ErrNoTerminal},
		{"gap does not fit", huge, fixedSize(40, 20), 20, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := preflight(tt.cfg, tt.size, tt.fps, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("preflight() = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestPreflightRejectsFPS(t *testing.T) {
	if _, err := preflight(config.DefaultConfig(), fixedSize(80, 24), 0, 1); err == nil {
		t.Error("fps 0 should be rejected")
	}
}

func TestLoadGameConfigPreset(t *testing.T) {
	normal, _, err := loadGameConfig("", "")
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	easy, _, err := loadGameConfig("", "easy")
	if err != nil {
		t.Fatalf("loadGameConfig(easy) failed: %v", err)
	}
	if easy.Obstacles.GapHeight <= normal.Obstacles.GapHeight {
		t.Errorf("easy gap %d should be wider than normal %d", easy.Obstacles.GapHeight, normal.Obstacles.GapHeight)
	}

	if _, _, err := loadGameConfig("", "nightmare"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--difficulty", "hard"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagDifficulty = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	text := out.String()
	if !strings.HasPrefix(text, "# source: ") {
		t.Errorf("output should start with the source, got %q", text)
	}

	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("output is not a valid config: %v", err)
	}
	if cfg.Obstacles.GapHeight != config.DefaultConfig().Obstacles.GapHeight-2 {
		t.Errorf("hard preset gap = %d", cfg.Obstacles.GapHeight)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--defaults"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagDefaults = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if !bytes.Equal(out.Bytes(), config.DefaultYAML()) {
		t.Error("output should be the embedded defaults")
	}
}
