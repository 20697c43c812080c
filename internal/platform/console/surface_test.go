package console

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/clony-bird/internal/core"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestNewSurfaceTooSmall(t *testing.T) {
	screen := simScreen(t, 30, 15)
	defer screen.Fini()

	_, err := NewSurface(screen)
	if !errors.Is(err, core.ErrTerminalTooSmall) {
		t.Fatalf("expected ErrTerminalTooSmall, got %v", err)
	}

	cells, _, _ := screen.GetContents()
	for i, c := range cells {
		for _, r := range c.Runes {
			if r != ' ' {
				t.Fatalf("cell %d was drawn (%q) before the size check failed", i, r)
			}
		}
	}
}

func TestSurfaceRender(t *testing.T) {
	screen := simScreen(t, 80, 24)
	s, err := NewSurface(screen)
	if err != nil {
		t.Fatalf("NewSurface() failed: %v", err)
	}
	defer s.Close()

	frame := core.NewScreen(80, 24)
	frame.SetColored(20, 11, 'O', core.ColorYellow)
	frame.DrawTextColored(2, 0, "Level: 1/5", core.ColorWhite)

	if err := s.Render(frame); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	cells, w, _ := screen.GetContents()
	avatar := cells[11*w+20]
	if len(avatar.Runes) == 0 || avatar.Runes[0] != 'O' {
		t.Errorf("avatar cell = %v, expected 'O'", avatar.Runes)
	}
	fg, _, _ := avatar.Style.Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("avatar color = %v, expected yellow", fg)
	}
	if r := cells[0*w+2].Runes; len(r) == 0 || r[0] != 'L' {
		t.Errorf("HUD cell = %v, expected 'L'", r)
	}
}

func TestSurfacePollInput(t *testing.T) {
	screen := simScreen(t, 80, 24)
	s, err := NewSurface(screen)
	if err != nil {
		t.Fatalf("NewSurface() failed: %v", err)
	}
	defer s.Close()

	if a, ok := s.PollInput(); ok {
		t.Fatalf("PollInput() on idle terminal = %s, expected nothing", a)
	}

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	// Events arrive through the reader goroutine
	var got []core.Action
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		if a, ok := s.PollInput(); ok {
			got = append(got, a)
			continue
		}
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != 2 || got[0] != core.ActionJump || got[1] != core.ActionQuit {
		t.Errorf("got actions %v, expected [jump quit]", got)
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyRune, ' ', core.ActionJump},
		{tcell.KeyRune, 'w', core.ActionJump},
		{tcell.KeyRune, 'W', core.ActionJump},
		{tcell.KeyRune, 'r', core.ActionRestart},
		{tcell.KeyRune, 'R', core.ActionRestart},
		{tcell.KeyRune, 'p', core.ActionPause},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyRune, 'Q', core.ActionQuit},
		{tcell.KeyEscape, 0, core.ActionQuit},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'z', core.ActionNone},
		{tcell.KeyUp, 0, core.ActionNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
		if got := keyAction(ev); got != tt.want {
			t.Errorf("keyAction(%v, %q) = %s, expected %s", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestSurfaceClose(t *testing.T) {
	screen := simScreen(t, 80, 24)
	s, err := NewSurface(screen)
	if err != nil {
		t.Fatalf("NewSurface() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if err := s.Render(core.NewScreen(80, 24)); !errors.Is(err, ErrClosed) {
		t.Errorf("Render() after Close = %v, expected ErrClosed", err)
	}
}
