// Package console runs the game directly on a tcell screen with an
// explicit poll, step, render and sleep loop.
package console

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// ErrClosed is returned when rendering to a closed surface.
var ErrClosed = errors.New("console: surface closed")

// eventBuffer is the number of terminal events held between ticks.
const eventBuffer = 64

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorDarkCyan),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Surface owns a tcell screen in raw mode. Events are read on a background
// goroutine and handed to PollInput without blocking.
type Surface struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	mu     sync.Mutex
	width  int
	height int
	closed bool
}

// Open initializes the terminal and returns a surface for it. It fails
// with core.ErrNoTerminal when no terminal is available and with
// core.ErrTerminalTooSmall before anything is drawn.
func Open() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNoTerminal, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNoTerminal, err)
	}

	s, err := NewSurface(screen)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return s, nil
}

// NewSurface wraps an initialized screen. It checks the size first and
// leaves the screen untouched if the check fails.
func NewSurface(screen tcell.Screen) (*Surface, error) {
	w, h := screen.Size()
	if err := core.CheckTerminalSize(w, h); err != nil {
		return nil, err
	}

	s := &Surface{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		width:  w,
		height: h,
	}
	screen.HideCursor()
	screen.Clear()
	go s.readEvents()
	return s, nil
}

func (s *Surface) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// PollInput returns the next pending action without blocking. Resize
// events are absorbed here and unbound keys are skipped.
func (s *Surface) PollInput() (core.Action, bool) {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := keyAction(ev); a != core.ActionNone {
					return a, true
				}
			case *tcell.EventResize:
				s.resize(ev.Size())
			}
		default:
			return core.ActionNone, false
		}
	}
}

func (s *Surface) resize(w, h int) {
	s.mu.Lock()
	s.width, s.height = w, h
	s.mu.Unlock()
	s.screen.Sync()
}

// Size returns the last known terminal size.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Render flushes a composed frame to the terminal in one Show.
func (s *Surface) Render(frame *core.Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c := frame.GetCell(x, y)
			style, ok := colorStyles[c.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			s.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Notice clears the terminal and shows a single centered message.
func (s *Surface) Notice(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.screen.Clear()
	runes := []rune(msg)
	x := core.Max(0, (s.width-len(runes))/2)
	for i, r := range runes {
		s.screen.SetContent(x+i, s.height/2, r, nil, colorStyles[core.ColorRed])
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	s.screen.Fini()
	return nil
}

// keyAction maps the fixed key bindings.
func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return core.ActionJump
		case 'r', 'R':
			return core.ActionRestart
		case 'p', 'P':
			return core.ActionPause
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
