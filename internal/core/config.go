package core

import (
	"errors"
	"fmt"
)

// Minimum terminal size the game can be played in.
const (
	MinScreenW = 40
	MinScreenH = 20
)

var (
	// ErrTerminalTooSmall is returned when the terminal is below MinScreenW x MinScreenH.
	ErrTerminalTooSmall = errors.New("terminal too small")

	// ErrNoTerminal is returned when no interactive terminal is available.
	ErrNoTerminal = errors.New("display capability unavailable")
)

// RuntimeConfig holds the per-process settings handed to the game at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for gap placement
}

// DefaultTickRate matches the 50ms frame delay of the classic game.
const DefaultTickRate = 20

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means seed from the clock in the platform layer
	}
}

// CheckTerminalSize returns ErrTerminalTooSmall (wrapped with the actual
// dimensions) if the terminal cannot hold the game.
func CheckTerminalSize(w, h int) error {
	if w < MinScreenW || h < MinScreenH {
		return fmt.Errorf("%w: %dx%d (need at least %dx%d)", ErrTerminalTooSmall, w, h, MinScreenW, MinScreenH)
	}
	return nil
}

// GameState is the externally visible state of a play session.
type GameState struct {
	Phase      Phase
	Score      int // Total score of the current attempt
	LevelScore int // Points collected within the current level
	Level      int
	Speed      float64 // Obstacle speed multiplier for Level
	Paused     bool
}

// GameOver reports whether the session is waiting for restart or quit.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Phase is the top-level state of the game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventStart Event = iota
	EventFlap
	EventScore
	EventLevelUp
	EventCrash
	EventRestart
)

// String returns the event name used in logs.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventLevelUp:
		return "level-up"
	case EventCrash:
		return "crash"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // Player asked to leave the program
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
