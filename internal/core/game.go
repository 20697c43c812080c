package core

// Game is a simulation advanced one fixed tick at a time by a frontend.
// It holds no terminal state; the frontend maps keys to actions, keeps the
// tick cadence and flushes the rendered Screen.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset sizes the game to the screen in cfg and returns it to its
	// initial phase. Called once before the first Step.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst. dst must be at least
	// ScreenW x ScreenH of the last Reset.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
