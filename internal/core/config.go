package core

// RuntimeConfig contains configuration passed to front ends at startup.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Frames per second for update+render (default 60)
	InputRate int   // Held-key polls per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		InputRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the counters and status a front end displays.
type GameState struct {
	Score     int  // Current score
	Coins     int  // Coins collected this run
	HighScore int  // Best score across runs
	Running   bool // Whether the run loop is active
	GameOver  bool // Whether the last run ended by collision
}

// StepResult is returned after each simulation frame.
type StepResult struct {
	State GameState

	// NewHighScore is set on the frame that ended a run with a record score.
	// The front end persists the value exactly once per run.
	NewHighScore bool
}
