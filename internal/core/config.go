package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform
	Seed     int64 // RNG seed for the game's single random stream
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int    // Goals reached in the current run
	GameOver bool   // Whether the run has ended
	Screen   string // Name of the active screen
}

// BattleOutcome describes a finished battle so the platform can record it.
type BattleOutcome struct {
	Enemy   string
	Outcome string // "won", "lost" or "fled"
	Turns   int
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Battle is set on the frame a battle ends.
	Battle *BattleOutcome

	// Err is a fatal condition the platform must surface to the user.
	Err error
}
