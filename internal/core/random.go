package core

import "math/rand"

// Dice is the random stream consumed by level generation, enemy generation
// and combat. *rand.Rand satisfies it; tests substitute scripted rolls.
type Dice interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewDice creates a seeded stream. One stream is created per game run.
func NewDice(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
