package knight

import "github.com/vovakirdan/tui-knight/internal/combat"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame     uint64
	Screen    string
	Score     int
	Platforms int
	PlayerX   float64
	PlayerY   float64
	GoalX     float64
	GoalY     float64

	Health     float64
	Experience int
	Power      float64

	// Battle fields are zero outside the battle screen.
	Enemy       string
	EnemyHealth float64
	Phase       string
	Turns       int

	Message string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Frame: g.frames}
	if g.screen != nil {
		snap.Screen = g.screen.name()
	}
	if g.world != nil {
		body := g.world.Player()
		goal := g.world.Goal()
		snap.Score = g.world.Score()
		snap.Platforms = len(g.world.Platforms())
		snap.PlayerX, snap.PlayerY = body.Pos.X, body.Pos.Y
		snap.GoalX, snap.GoalY = goal.Pos.X, goal.Pos.Y
	}
	if g.player != nil {
		snap.Health = g.player.Health
		snap.Experience = g.player.Experience
		snap.Power = g.player.Power
	}
	if b := g.battle(); b != nil {
		snap.Enemy = b.Enemy().Name
		snap.EnemyHealth = b.Enemy().Health
		snap.Phase = b.Phase().String()
		snap.Turns = b.Turns()
	}
	if g.message.open {
		snap.Message = g.message.text
	}
	return snap
}

func (g *Game) battle() *combat.Battle {
	if s, ok := g.screen.(*battleScreen); ok {
		return s.battle
	}
	return nil
}
