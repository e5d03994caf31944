package combat

import (
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
)

// Move is an autonomous combatant's choice.
type Move int

const (
	MoveAttack Move = iota
	MoveDefend
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	if m == MoveAttack {
		return "Attack"
	}
	return "Defend"
}

// DecideMove picks the enemy's move: always press a prone target, toss a
// coin when wounded, otherwise attack three times in four.
func DecideMove(self, target *entity.Entity, dice core.Dice) Move {
	if target.Status == entity.StatusProne {
		return MoveAttack
	}
	if self.Wounded() {
		if dice.Intn(2) == 0 {
			return MoveAttack
		}
		return MoveDefend
	}
	if dice.Intn(4) != 0 {
		return MoveAttack
	}
	return MoveDefend
}
