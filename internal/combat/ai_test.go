package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-knight/internal/entity"
)

func TestDecideMove(t *testing.T) {
	tests := []struct {
		name        string
		enemyHealth float64
		targetState entity.Status
		rolls       []int
		expected    Move
	}{
		{"prone target is always attacked", 30, entity.StatusProne, nil, MoveAttack},
		{"prone target beats wounded caution", 5, entity.StatusProne, nil, MoveAttack},
		{"wounded heads", 10, entity.StatusNeutral, []int{0}, MoveAttack},
		{"wounded tails", 10, entity.StatusNeutral, []int{1}, MoveDefend},
		{"healthy quarter defends", 30, entity.StatusNeutral, []int{0}, MoveDefend},
		{"healthy attacks", 30, entity.StatusNeutral, []int{1}, MoveAttack},
		{"healthy attacks high roll", 30, entity.StatusDefending, []int{3}, MoveAttack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enemy := newGoblin(30, 50)
			enemy.Health = tc.enemyHealth
			target := newKnight(100, 10)
			target.Status = tc.targetState
			dice := script(t, tc.rolls...)

			assert.Equal(t, tc.expected, DecideMove(enemy, target, dice))
			assert.True(t, dice.exhausted())
		})
	}
}
