package combat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-knight/internal/entity"
)

func newKnight(health, power float64) *entity.Entity {
	e := entity.New(entity.KindPlayer, "Player", "A lone knight.", health, 0, 1)
	e.Power = power
	return e
}

func newGoblin(health float64, experience int) *entity.Entity {
	e := entity.New(entity.KindGenerated, "Goblin", "A small green menace.", health, experience, -1)
	e.Power = entity.PowerFor(experience)
	return e
}

func TestD20CriticalHit(t *testing.T) {
	tests := []struct {
		name   string
		coin   int
		damage float64
	}{
		{"coin zero deals one", 0, 1},
		{"coin one deals power plus one", 1, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attacker := newGoblin(30, 50)
			target := newKnight(100, 10)
			dice := script(t, 0, tc.coin)

			r := D20{}.Attack(attacker, target, dice)

			assert.Equal(t, OutcomeCritical, r.Outcome)
			assert.Equal(t, tc.damage, r.Damage)
			assert.Equal(t, 100-tc.damage, target.Health)
			assert.Contains(t, r.Message, "Critical hit!")
			assert.Equal(t, entity.StatusAttacking, attacker.Status)
			assert.True(t, dice.exhausted())
		})
	}
}

func TestD20CriticalFailure(t *testing.T) {
	attacker := newGoblin(30, 50)
	target := newKnight(100, 10)

	r := D20{}.Attack(attacker, target, script(t, 1))

	assert.Equal(t, OutcomeCriticalFailure, r.Outcome)
	assert.InDelta(t, 0.5, r.Damage, 1e-9)
	assert.InDelta(t, 99.5, target.Health, 1e-9)
	assert.Contains(t, r.Message, "Critical failure!")
}

func TestD20NormalHitForEveryOtherRoll(t *testing.T) {
	for roll := 2; roll < 20; roll++ {
		t.Run(fmt.Sprintf("roll %d", roll), func(t *testing.T) {
			attacker := newGoblin(30, 50)
			target := newKnight(100, 10)

			r := D20{}.Attack(attacker, target, script(t, roll))

			assert.Equal(t, OutcomeHit, r.Outcome)
			assert.Equal(t, 5.0, r.Damage)
			assert.Equal(t, 95.0, target.Health)
		})
	}
}

func TestD20AttackAgainstDefendingTarget(t *testing.T) {
	t.Run("guard holds", func(t *testing.T) {
		attacker := newGoblin(30, 50)
		target := newKnight(100, 10)
		target.Status = entity.StatusDefending

		r := D20{}.Attack(attacker, target, script(t, 4))

		assert.Equal(t, OutcomeBlocked, r.Outcome)
		assert.Equal(t, 100.0, target.Health)
		assert.Equal(t, entity.StatusDefending, target.Status)
		assert.Equal(t, entity.StatusNeutral, attacker.Status)
		assert.Contains(t, r.Message, "defended the attack successfully")
	})

	t.Run("guard broken", func(t *testing.T) {
		attacker := newGoblin(30, 50)
		target := newKnight(100, 10)
		target.Status = entity.StatusDefending

		r := D20{}.Attack(attacker, target, script(t, 0, 37))

		assert.Equal(t, OutcomeGuardBroken, r.Outcome)
		assert.InDelta(t, 0.37, r.Damage, 1e-9)
		assert.InDelta(t, 99.63, target.Health, 1e-9)
		assert.Equal(t, entity.StatusProne, target.Status)
		assert.Equal(t, entity.StatusAttacking, attacker.Status)
	})
}

func TestD20Defend(t *testing.T) {
	t.Run("guard raised", func(t *testing.T) {
		self := newGoblin(30, 50)
		r := D20{}.Defend(self, newKnight(100, 10), script(t, 42))

		assert.Equal(t, OutcomeDefended, r.Outcome)
		assert.Equal(t, entity.StatusDefending, self.Status)
	})

	t.Run("guard fails", func(t *testing.T) {
		self := newGoblin(30, 50)
		r := D20{}.Defend(self, newKnight(100, 10), script(t, 0))

		assert.Equal(t, OutcomeDefenseFailed, r.Outcome)
		assert.Equal(t, entity.StatusProne, self.Status)
		assert.Contains(t, r.Message, "exposed")
	})
}

// Enemy with power 5 lands a normal hit on a full-health player.
func TestEnemyNormalHitScenario(t *testing.T) {
	player := newKnight(100, 10)
	enemy := newGoblin(30, 50)
	require.Equal(t, 5.0, enemy.Power)

	r := D20{}.Attack(enemy, player, script(t, 5))

	assert.Equal(t, 95.0, player.Health)
	assert.Equal(t, entity.StatusNeutral, player.Status)
	assert.Contains(t, r.Message, "Goblin")
	assert.Contains(t, r.Message, "5 damage")
}

// The same rules drive the player's attack.
func TestPlayerNormalHitScenario(t *testing.T) {
	player := newKnight(100, 5)
	enemy := newGoblin(30, 50)

	r := D20{}.Attack(player, enemy, script(t, 5))

	assert.Equal(t, 25.0, enemy.Health)
	assert.Contains(t, r.Message, "Goblin")
	assert.Contains(t, r.Message, "5 damage")
}

func TestClassicTactics(t *testing.T) {
	player := newKnight(100, 10)
	enemy := newGoblin(30, 50)
	tactics := Classic{MaxDamage: 50}

	r := tactics.Attack(player, enemy, script(t, 17))
	assert.Equal(t, OutcomeHit, r.Outcome)
	assert.Equal(t, 13.0, enemy.Health)

	enemy.Status = entity.StatusDefending
	r = tactics.Attack(player, enemy, script(t, 30))
	assert.Equal(t, OutcomeBlocked, r.Outcome)
	assert.Equal(t, 13.0, enemy.Health)

	dice := script(t)
	r = tactics.Defend(player, enemy, dice)
	assert.Equal(t, OutcomeDefended, r.Outcome)
	assert.Equal(t, entity.StatusDefending, player.Status)
}

func TestTacticsFor(t *testing.T) {
	assert.IsType(t, D20{}, TacticsFor(entity.KindPlayer, RulesStandard, 50))
	assert.IsType(t, Classic{}, TacticsFor(entity.KindPlayer, RulesClassic, 50))
	assert.IsType(t, D20{}, TacticsFor(entity.KindGenerated, RulesClassic, 50))
}
