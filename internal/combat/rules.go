// Package combat resolves turn-based battles between the player and a
// generated enemy.
package combat

import (
	"fmt"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
)

// Outcome classifies how a single move resolved.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeCritical
	OutcomeCriticalFailure
	OutcomeBlocked
	OutcomeGuardBroken
	OutcomeDefended
	OutcomeDefenseFailed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit"
	case OutcomeCritical:
		return "Critical"
	case OutcomeCriticalFailure:
		return "CriticalFailure"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeGuardBroken:
		return "GuardBroken"
	case OutcomeDefended:
		return "Defended"
	case OutcomeDefenseFailed:
		return "DefenseFailed"
	default:
		return "Unknown"
	}
}

// Result is the resolution of one attack or defend move.
type Result struct {
	Outcome Outcome
	Damage  float64
	Message string
}

// Tactics resolves the moves of one combatant.
type Tactics interface {
	Attack(self, target *entity.Entity, dice core.Dice) Result
	Defend(self, target *entity.Entity, dice core.Dice) Result
}

// Ruleset names a tactics family.
type Ruleset string

const (
	RulesStandard Ruleset = "standard"
	RulesClassic  Ruleset = "classic"
)

// TacticsFor selects tactics by entity kind. Generated enemies always use
// the d20 rules; the player uses them too unless the classic ruleset is on.
func TacticsFor(kind entity.Kind, rules Ruleset, classicMaxDamage int) Tactics {
	if kind == entity.KindPlayer && rules == RulesClassic {
		return Classic{MaxDamage: classicMaxDamage}
	}
	return D20{}
}

// D20 resolves attacks with a twenty-sided roll scaled by the attacker's power.
type D20 struct{}

// Attack rolls against target. A defending target is only hurt when a
// 1-in-10 roll breaks its guard, which also leaves it prone.
func (D20) Attack(self, target *entity.Entity, dice core.Dice) Result {
	header := fmt.Sprintf("%s is attacking!\n", self.Name)

	if target.Status == entity.StatusDefending {
		if dice.Intn(10) != 0 {
			return Result{
				Outcome: OutcomeBlocked,
				Message: header + fmt.Sprintf("%s defended the attack successfully.", target.Name),
			}
		}
		damage := float64(dice.Intn(100)) / 100
		// Prone first so the generic path lets the blow through.
		target.Status = entity.StatusProne
		msg := self.AttackAgainst(target, damage)
		return Result{
			Outcome: OutcomeGuardBroken,
			Damage:  damage,
			Message: header + fmt.Sprintf("%s broke through the guard!\n", self.Name) + msg +
				fmt.Sprintf("\n%s is prone!", target.Name),
		}
	}

	var (
		damage  float64
		outcome Outcome
		line    string
	)
	switch roll := dice.Intn(20); roll {
	case 0:
		// Either 1 or power+1. Kept exactly as the game has always computed it;
		// a power + (0 or 1) bonus was probably the intent.
		damage = self.Power*float64(dice.Intn(2)) + 1
		outcome = OutcomeCritical
		line = "Critical hit!\n"
	case 1:
		damage = self.Power * 0.1
		outcome = OutcomeCriticalFailure
		line = "Critical failure!\n"
	default:
		damage = self.Power
		outcome = OutcomeHit
		line = fmt.Sprintf("%s attacks!\n", self.Name)
	}

	msg := self.AttackAgainst(target, damage)
	return Result{Outcome: outcome, Damage: damage, Message: header + line + msg}
}

// Defend raises the guard, failing on a 1-in-100 roll and leaving self prone.
func (D20) Defend(self, target *entity.Entity, dice core.Dice) Result {
	if dice.Intn(100) == 0 {
		self.Status = entity.StatusProne
		return Result{
			Outcome: OutcomeDefenseFailed,
			Message: fmt.Sprintf("%s is defending!\nFailed to defend! %s is now exposed.", self.Name, self.Name),
		}
	}
	return Result{Outcome: OutcomeDefended, Message: self.DefendAgainst(target)}
}

// Classic is the old fighting style: a flat [0, MaxDamage)
// swing through the base entity rules and a guard that never fails.
type Classic struct {
	MaxDamage int
}

// Attack swings for a uniform amount of damage.
func (c Classic) Attack(self, target *entity.Entity, dice core.Dice) Result {
	n := c.MaxDamage
	if n <= 0 {
		n = 1
	}
	blocked := target.Status == entity.StatusDefending
	damage := float64(dice.Intn(n))
	msg := self.AttackAgainst(target, damage)
	if blocked {
		return Result{Outcome: OutcomeBlocked, Message: msg}
	}
	return Result{Outcome: OutcomeHit, Damage: damage, Message: msg}
}

// Defend raises the guard without a roll.
func (Classic) Defend(self, target *entity.Entity, _ core.Dice) Result {
	return Result{Outcome: OutcomeDefended, Message: self.DefendAgainst(target)}
}
