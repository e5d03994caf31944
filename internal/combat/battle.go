package combat

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
)

// ErrInvalidTransition is returned when a battle receives an event its
// current phase does not accept. Callers ignore it.
var ErrInvalidTransition = errors.New("combat: invalid transition")

// Phase is the battle's position in its turn cycle.
type Phase int

const (
	// PhaseEncounter shows the encounter text until acknowledged.
	PhaseEncounter Phase = iota
	// PhaseChoice waits for the player to pick an action.
	PhaseChoice
	// PhasePlayerAction shows the player's resolved action until acknowledged.
	PhasePlayerAction
	// PhaseEnemyTurn shows the enemy's resolved move until acknowledged.
	PhaseEnemyTurn
	PhaseWon
	PhaseLost
	PhaseFled
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEncounter:
		return "Encounter"
	case PhaseChoice:
		return "Choice"
	case PhasePlayerAction:
		return "PlayerAction"
	case PhaseEnemyTurn:
		return "EnemyTurn"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	case PhaseFled:
		return "Fled"
	default:
		return "Unknown"
	}
}

// Action is a player's choice on their turn.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionView
	ActionRun
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionDefend:
		return "Defend"
	case ActionView:
		return "View"
	case ActionRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// ChoicePrompt is shown whenever the player must pick an action.
const ChoicePrompt = "(A)ttack.\n(D)efend.\n(V)iew.\n(R)un."

// Options configures the player's tactics.
type Options struct {
	Rules            Ruleset
	ClassicMaxDamage int
}

// Battle is one fight. It owns the enemy and borrows the player entity for
// its duration; all randomness comes from the injected dice.
type Battle struct {
	player *entity.Entity
	enemy  *entity.Entity
	dice   core.Dice

	playerTactics Tactics
	enemyTactics  Tactics

	phase      Phase
	lastAction Action
	text       string
	turns      int
	summary    []string
}

// New starts a battle in the encounter phase. The player's stance from an
// earlier battle does not carry over.
func New(player, enemy *entity.Entity, dice core.Dice, opts Options) *Battle {
	player.Status = entity.StatusNeutral
	b := &Battle{
		player:        player,
		enemy:         enemy,
		dice:          dice,
		playerTactics: TacticsFor(player.Kind, opts.Rules, opts.ClassicMaxDamage),
		enemyTactics:  TacticsFor(enemy.Kind, opts.Rules, opts.ClassicMaxDamage),
	}
	b.show(PhaseEncounter, fmt.Sprintf("You have encountered a %s\n%s\nWhat do you do?", enemy.Name, enemy.Description))
	return b
}

// Phase returns the current phase.
func (b *Battle) Phase() Phase { return b.phase }

// Text returns the text bound to the current phase.
func (b *Battle) Text() string { return b.text }

// Player returns the player entity.
func (b *Battle) Player() *entity.Entity { return b.player }

// Enemy returns the enemy entity.
func (b *Battle) Enemy() *entity.Entity { return b.enemy }

// Turns returns the number of attack or defend actions the player took.
func (b *Battle) Turns() int { return b.turns }

// Summary returns every text shown so far, oldest first.
func (b *Battle) Summary() []string {
	out := make([]string, len(b.summary))
	copy(out, b.summary)
	return out
}

// Over reports whether the battle has ended.
func (b *Battle) Over() bool {
	return b.phase == PhaseWon || b.phase == PhaseLost || b.phase == PhaseFled
}

// Outcome returns "won", "lost" or "fled" once the battle is over.
func (b *Battle) Outcome() string {
	switch b.phase {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseFled:
		return "fled"
	default:
		return ""
	}
}

// Choose resolves the player's action. Only valid in PhaseChoice.
func (b *Battle) Choose(a Action) error {
	if b.phase != PhaseChoice {
		return fmt.Errorf("%w: %s in phase %s", ErrInvalidTransition, a, b.phase)
	}

	b.lastAction = a
	switch a {
	case ActionAttack:
		b.turns++
		r := b.playerTactics.Attack(b.player, b.enemy, b.dice)
		b.show(PhasePlayerAction, r.Message)
	case ActionDefend:
		b.turns++
		r := b.playerTactics.Defend(b.player, b.enemy, b.dice)
		b.show(PhasePlayerAction, r.Message)
	case ActionView:
		b.show(PhasePlayerAction, fmt.Sprintf("Your Health: %s\nEnemy Health: %s",
			entity.FormatAmount(b.player.Health), entity.FormatAmount(b.enemy.Health)))
	case ActionRun:
		b.show(PhaseFled, "You ran away!")
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidTransition, int(a))
	}
	return nil
}

// Continue acknowledges the text on display and advances past the gate.
func (b *Battle) Continue() error {
	switch b.phase {
	case PhaseEncounter, PhaseEnemyTurn:
		b.enterChoice()
	case PhasePlayerAction:
		// A defeated enemy takes no turn.
		if b.lastAction == ActionView || b.enemy.Defeated() {
			b.enterChoice()
			return nil
		}
		b.enemyTurn()
	default:
		return fmt.Errorf("%w: continue in phase %s", ErrInvalidTransition, b.phase)
	}
	return nil
}

func (b *Battle) enemyTurn() {
	var r Result
	if DecideMove(b.enemy, b.player, b.dice) == MoveAttack {
		r = b.enemyTactics.Attack(b.enemy, b.player, b.dice)
	} else {
		r = b.enemyTactics.Defend(b.enemy, b.player, b.dice)
	}
	b.show(PhaseEnemyTurn, r.Message)
}

// enterChoice checks for the end of the battle before prompting. When both
// sides are down the player's defeat takes precedence.
func (b *Battle) enterChoice() {
	switch {
	case b.player.Defeated():
		b.show(PhaseLost, "You have died...")
	case b.enemy.Defeated():
		b.player.AddExperience(b.enemy.Experience)
		b.show(PhaseWon, fmt.Sprintf("You defeated %s\nYou gained %d experience.", b.enemy.Name, b.enemy.Experience))
	default:
		b.show(PhaseChoice, ChoicePrompt)
	}
}

func (b *Battle) show(p Phase, text string) {
	b.phase = p
	b.text = text
	b.summary = append(b.summary, text)
}
