package knight

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-knight/internal/combat"
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
	"github.com/vovakirdan/tui-knight/internal/world"
)

const (
	welcomeText = "Welcome to the game! Press enter to continue, or press (i) for game info"
	infoText    = "Here's the deal. You're a knight wandering the dark plain. " +
		"Climb the platforms with the arrow keys or A/D and jump with space or up. " +
		"Every golden marker at the top hides a creature of the plain, and touching it starts a battle. " +
		"In battle choose (A)ttack, (D)efend, (V)iew or (R)un, and press enter to read on. " +
		"Defeated creatures make you stronger. If you fall, the plain reshapes itself. " +
		"Press (q) to close a message and enter to begin."
	deathText = "You have died...\nPress (r) to restart"
)

// screen is one variant of the screen state. step returns the next screen,
// or nil to stay.
type screen interface {
	name() string
	enter(g *Game)
	step(g *Game, in core.InputFrame, dt float64) screen
	render(g *Game, dst core.Renderer)
}

type startScreen struct{}

func (*startScreen) name() string { return "start" }

func (*startScreen) enter(g *Game) {
	g.say(welcomeText, g.cfg.Text.ScrollSpeed)
}

func (*startScreen) step(g *Game, in core.InputFrame, _ float64) screen {
	switch {
	case in.IsDown(core.KeyEnter):
		g.hush()
		return &playScreen{world: g.world}
	case in.IsDown(core.KeyI):
		g.say(infoText, g.cfg.Text.ScrollSpeed)
	}
	return nil
}

type playScreen struct {
	world *world.World
}

func (*playScreen) name() string { return "play" }

func (*playScreen) enter(*Game) {}

func (s *playScreen) step(g *Game, in core.InputFrame, dt float64) screen {
	if in.IsDown(core.KeyM) {
		g.say(characterSheet(g.player), g.cfg.Text.ScrollSpeed)
	}

	dir := 0
	if in.Any(core.KeyLeft, core.KeyA) {
		dir--
	}
	if in.Any(core.KeyRight, core.KeyD) {
		dir++
	}
	s.world.Steer(dir, in.Any(core.KeyUp, core.KeySpace))

	switch s.world.Step(dt) {
	case world.EventGoalReached:
		foe, err := g.enemies.Generate()
		if err != nil {
			g.failed(fmt.Errorf("knight: cannot generate enemy: %w", err))
			return nil
		}
		g.log.Info("encounter", "enemy", foe.Name, "health", foe.Health, "power", foe.Power, "score", s.world.Score())
		return &battleScreen{battle: combat.New(g.player, foe, g.dice, combat.Options{
			Rules:            g.rules,
			ClassicMaxDamage: g.cfg.Combat.ClassicMaxDamage,
		})}
	case world.EventFellOff:
		g.log.Debug("fell off, level regenerated", "platforms", len(s.world.Platforms()))
	}
	return nil
}

type battleScreen struct {
	battle *combat.Battle
}

func (*battleScreen) name() string { return "battle" }

func (s *battleScreen) enter(g *Game) {
	g.say(s.battle.Text(), g.cfg.Text.ScrollSpeed)
}

// battleKeys lists the keys a battle reacts to, in priority order. At most
// one is dispatched per frame.
var battleKeys = []core.Key{core.KeyEnter, core.KeyA, core.KeyD, core.KeyV, core.KeyR}

func (s *battleScreen) step(g *Game, in core.InputFrame, _ float64) screen {
	key := core.KeyNone
	for _, k := range battleKeys {
		if in.IsDown(k) {
			key = k
			break
		}
	}

	var err error
	switch key {
	case core.KeyNone:
		return nil
	case core.KeyEnter:
		err = s.battle.Continue()
	case core.KeyA:
		err = s.battle.Choose(combat.ActionAttack)
	case core.KeyD:
		err = s.battle.Choose(combat.ActionDefend)
	case core.KeyV:
		err = s.battle.Choose(combat.ActionView)
	case core.KeyR:
		err = s.battle.Choose(combat.ActionRun)
	}
	if err != nil {
		if !errors.Is(err, combat.ErrInvalidTransition) {
			g.failed(err)
			return nil
		}
		g.log.Debug("ignored input", "key", key, "phase", s.battle.Phase(), "error", err)
		return nil
	}

	if !s.battle.Over() {
		g.say(s.battle.Text(), g.cfg.Text.ScrollSpeed)
		return nil
	}
	return s.finish(g)
}

func (s *battleScreen) finish(g *Game) screen {
	b := s.battle
	g.outcome = &core.BattleOutcome{
		Enemy:   b.Enemy().Name,
		Outcome: b.Outcome(),
		Turns:   b.Turns(),
	}
	g.log.Info("battle over", "enemy", b.Enemy().Name, "outcome", b.Outcome(), "turns", b.Turns(),
		"health", b.Player().Health)

	switch b.Phase() {
	case combat.PhaseLost:
		return &overScreen{}
	case combat.PhaseWon:
		g.player.Power = g.cfg.Player.Power + entity.PowerFor(g.player.Experience)
	}
	g.say(b.Text(), g.cfg.Text.ScrollSpeed)
	return &playScreen{world: g.world}
}

type overScreen struct{}

func (*overScreen) name() string { return "over" }

func (*overScreen) enter(g *Game) {
	g.say(deathText, g.cfg.Text.DeathScrollSpeed)
}

func (*overScreen) step(g *Game, in core.InputFrame, _ float64) screen {
	if !in.IsDown(core.KeyR) {
		return nil
	}
	g.restart()
	return &startScreen{}
}

func characterSheet(p *entity.Entity) string {
	return fmt.Sprintf("%s\n%s\nHealth: %s/%s\nExperience: %d\nPower: %s",
		p.Name, p.Description,
		entity.FormatAmount(p.Health), entity.FormatAmount(p.BaseHealth),
		p.Experience, entity.FormatAmount(p.Power))
}
