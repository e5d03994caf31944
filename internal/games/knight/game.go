// Package knight implements the knight's climb: a platforming segment
// whose goals trigger turn-based battles against creatures from the bestiary.
package knight

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-knight/internal/bestiary"
	"github.com/vovakirdan/tui-knight/internal/combat"
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/enemy"
	"github.com/vovakirdan/tui-knight/internal/entity"
	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/world"
)

// Package-level settings applied by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	creaturesPath    string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetCreaturesPath overrides the creature table location.
func SetCreaturesPath(path string) {
	creaturesPath = path
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("knight", func() registry.Game {
		return New("knight", "Knight's Climb", "")
	})
	registry.Register("knight_classic", func() registry.Game {
		return New("knight_classic", "Knight's Climb (Classic Rules)", combat.RulesClassic)
	})
}

// Game is the screen state machine. Exactly one screen is active; each
// screen drives either the world or a battle and owns its entry prompt.
type Game struct {
	id     string
	title  string
	forced combat.Ruleset // overrides the configured ruleset when set
	log    *log.Logger

	cfg     config.KnightConfig
	rules   combat.Ruleset
	runtime core.RuntimeConfig
	dice    core.Dice
	enemies *enemy.Generator
	world   *world.World
	player  *entity.Entity

	screen  screen
	message message
	outcome *core.BattleOutcome
	fault   error
	frames  uint64
}

// message is the text box content the game wants shown. Reveal progress and
// pagination belong to the renderer.
type message struct {
	text  string
	speed float64
	open  bool
}

// New creates a game mode. An empty rules value uses the configured ruleset.
func New(id, title string, rules combat.Ruleset) *Game {
	return &Game{
		id:     id,
		title:  title,
		forced: rules,
		cfg:    config.DefaultKnightConfig(),
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// WorldSize returns the configured world extent.
func (g *Game) WorldSize() core.Vec2 {
	return core.V(g.cfg.World.Width, g.cfg.World.Height)
}

// Reset loads configuration and the creature table, builds the first level
// and shows the start screen. Load failures are reported by Step.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.log = logger.With("mode", g.id)
	g.fault = nil
	g.outcome = nil
	g.frames = 0
	g.screen = nil
	g.message = message{}

	kcfg, err := config.LoadKnight(configPath)
	if err != nil {
		g.failed(err)
		return
	}
	config.ApplyKnightPreset(&kcfg, difficultyPreset)
	g.cfg = kcfg

	g.rules = combat.Ruleset(kcfg.Combat.Ruleset)
	if g.forced != "" {
		g.rules = g.forced
	}

	path := creaturesPath
	if path == "" {
		path = kcfg.Bestiary.Path
	}
	table, err := bestiary.Load(path)
	if err != nil {
		g.failed(err)
		return
	}

	g.dice = core.NewDice(cfg.Seed)
	g.enemies = enemy.NewGenerator(table, g.dice)
	g.world = world.New(kcfg, g.dice)
	g.player = g.newPlayer()
	g.enter(&startScreen{})

	g.log.Debug("level generated", "platforms", len(g.world.Platforms()), "seed", cfg.Seed)
}

func (g *Game) newPlayer() *entity.Entity {
	pc := g.cfg.Player
	p := entity.New(entity.KindPlayer, pc.Name, pc.Description, pc.Health, 0, pc.Alignment)
	p.Power = pc.Power
	return p
}

// Step runs the active screen for one frame. A transition ends the frame's
// work; the new screen first runs on the next frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.outcome = nil
	if g.fault != nil {
		return g.result()
	}

	g.frames++
	if in.IsDown(core.KeyQ) {
		g.message.open = false
	}
	if next := g.screen.step(g, in, dt); next != nil {
		g.enter(next)
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Battle: g.outcome,
		Err:    g.fault,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{}
	if g.world != nil {
		st.Score = g.world.Score()
	}
	if g.screen != nil {
		st.Screen = g.screen.name()
		_, st.GameOver = g.screen.(*overScreen)
	}
	if g.fault != nil {
		st.GameOver = true
	}
	return st
}

// Err returns the fault that stopped the game, if any.
func (g *Game) Err() error {
	return g.fault
}

func (g *Game) enter(next screen) {
	g.screen = next
	next.enter(g)
}

func (g *Game) say(text string, speed float64) {
	g.message = message{text: text, speed: speed, open: true}
}

func (g *Game) hush() {
	g.message.open = false
}

func (g *Game) failed(err error) {
	g.fault = err
	g.message = message{}
	g.log.Error("game stopped", "error", err)
}

// restart begins a new run with a fresh player and level.
func (g *Game) restart() {
	g.world.Reset()
	g.player = g.newPlayer()
	g.log.Debug("level generated", "platforms", len(g.world.Platforms()))
}
