package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-knight/internal/bestiary"
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/platform/tui"
	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCreatures  string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode (default: knight)",
	Long: `Start climbing. The knight spawns on the ground; reach the golden
marker on the highest platform to fight the creature guarding it.

Controls:
  Left/Right, A/D   - Move
  Up/Space          - Jump
  Enter             - Start / advance battle text
  I                 - Info (start screen)
  M                 - Character sheet
  A / D / V / R     - Attack / Defend / Vulnerable strike / Run (in battle)
  Q                 - Close text
  R                 - Restart (after death)
  Ctrl+S            - Screenshot
  Esc/Ctrl+C        - Quit

Difficulty options:
  easy   - Lower platforms, more health
  normal - Defaults from config
  hard   - Higher platforms, less health

Examples:
  knight play
  knight play knight_classic
  knight play --difficulty hard --seed 42
  knight play --config ./my-knight.yaml
  knight play --creatures ./creatures.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().StringVar(&flagCreatures, "creatures", "", "Path to a custom creature table (CSV)")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "knight"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'knight list' to see available modes.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}
	kcfg, err := applyGameFlags(preset)
	if err != nil {
		exitf("%v", err)
	}

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, cfg, gameOptions(store, kcfg))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		if errors.Is(runErr, bestiary.ErrDataUnavailable) {
			exitf("%v (use --creatures to point at a valid table)", runErr)
		}
		exitf("running game: %v", runErr)
	}
}

// applyGameFlags hands the command-line settings to the game package and
// loads the config once so bad files fail before the terminal is taken over.
func applyGameFlags(preset config.DifficultyPreset) (config.KnightConfig, error) {
	knight.SetConfigPath(flagConfig)
	knight.SetDifficultyPreset(preset)
	knight.SetCreaturesPath(flagCreatures)

	kcfg, err := config.LoadKnight(flagConfig)
	if err != nil {
		return config.KnightConfig{}, err
	}
	config.ApplyKnightPreset(&kcfg, preset)
	return kcfg, nil
}

// runtimeConfig sizes the game to the terminal and resolves the seed.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("runtime", "width", width, "height", height, "fps", flagFPS, "seed", seed)
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the score database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func gameOptions(store *storage.Store, kcfg config.KnightConfig) tui.Options {
	return tui.Options{
		Store:     store,
		Logger:    logger,
		MaxLines:  kcfg.Text.MaxLines,
		PageDwell: kcfg.Text.PageDwell,
	}
}
