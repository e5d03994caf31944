// knight is a terminal platformer: climb procedurally generated platforms
// and fight creatures in turn-based battles at every summit.
//
// Usage:
//
//	knight play [mode]      - Play a mode (default: knight)
//	knight menu             - Pick a mode interactively
//	knight list             - List available modes
//	knight scores [mode]    - Show high scores and recent battles
//	knight creatures        - Show the creature table
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.knight/scores.db)
//	--log <path>         - Write logs to a file (default: ~/.knight/knight.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string

	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knight",
	Short: "Knight's Climb - a platformer with turn-based battles",
	Long: `Knight's Climb is a terminal platformer. Jump your way to the golden
marker at the top of each level and fight the creature waiting there.

Available commands:
  play       - Play a mode directly
  menu       - Interactive mode picker
  list       - Show all available modes
  scores     - View high scores and recent battles
  creatures  - Show the creature table

Examples:
  knight play
  knight play knight_classic --difficulty hard
  knight menu
  knight scores knight`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.knight/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.knight/knight.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(creaturesCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	l, closer, err := logging.OpenFile(flagLogPath, level)
	if err != nil {
		// The game still runs without a log file.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		l, closer = logging.Discard(), nil
	}
	logger, logCloser = l, closer
	knight.SetLogger(logger)
	return nil
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// exitf reports an error on stderr and exits with status 1.
func exitf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error(msg)
	closeLog()
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}
