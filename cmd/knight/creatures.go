package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/bestiary"
	"github.com/vovakirdan/tui-knight/internal/config"
)

var creaturesCmd = &cobra.Command{
	Use:   "creatures",
	Short: "Show the creature table",
	Long: `Print every creature the enemy generator can draw from.

The table comes from --creatures, then the bestiary path in the config,
then the built-in table.

Examples:
  knight creatures
  knight creatures --creatures ./creatures.csv`,
	Args: cobra.NoArgs,
	Run:  runCreatures,
}

func init() {
	creaturesCmd.Flags().StringVar(&flagCreatures, "creatures", "", "Path to a custom creature table (CSV)")
	creaturesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runCreatures(_ *cobra.Command, _ []string) {
	path := flagCreatures
	if path == "" {
		kcfg, err := config.LoadKnight(flagConfig)
		if err != nil {
			exitf("%v", err)
		}
		path = kcfg.Bestiary.Path
	}

	tbl, err := bestiary.Load(path)
	if err != nil {
		exitf("%v", err)
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Name", "Health", "Exp", "Align", "Description").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, c := range tbl.All() {
		t.Row(c.Name,
			strconv.FormatFloat(c.Health, 'f', -1, 64),
			strconv.Itoa(c.Experience),
			strconv.Itoa(c.Alignment),
			c.Description,
		)
	}

	fmt.Println(t.Render())
	fmt.Printf("%d creatures\n", tbl.Len())
}
