// Package enemy instantiates opponents from the creature table.
package enemy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-knight/internal/bestiary"
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
)

// Generator draws enemies uniformly from a table using the game's random stream.
type Generator struct {
	table bestiary.Table
	dice  core.Dice
}

// NewGenerator creates a generator over table.
func NewGenerator(table bestiary.Table, dice core.Dice) *Generator {
	return &Generator{table: table, dice: dice}
}

// Generate samples a random row and builds an enemy from it.
func (g *Generator) Generate() (*entity.Entity, error) {
	if g.table == nil {
		return nil, fmt.Errorf("enemy: no creature table: %w", bestiary.ErrDataUnavailable)
	}
	n := g.table.Len()
	if n <= 0 {
		return nil, fmt.Errorf("enemy: creature table is empty: %w", bestiary.ErrDataUnavailable)
	}
	return g.FromRow(g.dice.Intn(n))
}

// FromRow builds the enemy for row i. Power is floor(experience/10).
func (g *Generator) FromRow(i int) (*entity.Entity, error) {
	c, err := g.table.Row(i)
	if err != nil {
		if !errors.Is(err, bestiary.ErrDataUnavailable) {
			err = fmt.Errorf("%w: %v", bestiary.ErrDataUnavailable, err)
		}
		return nil, fmt.Errorf("enemy: row %d: %w", i, err)
	}
	if c.Health <= 0 || c.Experience < 0 || c.Name == "" {
		return nil, fmt.Errorf("enemy: row %d has unusable stats (health=%v experience=%d): %w",
			i, c.Health, c.Experience, bestiary.ErrDataUnavailable)
	}

	e := entity.New(entity.KindGenerated, c.Name, c.Description, c.Health, c.Experience, c.Alignment)
	e.Power = entity.PowerFor(c.Experience)
	return e, nil
}
