// Package bestiary is the read-only table of creature templates that
// enemies are generated from.
package bestiary

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//go:generate go tool mockgen -destination=./mocks/table_mock.go -package=mocks . Table

// CreatureCount is the number of rows in the embedded table.
const CreatureCount = 52

//go:embed data/creatures.csv
var defaultCSV []byte

// ErrDataUnavailable reports a creature table that is missing, unreadable
// or malformed. Enemy generation must stop rather than use partial data.
var ErrDataUnavailable = errors.New("bestiary: creature data unavailable")

// Creature is one row of the table.
type Creature struct {
	Name        string
	Description string
	Health      float64
	Experience  int
	Alignment   int
}

// Table is the data source the enemy generator samples from.
type Table interface {
	// Len returns the number of rows.
	Len() int
	// Row returns row i. Out-of-range rows report ErrDataUnavailable.
	Row(i int) (Creature, error)
}

// CSVTable is a Table parsed from name,description,health,experience,alignment rows.
type CSVTable struct {
	rows []Creature
}

// Len returns the number of rows.
func (t *CSVTable) Len() int {
	return len(t.rows)
}

// Row returns row i.
func (t *CSVTable) Row(i int) (Creature, error) {
	if i < 0 || i >= len(t.rows) {
		return Creature{}, fmt.Errorf("%w: row %d out of range [0,%d)", ErrDataUnavailable, i, len(t.rows))
	}
	return t.rows[i], nil
}

// All returns a copy of every row.
func (t *CSVTable) All() []Creature {
	out := make([]Creature, len(t.rows))
	copy(out, t.rows)
	return out
}

// Parse reads a table. Any malformed row fails the whole table.
func Parse(r io.Reader) (*CSVTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows []Creature
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		c, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataUnavailable, line, err)
		}
		rows = append(rows, c)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrDataUnavailable)
	}
	return &CSVTable{rows: rows}, nil
}

func parseRecord(rec []string) (Creature, error) {
	health, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return Creature{}, fmt.Errorf("health %q: %w", rec[2], err)
	}
	// Experience is stored as a number that may carry a fraction; it is
	// truncated to whole points.
	exp, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return Creature{}, fmt.Errorf("experience %q: %w", rec[3], err)
	}
	align, err := strconv.Atoi(strings.TrimSpace(rec[4]))
	if err != nil {
		return Creature{}, fmt.Errorf("alignment %q: %w", rec[4], err)
	}
	return Creature{
		Name:        strings.TrimSpace(rec[0]),
		Description: strings.TrimSpace(rec[1]),
		Health:      health,
		Experience:  int(exp),
		Alignment:   align,
	}, nil
}

// Load reads a table from path, or the embedded table when path is empty.
func Load(path string) (*CSVTable, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultCSV))
	}
	path = expandHome(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded table. It panics if the embedded data is
// broken, which is a build defect rather than a runtime condition.
func Default() *CSVTable {
	t, err := Load("")
	if err != nil {
		panic(err)
	}
	return t
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
