package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedDice replays queued rolls and fails the test on an unexpected draw.
type scriptedDice struct {
	t     testing.TB
	rolls []int
}

func script(t testing.TB, rolls ...int) *scriptedDice {
	return &scriptedDice{t: t, rolls: rolls}
}

func (d *scriptedDice) Intn(n int) int {
	require.NotEmpty(d.t, d.rolls, "unexpected roll Intn(%d)", n)
	r := d.rolls[0]
	d.rolls = d.rolls[1:]
	require.Less(d.t, r, n, "scripted roll out of range for Intn(%d)", n)
	return r
}

func (d *scriptedDice) exhausted() bool {
	return len(d.rolls) == 0
}
