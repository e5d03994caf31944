package world

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

func newTestWorld(seed int64) *World {
	return New(config.DefaultKnightConfig(), rand.New(rand.NewSource(seed)))
}

func TestGenerateLevelGround(t *testing.T) {
	w := newTestWorld(1)

	ground := w.Platforms()[0]
	if ground.Pos != core.V(400, 50) {
		t.Errorf("ground position = %+v, expected (400, 50)", ground.Pos)
	}
	if ground.Size != core.V(800, 100) {
		t.Errorf("ground size = %+v, expected (800, 100)", ground.Size)
	}
	if len(w.Platforms()) < 2 {
		t.Fatalf("level has %d platforms, expected generated rows", len(w.Platforms()))
	}
}

func TestGenerateLevelGoalAboveEverything(t *testing.T) {
	w := newTestWorld(1)

	goal := w.Goal()
	for i, p := range w.Platforms() {
		if goal.Pos.Y <= p.Pos.Y {
			t.Errorf("goal y %v is not above platform %d at y %v", goal.Pos.Y, i, p.Pos.Y)
		}
	}
	last := w.Platforms()[len(w.Platforms())-1]
	if goal.Pos != core.V(last.Pos.X, last.Pos.Y+20) {
		t.Errorf("goal = %+v, expected 20 above the highest platform %+v", goal.Pos, last.Pos)
	}
}

func TestGenerateLevelProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		width := float64(rapid.IntRange(200, 1600).Draw(t, "width"))
		height := float64(rapid.IntRange(300, 1200).Draw(t, "height"))

		w := newTestWorld(seed)
		w.GenerateLevel(width, height)

		plats := w.Platforms()
		if plats[0].Pos != core.V(width/2, 50) {
			t.Fatalf("ground at %+v, expected (%v, 50)", plats[0].Pos, width/2)
		}
		for i := 1; i < len(plats); i++ {
			p := plats[i]
			if p.Pos.X < 50 || p.Pos.X > width-50 {
				t.Fatalf("platform %d x=%v outside [50, %v]", i, p.Pos.X, width-50)
			}
			if p.Size.X < 80 || p.Size.X >= 180 {
				t.Fatalf("platform %d width %v outside [80, 180)", i, p.Size.X)
			}
			if p.Pos.Y >= height-100 {
				t.Fatalf("platform %d y=%v at or above %v", i, p.Pos.Y, height-100)
			}
			if i > 1 {
				step := p.Pos.Y - plats[i-1].Pos.Y
				if step < 30 || step >= 80 {
					t.Fatalf("platform %d step %v outside [30, 80)", i, step)
				}
			}
		}
		for i, p := range plats {
			if w.Goal().Pos.Y <= p.Pos.Y {
				t.Fatalf("goal y %v not above platform %d y %v", w.Goal().Pos.Y, i, p.Pos.Y)
			}
		}
	})
}

func TestGenerateLevelDeterministic(t *testing.T) {
	a := newTestWorld(99)
	b := newTestWorld(99)

	if len(a.Platforms()) != len(b.Platforms()) {
		t.Fatalf("platform count %d != %d with the same seed", len(a.Platforms()), len(b.Platforms()))
	}
	for i := range a.Platforms() {
		if a.Platforms()[i] != b.Platforms()[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, a.Platforms()[i], b.Platforms()[i])
		}
	}
	if a.Goal() != b.Goal() {
		t.Errorf("goal differs: %+v vs %+v", a.Goal(), b.Goal())
	}
}

func TestPlaceGoalTieBreak(t *testing.T) {
	w := newTestWorld(1)
	w.platforms = []Platform{
		{Pos: core.V(400, 50), Size: core.V(800, 100)},
		{Pos: core.V(100, 300), Size: core.V(80, 10)},
		{Pos: core.V(600, 300), Size: core.V(80, 10)},
	}

	w.placeGoal()

	if w.Goal().Pos != core.V(100, 320) {
		t.Errorf("goal = %+v, expected above the first highest platform", w.Goal().Pos)
	}
}
