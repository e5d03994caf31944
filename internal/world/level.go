package world

import (
	"github.com/vovakirdan/tui-knight/internal/core"
)

// Platform is a solid rectangle the player can stand on.
type Platform struct {
	Pos   core.Vec2 // Center
	Size  core.Vec2
	Color core.Color
}

// Box returns the platform's collision box.
func (p Platform) Box() core.Box {
	return core.BoxAt(p.Pos, p.Size)
}

// GenerateLevel clears the level and lays out a fresh one: a full-width
// ground plane at index 0, rows of random platforms climbing toward the
// top, and a goal above the highest row.
func (w *World) GenerateLevel(width, height float64) {
	lv := w.cfg.Level
	w.width, w.height = width, height
	w.platforms = w.platforms[:0]
	w.platforms = append(w.platforms, Platform{
		Pos:   core.V(width/2, lv.GroundHeight/2),
		Size:  core.V(width, lv.GroundHeight),
		Color: core.ColorPlatform,
	})
	w.generateRows()
	w.placeGoal()
}

// regenerateAround rebuilds the level with a landing platform directly
// beneath the player in place of the ground. The new goal sits above one of
// the generated rows and never touches the player, so the next encounter
// has to be climbed to.
func (w *World) regenerateAround(pos core.Vec2) {
	lv := w.cfg.Level
	w.platforms = w.platforms[:0]
	w.platforms = append(w.platforms, Platform{
		Pos:   core.V(pos.X, pos.Y-w.player.Size.Y/2-lv.PlatformHeight/2),
		Size:  core.V(w.width/lv.LandingDivisor, lv.PlatformHeight),
		Color: core.ColorPlatform,
	})
	w.generateRows()

	body := core.BoxAt(pos, w.player.Size)
	// Keep a goal-sized margin around the player free of rows and goals so
	// the next frame's settling cannot reach either.
	keepOut := core.BoxAt(pos, w.player.Size.Add(core.V(2*lv.GoalSize, 2*lv.GoalSize)))
	kept := w.platforms[:1]
	for _, p := range w.platforms[1:] {
		if !p.Box().Overlaps(keepOut) {
			kept = append(kept, p)
		}
	}
	w.platforms = kept

	found := false
	for _, p := range w.platforms[1:] {
		if w.goalAbove(p).Box().Overlaps(keepOut) {
			continue
		}
		if !found || p.Pos.Y > w.goal.Pos.Y-lv.GoalOffset {
			w.goal = w.goalAbove(p)
			found = true
		}
	}
	if !found {
		// No usable row: hang the goal one jump above the player's head.
		w.goal = Platform{
			Pos:   core.V(pos.X, body.Top()+lv.GoalOffset+lv.GoalSize/2),
			Size:  core.V(lv.GoalSize, lv.GoalSize),
			Color: core.ColorGoal,
		}
	}
}

func (w *World) generateRows() {
	lv := w.cfg.Level
	top := int(w.height) - lv.TopMargin
	span := int(w.width) - 2*lv.EdgeMargin

	for y := lv.FirstRow; y < top; y += lv.MinStep + w.dice.Intn(lv.MaxStep-lv.MinStep) {
		x := lv.EdgeMargin + w.dice.Intn(span)
		pw := lv.MinWidth + w.dice.Intn(lv.MaxWidth-lv.MinWidth)
		w.platforms = append(w.platforms, Platform{
			Pos:   core.V(float64(x), float64(y)),
			Size:  core.V(float64(pw), lv.PlatformHeight),
			Color: core.ColorPlatform,
		})
	}
}

// placeGoal puts the goal above the highest platform. On equal heights the
// first one in collection order wins.
func (w *World) placeGoal() {
	highest := w.platforms[0]
	for _, p := range w.platforms[1:] {
		if p.Pos.Y > highest.Pos.Y {
			highest = p
		}
	}
	w.goal = w.goalAbove(highest)
}

func (w *World) goalAbove(p Platform) Platform {
	lv := w.cfg.Level
	return Platform{
		Pos:   core.V(p.Pos.X, p.Pos.Y+lv.GoalOffset),
		Size:  core.V(lv.GoalSize, lv.GoalSize),
		Color: core.ColorGoal,
	}
}
