// Package world simulates the platforming segment: procedural levels,
// gravity and per-platform collision resolution.
package world

import (
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// Event reports what a physics step caused.
type Event int

const (
	EventNone Event = iota
	// EventGoalReached: the player touched the goal and the level was rebuilt around them.
	EventGoalReached
	// EventFellOff: the player dropped below y=0 and the level was reset.
	EventFellOff
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventGoalReached:
		return "GoalReached"
	case EventFellOff:
		return "FellOff"
	default:
		return "Unknown"
	}
}

// Body is the player's kinematic state.
type Body struct {
	Pos  core.Vec2 // Center
	Vel  core.Vec2
	Size core.Vec2
}

// Box returns the body's collision box.
func (b Body) Box() core.Box {
	return core.BoxAt(b.Pos, b.Size)
}

// World owns the platforms, the goal, the player body and the score.
type World struct {
	cfg  config.KnightConfig
	dice core.Dice

	width, height float64
	platforms     []Platform
	goal          Platform
	player        Body
	onGround      bool
	score         int
}

// New creates a world and generates its first level.
func New(cfg config.KnightConfig, dice core.Dice) *World {
	w := &World{
		cfg:  cfg,
		dice: dice,
	}
	w.Reset()
	return w
}

// Reset starts a new run: score zero, fresh level, player at spawn.
func (w *World) Reset() {
	w.score = 0
	w.GenerateLevel(w.cfg.World.Width, w.cfg.World.Height)
	w.respawn()
}

func (w *World) respawn() {
	size := w.cfg.Player.Size
	w.player = Body{
		Pos:  core.V(w.width/2, w.cfg.Player.SpawnY),
		Size: core.V(size, size),
	}
	w.onGround = false
}

// Platforms returns the current platforms; index 0 is the ground or landing.
func (w *World) Platforms() []Platform { return w.platforms }

// Goal returns the goal marker.
func (w *World) Goal() Platform { return w.goal }

// Player returns the player body.
func (w *World) Player() Body { return w.player }

// OnGround reports whether the player landed during the last step.
func (w *World) OnGround() bool { return w.onGround }

// Score returns the number of goals reached.
func (w *World) Score() int { return w.score }

// Size returns the world extent.
func (w *World) Size() core.Vec2 { return core.V(w.width, w.height) }

// SetPlayer places the player body.
func (w *World) SetPlayer(pos, vel core.Vec2) {
	w.player.Pos = pos
	w.player.Vel = vel
}

// Steer sets the horizontal velocity from movement input and starts a jump
// when the player is grounded. dir is -1, 0 or 1.
func (w *World) Steer(dir int, jump bool) {
	w.player.Vel.X = float64(dir) * w.cfg.Physics.MoveSpeed
	if jump && w.onGround {
		w.player.Vel.Y = w.cfg.Physics.JumpForce
		w.onGround = false
	}
}

// Step advances the simulation by dt seconds, capped at the configured
// maximum delta. A step of no time changes nothing, so a grounded player
// can still jump on the next frame.
//
// Each overlapping platform is resolved on its own in collection order, so
// when two platforms demand conflicting corrections on the same axis the
// last one processed wins.
func (w *World) Step(dt float64) Event {
	dt = core.ClampF(dt, 0, w.cfg.Physics.MaxDelta)
	if dt == 0 {
		return EventNone
	}

	p := &w.player
	p.Vel.Y -= w.cfg.Physics.Gravity * dt
	next := p.Pos.Add(p.Vel.Scale(dt))
	candidate := core.BoxAt(next, p.Size)
	half := p.Size.Scale(0.5)

	w.onGround = false
	for _, plat := range w.platforms {
		box := plat.Box()
		if !candidate.Overlaps(box) {
			continue
		}
		switch {
		case p.Pos.Y > plat.Pos.Y && p.Vel.Y < 0:
			next.Y = box.Top() + half.Y
			p.Vel.Y = 0
			w.onGround = true
		case p.Pos.Y < plat.Pos.Y && p.Vel.Y > 0:
			next.Y = box.Bottom() - half.Y
			p.Vel.Y = 0
		case p.Pos.X < plat.Pos.X:
			next.X = box.Left() - half.X
			p.Vel.X = 0
		case p.Pos.X > plat.Pos.X:
			next.X = box.Right() + half.X
			p.Vel.X = 0
		}
	}

	reachedGoal := candidate.Overlaps(w.goal.Box())
	p.Pos = next

	if reachedGoal {
		w.score++
		w.regenerateAround(p.Pos)
		return EventGoalReached
	}
	if p.Pos.Y < 0 {
		w.GenerateLevel(w.width, w.height)
		w.respawn()
		return EventFellOff
	}
	return EventNone
}
