package knight

import (
	"fmt"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/entity"
)

// Message box placement in world units. The box anchors at its top-left.
var (
	messagePos   = core.V(120, 180)
	messageWidth = 560.0
)

// Render draws the active screen followed by the message box.
func (g *Game) Render(dst core.Renderer) {
	if g.fault != nil {
		dst.Clear(core.ColorBlack)
		dst.DrawText("Error: "+g.fault.Error(), core.V(20, g.cfg.World.Height-20), g.cfg.World.Width-40, 0)
		return
	}
	if g.screen == nil {
		dst.Clear(core.ColorBlack)
		return
	}

	g.screen.render(g, dst)
	if g.message.open {
		dst.DrawText(g.message.text, messagePos, messageWidth, g.message.speed)
	}
}

func (*startScreen) render(g *Game, dst core.Renderer) {
	dst.Clear(core.ColorBackdrop)
	w, h := g.cfg.World.Width, g.cfg.World.Height
	dst.DrawText(g.title, core.V(w/2-float64(len(g.title))*4, h-60), w, 0)
}

func (s *playScreen) render(g *Game, dst core.Renderer) {
	dst.Clear(core.ColorBackdrop)
	for _, p := range s.world.Platforms() {
		dst.DrawRect(p.Pos, p.Size, p.Color)
	}
	goal := s.world.Goal()
	dst.DrawRect(goal.Pos, goal.Size, goal.Color)

	body := s.world.Player()
	dst.DrawRect(body.Pos, body.Size, core.ColorPlayer)

	dst.DrawText(fmt.Sprintf("Score: %d", s.world.Score()), core.V(10, g.cfg.World.Height-10), 200, 0)
}

func (s *battleScreen) render(g *Game, dst core.Renderer) {
	dst.Clear(core.ColorBackdrop)
	w, h := g.cfg.World.Width, g.cfg.World.Height
	size := g.cfg.Player.Size * 3

	drawCombatant(dst, s.battle.Player(), core.V(w/4, h*3/4), size, core.ColorPlayer)
	drawCombatant(dst, s.battle.Enemy(), core.V(w*3/4, h*3/4), size, core.ColorGoal)
}

func drawCombatant(dst core.Renderer, e *entity.Entity, pos core.Vec2, size float64, c core.Color) {
	dst.DrawRect(pos, core.V(size, size), c)
	label := fmt.Sprintf("%s %s/%s", e.Name, entity.FormatAmount(e.Health), entity.FormatAmount(e.BaseHealth))
	dst.DrawText(label, core.V(pos.X-size, pos.Y-size/2-10), size*3, 0)
}

func (*overScreen) render(_ *Game, dst core.Renderer) {
	dst.Clear(core.ColorBlack)
}
