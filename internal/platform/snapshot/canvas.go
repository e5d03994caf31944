// Package snapshot renders a frame to an image for screenshots.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-knight/internal/core"
)

// Palette maps game colors to RGB.
var Palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0, 0, 0, 255},
	core.ColorBlack:       {0, 0, 0, 255},
	core.ColorRed:         {205, 49, 49, 255},
	core.ColorGreen:       {13, 188, 121, 255},
	core.ColorYellow:      {229, 229, 16, 255},
	core.ColorBlue:        {36, 114, 200, 255},
	core.ColorCyan:        {17, 168, 205, 255},
	core.ColorWhite:       {229, 229, 229, 255},
	core.ColorGray:        {128, 128, 128, 255},
	core.ColorDarkGray:    {48, 48, 48, 255},
	core.ColorBrightRed:   {241, 76, 76, 255},
	core.ColorBrightWhite: {255, 255, 255, 255},
}

// RGBA returns the palette entry for c, black when unknown.
func RGBA(c core.Color) color.RGBA {
	if rgb, ok := Palette[c]; ok {
		return rgb
	}
	return color.RGBA{0, 0, 0, 255}
}

// Canvas is a core.Renderer that draws world space into a bitmap. Text is
// drawn fully revealed.
type Canvas struct {
	dc    *gg.Context
	world core.Vec2
	scale float64
}

// NewCanvas creates a canvas for a world of the given size, scaled so the
// image is width pixels wide.
func NewCanvas(world core.Vec2, width int) *Canvas {
	if width < 1 {
		width = 1
	}
	scale := float64(width) / world.X
	height := int(world.Y*scale + 0.5)
	if height < 1 {
		height = 1
	}
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Canvas{dc: dc, world: world, scale: scale}
}

// toPixel converts a world point to image coordinates, flipping y.
func (c *Canvas) toPixel(p core.Vec2) (float64, float64) {
	return p.X * c.scale, (c.world.Y - p.Y) * c.scale
}

// Clear fills the image.
func (c *Canvas) Clear(bg core.Color) {
	c.dc.SetColor(RGBA(bg))
	c.dc.Clear()
}

// DrawRect fills a rectangle centered at pos.
func (c *Canvas) DrawRect(pos, size core.Vec2, col core.Color) {
	x, y := c.toPixel(core.V(pos.X-size.X/2, pos.Y+size.Y/2))
	c.dc.SetColor(RGBA(col))
	c.dc.DrawRectangle(x, y, size.X*c.scale, size.Y*c.scale)
	c.dc.Fill()
}

// DrawText draws wrapped text with its top-left corner at pos.
func (c *Canvas) DrawText(text string, pos core.Vec2, maxWidth, _ float64) {
	x, y := c.toPixel(pos)
	c.dc.SetColor(RGBA(core.ColorText))
	c.dc.DrawStringWrapped(text, x, y, 0, 0, maxWidth*c.scale, 1.3, gg.AlignLeft)
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the image to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: cannot save %s: %w", path, err)
	}
	return nil
}

// SaveThumbnail writes a copy of img scaled to width pixels.
func SaveThumbnail(img image.Image, path string, width int) error {
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("snapshot: cannot save thumbnail %s: %w", path, err)
	}
	return nil
}
