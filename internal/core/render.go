package core

// Renderer is the draw boundary between a game and the platform.
// Positions are in world units with y pointing up.
type Renderer interface {
	// Clear fills the frame with a backdrop color.
	Clear(bg Color)

	// DrawRect draws a filled rectangle centered at pos.
	DrawRect(pos, size Vec2, c Color)

	// DrawText draws text whose top-left corner is at pos, wrapped to
	// maxWidth world units. A positive scrollSpeed reveals the text at that
	// many characters per second; the renderer owns reveal progress and
	// pagination, keyed by text content.
	DrawText(text string, pos Vec2, maxWidth, scrollSpeed float64)
}
