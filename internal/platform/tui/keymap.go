package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-knight/internal/core"
)

// DefaultHold is how long a movement key counts as down after its last
// press. Terminals report presses and repeats, never releases.
const DefaultHold = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return core.KeyNone, true
	case "left":
		return core.KeyLeft, false
	case "right":
		return core.KeyRight, false
	case "up":
		return core.KeyUp, false
	case " ", "space":
		return core.KeySpace, false
	case "enter":
		return core.KeyEnter, false
	}

	switch strings.ToLower(msg.String()) {
	case "i":
		return core.KeyI, false
	case "a":
		return core.KeyA, false
	case "d":
		return core.KeyD, false
	case "v":
		return core.KeyV, false
	case "r":
		return core.KeyR, false
	case "q":
		return core.KeyQ, false
	case "m":
		return core.KeyM, false
	}

	return core.KeyNone, false
}

// Movement reports whether k steers the player while held.
func Movement(k core.Key) bool {
	switch k {
	case core.KeyLeft, core.KeyRight, core.KeyA, core.KeyD:
		return true
	}
	return false
}

// KeyLatch builds per-frame key-down tables from key presses. Every press
// is down for the next frame; a held press stays down until hold has passed
// without a repeat.
type KeyLatch struct {
	hold time.Duration
	taps map[core.Key]bool
	held map[core.Key]time.Time
}

// NewKeyLatch creates a latch.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{
		hold: hold,
		taps: make(map[core.Key]bool),
		held: make(map[core.Key]time.Time),
	}
}

// Press records a key press at the given time. When hold is false the key
// is only down for one frame.
func (l *KeyLatch) Press(k core.Key, at time.Time, hold bool) {
	if k == core.KeyNone {
		return
	}
	l.taps[k] = true
	if hold {
		l.held[k] = at
	}
}

// Frame returns the keys down at now and consumes pending taps.
func (l *KeyLatch) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for k := range l.taps {
		frame.Set(k)
		delete(l.taps, k)
	}
	for k, at := range l.held {
		if now.Sub(at) > l.hold {
			delete(l.held, k)
			continue
		}
		frame.Set(k)
	}
	return frame
}

// Release drops every held key.
func (l *KeyLatch) Release() {
	for k := range l.held {
		delete(l.held, k)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
