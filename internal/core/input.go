package core

// Key is a physical key the game can poll. The platform maps terminal key
// events to these; games decide what a key means on each screen.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow
	KeyRight     // Right arrow
	KeyUp        // Up arrow
	KeySpace     // Space bar
	KeyEnter     // Enter / Return
	KeyI         // Info
	KeyA         // Move left / Attack
	KeyD         // Move right / Defend
	KeyV         // View
	KeyR         // Run / Restart
	KeyQ         // Close message box
	KeyM         // Menu
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyI:
		return "I"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyV:
		return "V"
	case KeyR:
		return "R"
	case KeyQ:
		return "Q"
	case KeyM:
		return "M"
	default:
		return "Unknown"
	}
}

// InputFrame is the key-down table for a single frame.
type InputFrame struct {
	Keys map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{Keys: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		f.Keys[k] = true
	}
	return f
}

// Set marks a key as down for this frame.
func (f *InputFrame) Set(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// IsDown returns true if the key is down this frame.
func (f InputFrame) IsDown(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// Any returns true if at least one of the keys is down.
func (f InputFrame) Any(keys ...Key) bool {
	for _, k := range keys {
		if f.IsDown(k) {
			return true
		}
	}
	return false
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	return clone
}
