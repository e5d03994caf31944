package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-knight/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
		quit     bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{"a", runeKey('a'), core.KeyA, false},
		{"upper D", runeKey('D'), core.KeyD, false},
		{"v", runeKey('v'), core.KeyV, false},
		{"r", runeKey('r'), core.KeyR, false},
		{"q closes text", runeKey('q'), core.KeyQ, false},
		{"i", runeKey('i'), core.KeyI, false},
		{"m", runeKey('m'), core.KeyM, false},
		{"unmapped", runeKey('z'), core.KeyNone, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyNone, true},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.expected || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", got, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestKeyLatchTap(t *testing.T) {
	l := NewKeyLatch(DefaultHold)
	now := time.Now()
	l.Press(core.KeyEnter, now, false)

	if f := l.Frame(now); !f.IsDown(core.KeyEnter) {
		t.Error("tap should be down on the next frame")
	}
	if f := l.Frame(now.Add(time.Millisecond)); f.IsDown(core.KeyEnter) {
		t.Error("tap should be consumed after one frame")
	}
}

func TestKeyLatchHold(t *testing.T) {
	l := NewKeyLatch(DefaultHold)
	start := time.Now()
	l.Press(core.KeyRight, start, true)

	if f := l.Frame(start.Add(16 * time.Millisecond)); !f.IsDown(core.KeyRight) {
		t.Error("held key should be down within the hold window")
	}
	if f := l.Frame(start.Add(100 * time.Millisecond)); !f.IsDown(core.KeyRight) {
		t.Error("held key should stay down until the hold expires")
	}

	// A repeat extends the hold.
	l.Press(core.KeyRight, start.Add(120*time.Millisecond), true)
	if f := l.Frame(start.Add(200 * time.Millisecond)); !f.IsDown(core.KeyRight) {
		t.Error("repeat should extend the hold")
	}
	if f := l.Frame(start.Add(400 * time.Millisecond)); f.IsDown(core.KeyRight) {
		t.Error("held key should release after the hold")
	}
}

func TestKeyLatchRelease(t *testing.T) {
	l := NewKeyLatch(DefaultHold)
	now := time.Now()
	l.Press(core.KeyA, now, true)
	l.Frame(now)
	l.Release()
	if f := l.Frame(now); f.IsDown(core.KeyA) {
		t.Error("Release() should drop held keys")
	}
}

func TestMovement(t *testing.T) {
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyA, core.KeyD} {
		if !Movement(k) {
			t.Errorf("Movement(%v) = false, expected true", k)
		}
	}
	for _, k := range []core.Key{core.KeyUp, core.KeySpace, core.KeyEnter, core.KeyV} {
		if Movement(k) {
			t.Errorf("Movement(%v) = true, expected false", k)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
