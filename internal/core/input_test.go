package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(KeyA)

	if !f.IsDown(KeyA) {
		t.Error("IsDown(KeyA) = false, expected true")
	}
	if f.IsDown(KeyD) {
		t.Error("IsDown(KeyD) = true, expected false")
	}
	if !f.Any(KeyLeft, KeyA) {
		t.Error("Any(KeyLeft, KeyA) = false, expected true")
	}

	clone := f.Clone()
	f.Clear()
	if f.IsDown(KeyA) {
		t.Error("Clear() should release every key")
	}
	if !clone.IsDown(KeyA) {
		t.Error("Clone() should not share state with the original")
	}

	var zero InputFrame
	if zero.IsDown(KeyEnter) {
		t.Error("zero frame should report no keys down")
	}
	zero.Set(KeyEnter)
	if !zero.IsDown(KeyEnter) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestKeyString(t *testing.T) {
	if KeyEnter.String() != "Enter" {
		t.Errorf("KeyEnter.String() = %q, expected %q", KeyEnter.String(), "Enter")
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q, expected %q", Key(99).String(), "Unknown")
	}
}
