package tui

import "testing"

func TestFieldStateEditing(t *testing.T) {
	f := NewFieldState("24")

	f.Insert('5')
	if f.Value() != "245" {
		t.Errorf("after insert: %q", f.Value())
	}

	f.MoveLeft()
	f.MoveLeft()
	f.Insert('.')
	if f.Value() != "2.45" {
		t.Errorf("after mid insert: %q", f.Value())
	}

	if !f.DeleteBackward() {
		t.Error("DeleteBackward should succeed")
	}
	if f.Value() != "245" {
		t.Errorf("after delete: %q", f.Value())
	}

	f.Cursor = 0
	if f.DeleteBackward() {
		t.Error("DeleteBackward at origin should fail")
	}
	if !f.DeleteForward() {
		t.Error("DeleteForward should succeed")
	}
	if f.Value() != "45" {
		t.Errorf("after forward delete: %q", f.Value())
	}
}

func TestFieldStateSetValue(t *testing.T) {
	f := NewFieldState("1")
	f.SetValue("10.25")
	if f.Value() != "10.25" || f.Cursor != 5 {
		t.Errorf("SetValue: value %q cursor %d", f.Value(), f.Cursor)
	}
}

func TestFieldStateCursorClamped(t *testing.T) {
	f := NewFieldState("ab")
	f.MoveRight()
	if f.Cursor != 2 {
		t.Errorf("cursor ran past end: %d", f.Cursor)
	}
	f.Cursor = 0
	f.MoveLeft()
	if f.Cursor != 0 {
		t.Errorf("cursor ran past origin: %d", f.Cursor)
	}
}
