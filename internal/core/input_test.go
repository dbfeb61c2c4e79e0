package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPause) {
		t.Fatal("empty frame should not have Pause")
	}

	f.Set(ActionPause)
	f.Set(ActionNone)
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) = false after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
}

func TestInputFrameListOrder(t *testing.T) {
	f := FrameOf(ActionConfirm, ActionMoveLeft, ActionPause)

	got := f.List()
	expected := []Action{ActionMoveLeft, ActionPause, ActionConfirm}
	if len(got) != len(expected) {
		t.Fatalf("List() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("List()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := FrameOf(ActionRestart, ActionPause)

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	f.Set(ActionMoveUp)
	if !f.Has(ActionMoveUp) {
		t.Error("frame should accept actions after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleStatic.String() != "ToggleStatic" {
		t.Errorf("String() = %q", ActionToggleStatic.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(999).String())
	}
}
