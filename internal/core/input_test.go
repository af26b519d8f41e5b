package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)

	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("Has() should report actions that were set")
	}
	if f.Has(ActionRight) {
		t.Error("Has() should be false for actions that were not set")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if f.Last != ActionLeft {
		t.Errorf("Last = %v, expected Left", f.Last)
	}

	f.Clear()
	if f.Last != ActionNone {
		t.Errorf("Clear should reset Last, got %v", f.Last)
	}
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameCopiesByValue(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	c := f
	f.Clear()

	if !c.Has(ActionDown) || c.Last != ActionDown {
		t.Error("copied frame should not see Clear on the source")
	}
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
}

func TestInputFrameIgnoresNoneAndUnknown(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(99))

	if !f.Empty() {
		t.Error("ActionNone and unknown actions must not be recorded")
	}
	if f.Has(Action(-1)) {
		t.Error("Has() of an invalid action should be false")
	}
}

func TestActionIsDirectional(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		want := a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
		if a.IsDirectional() != want {
			t.Errorf("%v.IsDirectional() = %v, expected %v", a, a.IsDirectional(), want)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
