package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should hold nothing")
	}

	f.Set(ActionJump)
	f.Set(ActionShoot)
	if !f.Has(ActionJump) || !f.Has(ActionShoot) {
		t.Error("Set actions should be held")
	}
	if f.Has(ActionLeft) {
		t.Error("unset action should not be held")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionShoot) {
		t.Error("Clear should release every action")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame(ActionLeft)
	clone := f.Clone()
	clone.Set(ActionRight)

	if f.Has(ActionRight) {
		t.Error("mutating a clone must not affect the original")
	}
	if !clone.Has(ActionLeft) {
		t.Error("clone should keep original actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:    "Left",
		ActionShoot:   "Shoot",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
