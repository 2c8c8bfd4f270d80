package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSwap)

	if !f.Has(ActionSwap) || !f.Held(ActionSwap) {
		t.Error("ActionSwap should be held after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("ActionLeft should not be held")
	}

	f.Unset(ActionSwap)
	if f.Has(ActionSwap) {
		t.Error("ActionSwap should be released after Unset")
	}
}

func TestInputFrameIgnoresUnknownActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(99))

	if f.Has(ActionNone) || f.Has(Action(99)) {
		t.Error("unknown actions should never be reported held")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRaise)
	f.Clear()

	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			t.Errorf("%s still held after Clear", a)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionSpace.String() != "Space" {
		t.Errorf("ActionSpace.String() = %q", ActionSpace.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
