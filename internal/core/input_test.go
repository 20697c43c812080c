package core

import "testing"

func TestInputFrameCollapsesRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionJump)

	if !f.Has(ActionJump) {
		t.Fatal("frame should contain Jump")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated actions should collapse, got %d entries", len(f.Actions))
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)

	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionQuit)
	f.Clear()

	if !f.Empty() {
		t.Errorf("Clear should remove all actions, got %v", f.Actions)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionQueuePollNonBlocking(t *testing.T) {
	var q ActionQueue

	a, ok := q.PollInput()
	if ok || a != ActionNone {
		t.Errorf("empty queue PollInput() = (%v, %v), expected (None, false)", a, ok)
	}

	q.Push(ActionJump)
	q.Push(ActionNone)
	q.Push(ActionRestart)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	if a, _ := q.PollInput(); a != ActionJump {
		t.Errorf("first poll = %v, expected Jump", a)
	}
	if a, _ := q.PollInput(); a != ActionRestart {
		t.Errorf("second poll = %v, expected Restart", a)
	}
	if _, ok := q.PollInput(); ok {
		t.Error("queue should be drained")
	}
}

func TestDrainInput(t *testing.T) {
	var q ActionQueue
	q.Push(ActionJump)
	q.Push(ActionJump)
	q.Push(ActionPause)

	frame := DrainInput(&q)

	if !frame.Has(ActionJump) || !frame.Has(ActionPause) {
		t.Errorf("DrainInput lost actions: %v", frame.Actions)
	}
	if q.Len() != 0 {
		t.Error("DrainInput should empty the poller")
	}
}
