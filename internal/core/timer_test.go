package core

import "testing"

func TestStepTimerFiresAndResets(t *testing.T) {
	timer := NewStepTimer(0.5)
	if timer.Advance(0.25) {
		t.Fatal("fired before interval elapsed")
	}
	if !timer.Advance(0.3) {
		t.Fatal("did not fire once interval elapsed")
	}
	if timer.Elapsed() != 0 {
		t.Fatalf("elapsed = %v after firing, want 0", timer.Elapsed())
	}
	if timer.Advance(0.4) {
		t.Fatal("overshoot must not carry over into the next interval")
	}
}

func TestStepTimerIgnoresNegativeDelta(t *testing.T) {
	timer := NewStepTimer(1)
	timer.Advance(-3)
	if timer.Elapsed() != 0 {
		t.Fatalf("elapsed = %v, want 0", timer.Elapsed())
	}
}

func TestStepTimerDefaultInterval(t *testing.T) {
	if got := NewStepTimer(0).Interval(); got != 0.5 {
		t.Fatalf("interval = %v, want 0.5", got)
	}
}

func TestEdgeTriggerFiresOncePerPress(t *testing.T) {
	var e EdgeTrigger
	levels := []bool{false, true, true, true, false, true, false}
	want := []bool{false, true, false, false, false, true, false}
	for i, level := range levels {
		if got := e.Update(level); got != want[i] {
			t.Fatalf("frame %d: Update(%v) = %v, want %v", i, level, got, want[i])
		}
	}
}
