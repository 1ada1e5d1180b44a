// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/big"
	"testing"
)

//****************************************************************************

func TestTrackerCadence(t *testing.T) {
	var events []ProgressEvent
	tr := newTracker(func(e ProgressEvent) bool {
		events = append(events, e)
		return true
	}, "work", 10000, 0)
	for i := 1; i <= 10000; i++ {
		if !tr.step(i) {
			t.Fatal("unexpected stop request")
		}
	}
	tr.finish()
	if len(events) != 1000 {
		t.Errorf("expected 1000 events at the default cadence, got %d", len(events))
	}
	prev := -1
	for _, e := range events {
		if e.Label != "work" || e.Total != 10000 {
			t.Fatalf("bad event %+v", e)
		}
		if e.Completed < prev {
			t.Fatalf("completed went backwards: %d after %d", e.Completed, prev)
		}
		prev = e.Completed
	}
	if last := events[len(events)-1]; last.Completed != last.Total {
		t.Errorf("terminal event has Completed == %d, want %d", last.Completed, last.Total)
	}
}

func TestTrackerFinishAfterPartialWork(t *testing.T) {
	var events []ProgressEvent
	tr := newTracker(func(e ProgressEvent) bool {
		events = append(events, e)
		return true
	}, "work", 100, 25)
	tr.step(7) // below the cadence, nothing emitted yet
	tr.finish()
	if len(events) != 1 {
		t.Fatalf("expected only the terminal event, got %d events", len(events))
	}
	if events[0].Completed != 100 || events[0].Total != 100 {
		t.Errorf("bad terminal event %+v", events[0])
	}
}

func TestTrackerStopIsSticky(t *testing.T) {
	calls := 0
	tr := newTracker(func(e ProgressEvent) bool {
		calls++
		return false
	}, "work", 10, 1)
	if tr.step(1) {
		t.Error("step should report the stop request")
	}
	if tr.step(2) {
		t.Error("step should keep reporting the stop request")
	}
	tr.finish()
	if calls != 1 {
		t.Errorf("sink called %d times after requesting a stop, want 1", calls)
	}
}

func TestTrackerNil(t *testing.T) {
	if tr := newTracker(nil, "work", 10, 0); tr != nil {
		t.Error("nil sink should give a nil tracker")
	}
	if tr := newTracker(func(ProgressEvent) bool { return true }, "work", 0, 0); tr != nil {
		t.Error("zero total should give a nil tracker")
	}
	var tr *tracker
	if !tr.step(1) {
		t.Error("a nil tracker never requests a stop")
	}
	tr.finish()
}

//****************************************************************************

func TestMillerRabinProgress(t *testing.T) {
	var events []ProgressEvent
	sink := func(e ProgressEvent) bool {
		events = append(events, e)
		return true
	}
	v := MillerRabin(big.NewInt(1000003), Rounds(30), WithProgress(sink))
	if v.Kind != ProbablyPrime {
		t.Fatalf("MillerRabin(1000003) = %s", v.Kind)
	}
	if len(events) != 30 {
		t.Errorf("expected one event per witness, got %d", len(events))
	}
	for i, e := range events {
		if e.Completed != i+1 || e.Total != 30 {
			t.Fatalf("bad event %+v at index %d", e, i)
		}
	}
}

func TestMillerRabinNoProgressBelowThreshold(t *testing.T) {
	calls := 0
	sink := func(ProgressEvent) bool { calls++; return true }
	MillerRabin(big.NewInt(1000003), Rounds(10), WithProgress(sink))
	if calls != 0 {
		t.Errorf("a small run should not report progress, got %d events", calls)
	}
}

func TestMillerRabinCancellation(t *testing.T) {
	calls := 0
	sink := func(ProgressEvent) bool { calls++; return false }
	v := MillerRabin(big.NewInt(1000003), Rounds(30), WithProgress(sink))
	if v.Kind != Invalid || v.Reason != "cancelled" {
		t.Fatalf("expected a cancelled verdict, got %+v", v)
	}
	if calls != 1 {
		t.Errorf("sink called %d times after requesting a stop, want 1", calls)
	}
}
