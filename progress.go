// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import "time"

// ProgressEvent is the unit of cooperative progress reporting. Within one
// test invocation, Completed is monotonically non-decreasing, Total is
// constant, and the final event (if any) has Completed == Total.
type ProgressEvent struct {
	Label     string
	Completed int
	Total     int
	Elapsed   time.Duration
}

// Sink receives progress events from a running test. Returning false is a
// cooperative stop request: the test aborts at the next checkpoint and
// returns an Invalid verdict with reason "cancelled". A nil Sink disables
// reporting entirely. Sinks must be fast and must not panic; they are
// invoked synchronously on the testing goroutine.
type Sink func(ProgressEvent) bool

// tracker throttles the emission of progress events for one test run. The
// zero cadence is one event per 0.1% of the total work, so that the sink
// never materially slows the test. A nil tracker is a valid no-op.
type tracker struct {
	sink    Sink
	label   string
	total   int
	stride  int
	last    int
	start   time.Time
	stopped bool
}

// newTracker returns a tracker for total work steps, or nil when there is
// no sink or nothing to report. stride overrides the default cadence when
// positive (the batch coordinator uses stride 1 to report every item).
func newTracker(sink Sink, label string, total, stride int) *tracker {
	if sink == nil || total <= 0 {
		return nil
	}
	if stride <= 0 {
		stride = total / 1000
		if stride < 1 {
			stride = 1
		}
	}
	return &tracker{sink: sink, label: label, total: total, stride: stride, start: time.Now()}
}

// step records that the test reached completed steps and reports it to the
// sink when the cadence is due. It returns false once the sink has
// requested a stop; after that no further events are emitted.
func (t *tracker) step(completed int) bool {
	if t == nil {
		return true
	}
	if t.stopped {
		return false
	}
	if completed < t.last {
		completed = t.last
	}
	if completed%t.stride != 0 && completed != t.total {
		t.last = completed
		return true
	}
	t.last = completed
	if !t.sink(ProgressEvent{Label: t.label, Completed: completed, Total: t.total, Elapsed: time.Since(t.start)}) {
		t.stopped = true
		return false
	}
	return true
}

// finish emits the terminal event (Completed == Total) unless it was
// already sent or the sink asked to stop.
func (t *tracker) finish() {
	if t == nil || t.stopped || t.last == t.total {
		return
	}
	t.last = t.total
	t.sink(ProgressEvent{Label: t.label, Completed: t.total, Total: t.total, Elapsed: time.Since(t.start)})
}
