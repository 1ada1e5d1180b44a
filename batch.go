// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome of one batch line: the raw input, the parsed
// candidate (nil when parsing failed), the verdict, the per-item error
// (parse failure or captured fault) and the time the test took. Items are
// immutable once their test has completed.
type BatchItem struct {
	Raw       string
	Candidate *Candidate
	Verdict   Verdict
	Err       error
	Duration  time.Duration
}

// BatchReport aggregates a batch run. Items preserve input order
// regardless of execution order; the counters are accumulated
// incrementally as items complete, so auxiliary memory stays bounded
// beyond the stored items themselves.
type BatchReport struct {
	Items          []BatchItem
	PrimeCount     int
	CompositeCount int
	ErrorCount     int
	Elapsed        time.Duration
}

// BatchTiming is a descriptive summary of per-item test durations.
type BatchTiming struct {
	Mean, Median, Max time.Duration
}

// Timing computes duration statistics over the completed items of the
// report.
func (r *BatchReport) Timing() (BatchTiming, error) {
	ds := make([]float64, len(r.Items))
	for i, it := range r.Items {
		ds[i] = it.Duration.Seconds()
	}
	mean, err := stats.Mean(ds)
	if err != nil {
		return BatchTiming{}, err
	}
	median, err := stats.Median(ds)
	if err != nil {
		return BatchTiming{}, err
	}
	max, err := stats.Max(ds)
	if err != nil {
		return BatchTiming{}, err
	}
	sec := func(v float64) time.Duration { return time.Duration(v * float64(time.Second)) }
	return BatchTiming{Mean: sec(mean), Median: sec(median), Max: sec(max)}, nil
}

// Runner iterates a sequence of raw candidate strings and tests each one
// independently: a line that fails to parse, or a test that faults, is
// captured on its own item and never aborts the rest of the run.
type Runner struct {
	cfg *configs
}

// NewRunner returns a batch coordinator. The options are those of Check,
// plus Workers to test several items concurrently; each item's test
// remains sequential.
func NewRunner(options ...Option) *Runner {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	return &Runner{cfg: cfg}
}

// Run processes the inputs in order and returns the aggregated report. An
// outer progress event is emitted per completed item under the label
// "batch"; each item's own inner events are forwarded to the same sink,
// tagged with the item's position, so consumers can render either level.
// A sink stop request cancels the in-flight tests and marks every
// untested item Invalid with reason "cancelled".
func (r *Runner) Run(inputs []string) *BatchReport {
	start := time.Now()
	report := &BatchReport{Items: make([]BatchItem, len(inputs))}
	outer := newTracker(r.cfg.sink, "batch", len(inputs), 1)

	// *rand.Rand is not safe for concurrent use: derive one seed per item
	// upfront so that seeded runs stay reproducible under Workers > 1
	var seeds []int64
	if r.cfg.rnd != nil {
		seeds = make([]int64, len(inputs))
		for i := range seeds {
			seeds[i] = r.cfg.rnd.Int63()
		}
	}

	var mu sync.Mutex
	done := 0
	stop := false

	complete := func(i int, it BatchItem) {
		mu.Lock()
		defer mu.Unlock()
		report.Items[i] = it
		switch {
		case it.Err != nil || it.Verdict.Kind == Invalid:
			report.ErrorCount++
		case it.Verdict.IsPrime():
			report.PrimeCount++
		default:
			report.CompositeCount++
		}
		done++
		if !outer.step(done) {
			stop = true
		}
	}

	runItem := func(i int) {
		mu.Lock()
		skip := stop
		mu.Unlock()
		if skip {
			complete(i, BatchItem{Raw: inputs[i], Verdict: cancelled()})
			return
		}
		var seed int64
		if seeds != nil {
			seed = seeds[i]
		}
		complete(i, r.testItem(i, inputs[i], seed, seeds != nil, &mu, &stop))
	}

	if r.cfg.workers <= 1 {
		for i := range inputs {
			runItem(i)
		}
	} else {
		g := new(errgroup.Group)
		g.SetLimit(r.cfg.workers)
		for i := range inputs {
			i := i
			g.Go(func() error {
				runItem(i)
				return nil
			})
		}
		_ = g.Wait() // items never return errors; failures live on the items
	}

	report.Elapsed = time.Since(start)
	return report
}

// testItem parses and checks one input. Faults (see ArithmeticFault in the
// package documentation) are recovered here so that a contract violation
// stays confined to its item.
func (r *Runner) testItem(i int, raw string, seed int64, seeded bool, mu *sync.Mutex, stop *bool) (it BatchItem) {
	start := time.Now()
	it.Raw = raw
	defer func() {
		it.Duration = time.Since(start)
		if rec := recover(); rec != nil {
			it.Err = goerrors.Wrap(rec, 2)
			it.Verdict = invalid("arithmetic fault")
			logger.Debug("batch item fault",
				zap.Int("item", i),
				zap.Error(it.Err),
			)
		}
	}()

	c, err := Parse(raw)
	if err != nil {
		it.Err = err
		it.Verdict = invalid(err.Error())
		return it
	}
	it.Candidate = c

	// forward inner events under the item's label, and propagate both
	// cancellation directions: sink -> tests and outer stop -> this item
	cfg := *r.cfg
	if seeded {
		cfg.rnd = rand.New(rand.NewSource(seed))
	}
	if sink := r.cfg.sink; sink != nil {
		cfg.sink = func(e ProgressEvent) bool {
			mu.Lock()
			stopped := *stop
			mu.Unlock()
			if stopped {
				return false
			}
			e.Label = fmt.Sprintf("item %d: %s", i+1, e.Label)
			if !sink(e) {
				mu.Lock()
				*stop = true
				mu.Unlock()
				return false
			}
			return true
		}
	}
	it.Verdict = check(c, &cfg)
	return it
}
