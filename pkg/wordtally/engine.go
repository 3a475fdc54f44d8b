// Package wordtally implements an in-process parallel word-frequency counter:
// records are split into contiguous ranges, one goroutine per range tokenizes
// its records and merges (token, 1) partial counts into a shared aggregator,
// and after every worker has joined the intermediate map is reduced to final
// per-token totals.
package wordtally

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"pkg.jsn.cam/wordtally/pkg/tokenize"
)

// Options configures a counting engine.
type Options struct {
	// Workers is the number of map workers. Zero or negative means
	// runtime.NumCPU, clamped to at least 1.
	Workers int

	// Tokenizer turns a record into tokens. Defaults to tokenize.Simple{}.
	Tokenizer tokenize.Tokenizer

	// Progress, when set, is called once per processed record with the
	// increment 1. It may be called concurrently from several workers.
	Progress func(n int)
}

// Engine runs one-shot fork-join counting over a fixed slice of records.
type Engine struct {
	workers   int
	tokenizer tokenize.Tokenizer
	progress  func(int)
}

// New creates an engine from opts, applying defaults and clamping the worker
// count.
func New(opts Options) *Engine {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}

	tokenizer := opts.Tokenizer
	if tokenizer == nil {
		tokenizer = tokenize.Simple{}
	}

	return &Engine{
		workers:   workers,
		tokenizer: tokenizer,
		progress:  opts.Progress,
	}
}

// Workers returns the effective worker count after clamping.
func (e *Engine) Workers() int {
	return e.workers
}

// Count tokenizes every record and returns the total occurrences per token.
// The result is identical for any worker count. If a worker fails or ctx is
// cancelled, Count still waits for every worker to finish before returning
// the first error; it never returns a partially aggregated map.
func (e *Engine) Count(ctx context.Context, records []string) (map[string]int, error) {
	agg := NewAggregator()
	ranges := Split(len(records), e.workers)

	var wg sync.WaitGroup
	errs := make([]error, len(ranges))

	for i, r := range ranges {
		wg.Add(1)
		go func(i int, r Range) {
			defer wg.Done()
			errs[i] = e.mapRange(ctx, records, r, agg)
		}(i, r)
	}

	// Join barrier: nothing below may run while a worker can still merge.
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return Reduce(agg.Intermediate()), nil
}

// mapRange processes one worker's span of records. The record slice is
// read-only here; the aggregator is the only shared-mutable state.
func (e *Engine) mapRange(ctx context.Context, records []string, r Range, agg *Aggregator) error {
	for i := r.Start; i < r.End; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("worker aborted at record %d: %w", i, err)
		}

		e.mapRecord(records[i], func(pc PartialCount) {
			agg.Merge(pc.Token, pc.Value)
		})

		if e.progress != nil {
			e.progress(1)
		}
	}

	return nil
}

// mapRecord applies the tokenizer to one record and emits one (token, 1)
// partial count per occurrence, in first-occurrence order.
func (e *Engine) mapRecord(record string, emit Emitter) {
	for _, token := range e.tokenizer.Tokenize(record) {
		emit(PartialCount{Token: token, Value: 1})
	}
}
