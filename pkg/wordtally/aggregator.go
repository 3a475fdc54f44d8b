package wordtally

import "sync"

// Aggregator collects partial counts into the shared intermediate map during
// the map phase. Merge is the only write path and holds the aggregator's own
// mutex for the whole create-or-append, so concurrent merges can neither lose
// an appended value nor race the creation of a key's sequence. The lock is
// owned by the aggregator rather than being package state, so independent
// runs never contend with each other.
//
// The intermediate map must not be read while any worker may still merge;
// the engine enforces this with its join barrier.
type Aggregator struct {
	mu           sync.Mutex
	intermediate map[string][]int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{intermediate: make(map[string][]int)}
}

// Merge appends value to the sequence for token, creating the sequence if the
// token has not been seen yet. Safe for concurrent use.
func (a *Aggregator) Merge(token string, value int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.intermediate[token] = append(a.intermediate[token], value)
}

// Merged returns the total number of partial counts accumulated across all
// keys.
func (a *Aggregator) Merged() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	total := 0
	for _, values := range a.intermediate {
		total += len(values)
	}

	return total
}

// Intermediate returns the accumulated token → values map. Call only after
// the map-phase barrier: the map is returned without copying and must not be
// read while workers may still merge.
func (a *Aggregator) Intermediate() map[string][]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.intermediate
}

// Reduce collapses each key's accumulated sequence into its sum. An empty
// sequence sums to 0. Purely sequential: the map phase has fully completed by
// the time this runs.
func Reduce(intermediate map[string][]int) map[string]int {
	final := make(map[string]int, len(intermediate))

	for token, values := range intermediate {
		sum := 0
		for _, v := range values {
			sum += v
		}
		final[token] = sum
	}

	return final
}
