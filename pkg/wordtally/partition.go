package wordtally

// Range is a half-open [Start, End) span of record indices assigned to one
// worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of records in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides total records into n contiguous, non-overlapping ranges whose
// union covers exactly [0, total). n is clamped to at least 1. Every range
// holds total/n records except the last, which also takes the remainder of
// the integer division, so uneven totals are still covered exactly once.
// Ranges may be empty when n exceeds total.
func Split(total, n int) []Range {
	if n < 1 {
		n = 1
	}

	base := total / n
	ranges := make([]Range, n)

	for i := range ranges {
		ranges[i] = Range{Start: i * base, End: (i + 1) * base}
	}
	ranges[n-1].End = total

	return ranges
}
