package wordtally

import "testing"

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		n     int
		want  []Range
	}{
		{
			name:  "even division",
			total: 8,
			n:     4,
			want:  []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name:  "remainder goes to last range",
			total: 10,
			n:     3,
			want:  []Range{{0, 3}, {3, 6}, {6, 10}},
		},
		{
			name:  "single worker",
			total: 5,
			n:     1,
			want:  []Range{{0, 5}},
		},
		{
			name:  "more workers than records",
			total: 2,
			n:     4,
			want:  []Range{{0, 0}, {0, 0}, {0, 0}, {0, 2}},
		},
		{
			name:  "empty input",
			total: 0,
			n:     3,
			want:  []Range{{0, 0}, {0, 0}, {0, 0}},
		},
		{
			name:  "zero workers clamped to one",
			total: 4,
			n:     0,
			want:  []Range{{0, 4}},
		},
		{
			name:  "negative workers clamped to one",
			total: 4,
			n:     -2,
			want:  []Range{{0, 4}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.total, tt.n)

			if len(got) != len(tt.want) {
				t.Fatalf("Split(%d, %d) returned %d ranges, want %d",
					tt.total, tt.n, len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("Split(%d, %d) range[%d] = %+v, want %+v",
						tt.total, tt.n, i, got[i], want)
				}
			}
		})
	}
}

func TestSplit_Coverage(t *testing.T) {
	t.Parallel()

	// Ranges must be contiguous, non-overlapping, and cover exactly [0, total)
	// for any (total, n) combination.
	totals := []int{0, 1, 2, 3, 7, 16, 100, 101}
	workers := []int{1, 2, 3, 5, 8, 16, 64}

	for _, total := range totals {
		for _, n := range workers {
			got := Split(total, n)

			if len(got) != n {
				t.Fatalf("Split(%d, %d) returned %d ranges, want %d", total, n, len(got), n)
			}
			if got[0].Start != 0 {
				t.Errorf("Split(%d, %d) first range starts at %d, want 0", total, n, got[0].Start)
			}
			if got[len(got)-1].End != total {
				t.Errorf("Split(%d, %d) last range ends at %d, want %d",
					total, n, got[len(got)-1].End, total)
			}

			covered := 0
			for i, r := range got {
				if r.Len() < 0 {
					t.Errorf("Split(%d, %d) range[%d] = %+v has negative length", total, n, i, r)
				}
				if i > 0 && r.Start != got[i-1].End {
					t.Errorf("Split(%d, %d) range[%d] starts at %d, previous ended at %d",
						total, n, i, r.Start, got[i-1].End)
				}
				covered += r.Len()
			}

			if covered != total {
				t.Errorf("Split(%d, %d) covers %d records, want %d", total, n, covered, total)
			}
		}
	}
}
