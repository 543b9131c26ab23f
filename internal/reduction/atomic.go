package reduction

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/chunkbench/internal/dataset"
	"github.com/agbru/chunkbench/internal/partition"
)

// AtomicStrategy merges partial counts into a single shared accumulator.
// Each worker counts its chunk in a private local variable and performs
// exactly one atomic add at the end of its chunk, so per-element contention
// never occurs; the only contended operation is one fetch-and-add per
// worker.
//
// The original formulation of this discipline used a relaxed-ordering add;
// Go's sync/atomic is sequentially consistent, which strictly strengthens
// that contract without changing the arithmetic. The accumulator is loaded
// only after the join, which alone already establishes the needed
// happens-before edge.
type AtomicStrategy struct{}

// Name returns the strategy identifier used in reports.
func (*AtomicStrategy) Name() string { return "LocalCounter" }

// Count tallies the cells of m strictly greater than threshold.
//
// Parameters:
//   - m: The matrix to scan (shared read-only).
//   - threshold: Cells strictly greater than this value are counted.
//   - workers: The number of concurrent workers (>= 1).
//
// Returns:
//   - int64: The exact count.
//   - error: A ValidationError for an invalid worker count.
func (*AtomicStrategy) Count(m dataset.Matrix, threshold, workers int) (int64, error) {
	chunks, err := partition.Split(m.Rows(), workers)
	if err != nil {
		return 0, err
	}

	var total atomic.Int64
	var g errgroup.Group
	for _, chunk := range chunks {
		if chunk.Empty() {
			continue
		}
		g.Go(func() error {
			local := countChunk(m, threshold, chunk)
			total.Add(local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return total.Load(), nil
}
