// Package reduction implements the two parallel counting disciplines under
// measurement: per-worker result slots and a single shared atomic
// accumulator. Both count the matrix cells exceeding a threshold and differ
// only in how the partial counts merge.
//
// Neither discipline takes a lock. Correctness rests on slot disjointness
// plus a full join before aggregation for the first, and on atomic add
// semantics plus the same join for the second. A reduction call always runs
// to completion; there is no cancellation or timeout path, because aborting
// mid-trial would leave the timing sample meaningless.
package reduction

import (
	"github.com/agbru/chunkbench/internal/dataset"
	"github.com/agbru/chunkbench/internal/partition"
)

// Strategy is one algorithm for merging per-worker partial counts into one
// total, classified by how shared mutable state is accessed.
type Strategy interface {
	// Name identifies the strategy; it is also the stem of its report
	// metric labels (e.g. "Container" -> ContainerAvg, ContainerStd).
	Name() string

	// Count tallies the cells of m strictly greater than threshold using
	// the given number of concurrent workers. The result is exact and
	// deterministic for any worker count and scheduling order.
	Count(m dataset.Matrix, threshold, workers int) (int64, error)
}

// DefaultStrategies returns the two disciplines in report order.
func DefaultStrategies() []Strategy {
	return []Strategy{&SlotStrategy{}, &AtomicStrategy{}}
}

// SequentialCount is the single-threaded oracle: a plain full scan with no
// concurrency. Both strategies must agree with it for any input.
//
// Parameters:
//   - m: The matrix to scan.
//   - threshold: Cells strictly greater than this value are counted.
//
// Returns:
//   - int64: The number of cells over the threshold.
func SequentialCount(m dataset.Matrix, threshold int) int64 {
	var count int64
	for _, row := range m {
		for _, v := range row {
			if v > threshold {
				count++
			}
		}
	}
	return count
}

// countChunk counts the over-threshold cells in one chunk of rows. It is the
// shared inner loop of both strategies, so the measured difference between
// them is purely the merge discipline.
func countChunk(m dataset.Matrix, threshold int, c partition.Chunk) int64 {
	var count int64
	for i := c.Start; i < c.End; i++ {
		for _, v := range m[i] {
			if v > threshold {
				count++
			}
		}
	}
	return count
}
