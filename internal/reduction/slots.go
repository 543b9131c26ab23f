package reduction

import (
	"golang.org/x/sync/errgroup"

	"github.com/agbru/chunkbench/internal/dataset"
	"github.com/agbru/chunkbench/internal/partition"
)

// SlotStrategy merges partial counts through a pre-sized results buffer with
// one slot per worker index. Each slot has exactly one writer, and the
// aggregating goroutine reads the slots only after every worker has joined,
// so no write ever races with another access. Lost updates are structurally
// impossible.
type SlotStrategy struct{}

// Name returns the strategy identifier used in reports.
func (*SlotStrategy) Name() string { return "Container" }

// Count tallies the cells of m strictly greater than threshold.
//
// Each worker writes its chunk's count into slots[w] exactly once; the final
// single-threaded sum happens strictly after the errgroup join.
//
// Parameters:
//   - m: The matrix to scan (shared read-only).
//   - threshold: Cells strictly greater than this value are counted.
//   - workers: The number of concurrent workers (>= 1).
//
// Returns:
//   - int64: The exact count.
//   - error: A ValidationError for an invalid worker count.
func (*SlotStrategy) Count(m dataset.Matrix, threshold, workers int) (int64, error) {
	chunks, err := partition.Split(m.Rows(), workers)
	if err != nil {
		return 0, err
	}

	slots := make([]int64, workers)
	var g errgroup.Group
	for w, chunk := range chunks {
		if chunk.Empty() {
			continue
		}
		g.Go(func() error {
			slots[w] = countChunk(m, threshold, chunk)
			return nil
		})
	}
	// Wait is the join barrier: every slot write happens-before this
	// return, so the sum below reads settled values.
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range slots {
		total += c
	}
	return total, nil
}
