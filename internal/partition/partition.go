// Package partition splits a row range into contiguous, near-equal chunks,
// one per worker. The chunk boundaries are deterministic: the same inputs
// always yield the same chunks.
package partition

import (
	apperrors "github.com/agbru/chunkbench/internal/errors"
)

// Chunk is a half-open row range [Start, End) assigned to exactly one worker.
// A chunk with Start == End carries no work.
type Chunk struct {
	// Start is the first row of the chunk (inclusive).
	Start int
	// End is the row after the last row of the chunk (exclusive).
	End int
}

// Len returns the number of rows in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Empty reports whether the chunk carries no work.
func (c Chunk) Empty() bool { return c.Start == c.End }

// Split divides [0, rows) into exactly workers chunks.
//
// All chunks but the last have size ceil(rows/workers); the last chunk is
// clipped to rows. When workers > rows, trailing chunks are empty and must be
// treated as no-op work by the consumer. The chunks partition [0, rows)
// exactly: no overlap, no gaps.
//
// Parameters:
//   - rows: The number of rows to cover (>= 0).
//   - workers: The number of chunks to produce (>= 1).
//
// Returns:
//   - []Chunk: Exactly workers chunks covering [0, rows).
//   - error: A ValidationError if rows < 0 or workers < 1.
func Split(rows, workers int) ([]Chunk, error) {
	if rows < 0 {
		return nil, apperrors.NewValidationError("rows", "must be >= 0, got %d", rows)
	}
	if workers < 1 {
		return nil, apperrors.NewValidationError("workers", "must be >= 1, got %d", workers)
	}

	chunkSize := 0
	if rows > 0 {
		chunkSize = (rows + workers - 1) / workers
	}

	chunks := make([]Chunk, workers)
	for w := 0; w < workers; w++ {
		start := min(w*chunkSize, rows)
		end := min(start+chunkSize, rows)
		chunks[w] = Chunk{Start: start, End: end}
	}
	return chunks, nil
}
