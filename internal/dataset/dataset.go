// Package dataset builds the rectangular integer grids the reduction
// strategies scan. A Matrix is created once per benchmark configuration and
// is shared read-only by all workers; nothing in this package mutates a
// matrix after generation.
package dataset

import (
	"math/rand/v2"
	"sort"

	apperrors "github.com/agbru/chunkbench/internal/errors"
)

// Cell values produced by the deterministic fill policies. The default
// threshold of 128 sits between CheckerLow and CheckerHigh so a checkered
// matrix exercises both branches of the comparison.
const (
	ConstantValue = 150 // every cell of a "constant" matrix
	CheckerHigh   = 150 // odd-row/odd-column cells of a "checker" matrix
	CheckerLow    = 100 // remaining cells of a "checker" matrix
	RandomMax     = 255 // inclusive upper bound of a "random" cell
)

// Matrix is an immutable rectangular grid of integers, rows x cols.
// All rows have equal length.
type Matrix [][]int

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// FillFunc generates a rows x cols matrix. The seed is ignored by
// deterministic policies.
type FillFunc func(rows, cols int, seed uint64) Matrix

// fillPolicies maps policy names to their generators.
var fillPolicies = map[string]FillFunc{
	"constant": func(rows, cols int, _ uint64) Matrix { return Constant(rows, cols) },
	"checker":  func(rows, cols int, _ uint64) Matrix { return Checker(rows, cols) },
	"random":   Random,
}

// Policies returns the sorted names of the available fill policies.
func Policies() []string {
	names := make([]string, 0, len(fillPolicies))
	for name := range fillPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds a matrix using the named fill policy.
//
// Parameters:
//   - policy: One of the names returned by Policies.
//   - rows, cols: The matrix dimensions (>= 0).
//   - seed: The PRNG seed for the "random" policy; ignored otherwise.
//
// Returns:
//   - Matrix: The generated matrix.
//   - error: A ConfigError for an unknown policy, or a ValidationError for
//     negative dimensions.
func Generate(policy string, rows, cols int, seed uint64) (Matrix, error) {
	if rows < 0 {
		return nil, apperrors.NewValidationError("rows", "must be >= 0, got %d", rows)
	}
	if cols < 0 {
		return nil, apperrors.NewValidationError("cols", "must be >= 0, got %d", cols)
	}
	fill, ok := fillPolicies[policy]
	if !ok {
		return nil, apperrors.NewConfigError("unknown fill policy %q (available: %v)", policy, Policies())
	}
	return fill(rows, cols, seed), nil
}

// Constant returns a matrix with every cell set to ConstantValue.
func Constant(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		row := make([]int, cols)
		for j := range row {
			row[j] = ConstantValue
		}
		m[i] = row
	}
	return m
}

// Checker returns a matrix with CheckerHigh at odd-row/odd-column cells and
// CheckerLow everywhere else.
func Checker(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		row := make([]int, cols)
		for j := range row {
			if i%2 == 1 && j%2 == 1 {
				row[j] = CheckerHigh
			} else {
				row[j] = CheckerLow
			}
		}
		m[i] = row
	}
	return m
}

// Random returns a matrix of uniform values in [0, RandomMax]. The same seed
// always produces the same matrix.
func Random(rows, cols int, seed uint64) Matrix {
	rng := rand.New(rand.NewPCG(seed, seed))
	m := make(Matrix, rows)
	for i := range m {
		row := make([]int, cols)
		for j := range row {
			row[j] = rng.IntN(RandomMax + 1)
		}
		m[i] = row
	}
	return m
}
