package reduction

import (
	"testing"

	"github.com/agbru/chunkbench/internal/dataset"
)

// TestCountDeterminism runs each strategy repeatedly on the same input and
// requires the identical count every time. Run under the race detector this
// also shakes out any racing access to the partial results.
func TestCountDeterminism(t *testing.T) {
	const (
		runs      = 100
		threshold = 128
		workers   = 8
	)
	m := dataset.Random(200, 64, 99)

	for _, strategy := range DefaultStrategies() {
		t.Run(strategy.Name(), func(t *testing.T) {
			first, err := strategy.Count(m, threshold, workers)
			if err != nil {
				t.Fatalf("Count error: %v", err)
			}
			for i := 1; i < runs; i++ {
				got, err := strategy.Count(m, threshold, workers)
				if err != nil {
					t.Fatalf("run %d: Count error: %v", i, err)
				}
				if got != first {
					t.Fatalf("run %d: Count = %d, want %d", i, got, first)
				}
			}
		})
	}
}

// TestConcurrentStrategyUse runs both strategies concurrently over the same
// shared matrix. The matrix is read-only during reduction, so concurrent
// invocations must not interfere.
func TestConcurrentStrategyUse(t *testing.T) {
	m := dataset.Checker(120, 80)
	want := SequentialCount(m, 128)

	done := make(chan int64, 8)
	for i := 0; i < 4; i++ {
		for _, strategy := range DefaultStrategies() {
			go func() {
				got, err := strategy.Count(m, 128, 5)
				if err != nil {
					done <- -1
					return
				}
				done <- got
			}()
		}
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent Count = %d, want %d", got, want)
		}
	}
}
