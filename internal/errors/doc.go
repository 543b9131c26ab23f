// Package apperrors defines the error taxonomy and process exit codes shared
// across the benchmark engine. All errors propagate to the caller; nothing in
// the measurement path retries internally, because retries would bias the
// collected latency samples.
package apperrors
