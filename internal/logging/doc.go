// Package logging provides a unified logging interface for the benchmark
// engine. It abstracts the underlying logging implementation, allowing
// consistent structured logging across components while supporting multiple
// backends.
package logging
