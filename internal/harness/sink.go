package harness

// Sink consumes measured results so the compiler cannot prove the
// computation dead and elide it. It replaces the volatile-read trick used in
// systems languages with an explicit escaping store: the last value and the
// consumption count are retained and checked by callers, which forces every
// measured result to escape.
type Sink[R any] struct {
	last     R
	consumed int
}

// Consume records one measured result.
func (s *Sink[R]) Consume(r R) {
	s.last = r
	s.consumed++
}

// Last returns the most recently consumed result.
func (s *Sink[R]) Last() R { return s.last }

// Consumed returns how many results have been consumed.
func (s *Sink[R]) Consumed() int { return s.consumed }
