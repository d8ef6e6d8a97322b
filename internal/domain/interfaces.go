package domain

import "context"

// Source produces sentences in original document order. It is a
// forward-only, single-pass producer: once a sentence has been read it
// cannot be replayed, and abandoning a source mid-document is allowed.
// Next returns io.EOF after the last sentence.
type Source interface {
	Next() (Sentence, error)
}

// Backend supplies the parallel-map primitive consumed by the
// vectorization stage. Vectorize applies the pure sentence-counting
// function to every sentence of the batch and returns one vector per
// sentence, in input order, regardless of completion order. Either the
// whole batch succeeds or the call fails; partial results are never
// returned. The vocabulary is read-only for the duration of the call.
type Backend interface {
	Name() string
	Vectorize(ctx context.Context, vocab map[string]int, batch []Sentence) ([]Vector, error)
	// Ping reports whether the backend can currently accept work.
	Ping(ctx context.Context) error
}
