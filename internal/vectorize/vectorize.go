package vectorize

import (
	"sort"

	"docsum/internal/domain"
)

// Index is the request-scoped vocabulary: normalized token to column id.
// It has a single owner and is only mutated between fan-out rounds, via
// Grow; workers read a snapshot of the mapping and never write to it.
// Column ids are assigned in first-seen order and never change or shrink
// within a run.
type Index struct {
	cols map[string]int
}

// NewIndex creates an empty vocabulary index.
func NewIndex() *Index {
	return &Index{cols: make(map[string]int)}
}

// Grow inserts every previously unseen token of the batch, in sentence
// then token order, so column assignment is deterministic. Must be
// called before the batch is fanned out: later batches must see all
// columns discovered by earlier ones.
func (ix *Index) Grow(batch []domain.Sentence) {
	for _, sent := range batch {
		for _, tok := range sent.Tokens {
			if _, ok := ix.cols[tok]; !ok {
				ix.cols[tok] = len(ix.cols)
			}
		}
	}
}

// Size returns the current vocabulary width.
func (ix *Index) Size() int { return len(ix.cols) }

// Mapping exposes the token-to-column map. Callers must treat it as
// read-only; the index retains ownership.
func (ix *Index) Mapping() map[string]int { return ix.cols }

// Count maps one sentence's tokens to a sparse count vector against the
// vocabulary. It is a pure function: both execution backends apply
// exactly this to every sentence of a batch. Tokens missing from the
// vocabulary are ignored, which can only happen for rows vectorized
// before the token's column existed.
func Count(tokens []string, vocab map[string]int) domain.Vector {
	if len(tokens) == 0 {
		return domain.Vector{}
	}
	freq := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if col, ok := vocab[tok]; ok {
			freq[col]++
		}
	}
	if len(freq) == 0 {
		return domain.Vector{}
	}
	vec := domain.Vector{
		Cols:   make([]int, 0, len(freq)),
		Counts: make([]int, 0, len(freq)),
	}
	for col := range freq {
		vec.Cols = append(vec.Cols, col)
	}
	sort.Ints(vec.Cols)
	for _, col := range vec.Cols {
		vec.Counts = append(vec.Counts, freq[col])
	}
	return vec
}
