package pipeline

import (
	"math"

	"docsum/internal/domain"
)

// accumulator holds the growing sparse term-document matrix for one run:
// one count row per sentence folded so far, in document order, plus the
// running per-column document frequencies. Rows are never re-vectorized
// against columns discovered later; an earlier row is zero in those
// columns by construction, which is correct since the token truly did
// not occur in it.
type accumulator struct {
	sentences []domain.Sentence
	rows      []domain.Vector
	df        []int
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

// fold appends one batch of rows and updates document frequencies.
// width is the vocabulary size at fold time; the column space only grows.
func (a *accumulator) fold(batch []domain.Sentence, vecs []domain.Vector, width int) {
	for len(a.df) < width {
		a.df = append(a.df, 0)
	}
	for _, vec := range vecs {
		for _, col := range vec.Cols {
			a.df[col]++
		}
	}
	a.sentences = append(a.sentences, batch...)
	a.rows = append(a.rows, vecs...)
}

// len returns the number of sentences folded so far.
func (a *accumulator) len() int { return len(a.rows) }

// scores recomputes the TF-IDF weight matrix over everything folded so
// far and reduces it to one score per sentence. Term frequency is the
// raw in-sentence count; IDF is the smoothed log weight
// ln((1+N)/(1+df)) + 1, so a term present in every sentence still gets
// a positive weight and N == 0 cannot divide by zero. Each row is L2
// normalized before summing, so sentence length does not inflate raw
// weight magnitude. An all-zero row scores zero.
func (a *accumulator) scores() []float64 {
	n := len(a.rows)
	idf := make([]float64, len(a.df))
	for col, df := range a.df {
		idf[col] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	out := make([]float64, n)
	weights := make([]float64, 0, 64)
	for i, row := range a.rows {
		if row.NNZ() == 0 {
			continue
		}
		weights = weights[:0]
		var norm float64
		for k, col := range row.Cols {
			w := float64(row.Counts[k]) * idf[col]
			weights = append(weights, w)
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		var sum float64
		for _, w := range weights {
			sum += w / norm
		}
		out[i] = sum
	}
	return out
}
