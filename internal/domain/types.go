package domain

// Sentence is a single document sentence in its original position.
type Sentence struct {
	// Position is the 0-based index of the sentence in document order.
	Position int
	// Text is the original sentence, unmodified.
	Text string
	// Tokens are the normalized terms of the sentence: lower-cased,
	// stopwords removed, stemmed. May be empty for sentences made
	// entirely of stopwords.
	Tokens []string
}

// Vector is a sparse term-count row as parallel slices.
// Cols holds vocabulary column ids in ascending order; Counts holds the
// raw in-sentence term count for the matching column. Counts are always
// positive; absent columns are zero.
type Vector struct {
	Cols   []int `json:"cols"`
	Counts []int `json:"counts"`
}

// NNZ returns the number of nonzero entries in the vector.
func (v Vector) NNZ() int { return len(v.Cols) }
