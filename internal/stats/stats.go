package stats

import (
	"errors"
	"io"
	"math"
	"sort"

	"docsum/internal/domain"
)

// topWords is how many of the most common words the report carries.
const topWords = 10

// WordCount pairs a word with its total occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Statistics is the aggregate word and vocabulary report for a document.
// It is a pure reporting add-on computed by an independent pass over the
// sentence set; it never influences ranking.
type Statistics struct {
	WordCount         int         `json:"word_count"`
	SentenceCount     int         `json:"sentence_count"`
	UniqueWords       int         `json:"unique_words"`
	VocabularySize    int         `json:"vocabulary_size"`
	AvgWordLength     float64     `json:"avg_word_length"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	MostCommonWords   []WordCount `json:"most_common_words"`
}

// Collect consumes a sentence source and aggregates token statistics.
// Word counts cover normalized tokens only, so stopwords never appear in
// the common-words list.
func Collect(src domain.Source) (*Statistics, error) {
	counts := make(map[string]int)
	var sentences, words, runes int

	for {
		sent, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		sentences++
		for _, tok := range sent.Tokens {
			counts[tok]++
			words++
			runes += len([]rune(tok))
		}
	}

	s := &Statistics{
		WordCount:       words,
		SentenceCount:   sentences,
		UniqueWords:     len(counts),
		VocabularySize:  len(counts),
		MostCommonWords: mostCommon(counts),
	}
	if words > 0 {
		s.AvgWordLength = round2(float64(runes) / float64(words))
	}
	if sentences > 0 {
		s.AvgSentenceLength = round2(float64(words) / float64(sentences))
	}
	return s, nil
}

// mostCommon orders by count descending, then word ascending, so the
// report is deterministic.
func mostCommon(counts map[string]int) []WordCount {
	all := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		all = append(all, WordCount{Word: w, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Word < all[j].Word
	})
	if len(all) > topWords {
		all = all[:topWords]
	}
	return all
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
