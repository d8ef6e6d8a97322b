package pipeline

import (
	"errors"
	"fmt"
	"io"

	"docsum/internal/domain"
)

// MinBatch is the floor on batch size. Small requests still dispatch
// batches large enough to amortize fan-out overhead.
const MinBatch = 100

// batchSize scales the batch with the requested summary length, with
// the MinBatch floor.
func batchSize(numSentences, minBatch int) int {
	if minBatch <= 0 {
		minBatch = MinBatch
	}
	if n := 2 * numSentences; n > minBatch {
		return n
	}
	return minBatch
}

// batcher groups the sentence stream into contiguous, document-ordered
// windows. Only one window of raw sentences is held at a time.
type batcher struct {
	src     domain.Source
	size    int
	drained bool
}

func newBatcher(src domain.Source, size int) *batcher {
	return &batcher{src: src, size: size}
}

// next pulls up to one full batch from the source. It returns a nil
// batch once the source is exhausted; the final batch may be short.
func (b *batcher) next() ([]domain.Sentence, error) {
	if b.drained {
		return nil, nil
	}
	batch := make([]domain.Sentence, 0, b.size)
	for len(batch) < b.size {
		sent, err := b.src.Next()
		if errors.Is(err, io.EOF) {
			b.drained = true
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInput, err)
		}
		batch = append(batch, sent)
	}
	if len(batch) == 0 {
		return nil, nil
	}
	return batch, nil
}
