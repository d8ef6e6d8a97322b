package pipeline

import (
	"context"
	"fmt"
	"time"

	"docsum/internal/domain"
	"docsum/internal/vectorize"
)

// Options are the per-request tuning knobs of a summarization run.
type Options struct {
	// NumSentences is the requested summary length. Must be positive;
	// clamped to the number of available sentences.
	NumSentences int
	// EarlyTerminationFactor stops analysis once
	// factor * NumSentences sentences have been folded. Must be >= 1;
	// 1.0 is the extreme low-latency setting that looks at exactly as
	// many sentences as will be returned.
	EarlyTerminationFactor float64
	// MinBatch overrides the batch-size floor. Zero selects MinBatch.
	MinBatch int
}

// DefaultEarlyTerminationFactor matches the server default.
const DefaultEarlyTerminationFactor = 2.0

// Timings records wall time per pipeline stage.
type Timings struct {
	Gather    time.Duration
	Vectorize time.Duration
	Score     time.Duration
	Total     time.Duration
}

// Result is the outcome of one run.
type Result struct {
	Summary            []string
	SentencesProcessed int
	Method             string
	Timings            Timings
}

// Run executes the incremental, batched, early-terminating TF-IDF
// pipeline over the sentence source. Batches are pulled in document
// order; each batch grows the vocabulary in a single-threaded pre-pass,
// is vectorized in parallel on the backend, and is folded into the
// accumulator before the termination policy is consulted. All state is
// owned by this call; nothing is shared across concurrent runs.
//
// Either a full ranked-and-ordered summary is returned or the run fails;
// partial summaries are never produced. Cancellation is honored at batch
// boundaries and in-flight work for the current batch is abandoned
// unfolded.
func Run(ctx context.Context, src domain.Source, backend domain.Backend, opts Options) (*Result, error) {
	if opts.NumSentences <= 0 {
		return nil, fmt.Errorf("%w: num_sentences must be positive, got %d", domain.ErrInvalidRequest, opts.NumSentences)
	}
	factor := opts.EarlyTerminationFactor
	if factor == 0 {
		factor = DefaultEarlyTerminationFactor
	}
	if factor < 1 {
		return nil, fmt.Errorf("%w: early_termination_factor must be >= 1, got %g", domain.ErrInvalidRequest, factor)
	}

	start := time.Now()
	var timings Timings

	batches := newBatcher(src, batchSize(opts.NumSentences, opts.MinBatch))
	index := vectorize.NewIndex()
	acc := newAccumulator()
	threshold := factor * float64(opts.NumSentences)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stage := time.Now()
		batch, err := batches.next()
		timings.Gather += time.Since(stage)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			break
		}

		// Vocabulary mutation is serialized here, before fan-out, so
		// workers see a consistent read-only column mapping.
		index.Grow(batch)

		stage = time.Now()
		vecs, err := backend.Vectorize(ctx, index.Mapping(), batch)
		timings.Vectorize += time.Since(stage)
		if err != nil {
			return nil, err
		}

		acc.fold(batch, vecs, index.Size())

		if float64(acc.len()) >= threshold {
			break
		}
	}

	if acc.len() == 0 {
		return nil, fmt.Errorf("%w: no usable sentences", domain.ErrInput)
	}

	stage := time.Now()
	picked := selectTop(acc.scores(), opts.NumSentences)
	summary := make([]string, len(picked))
	for i, row := range picked {
		summary[i] = acc.sentences[row].Text
	}
	timings.Score = time.Since(stage)
	timings.Total = time.Since(start)

	return &Result{
		Summary:            summary,
		SentencesProcessed: acc.len(),
		Method:             backend.Name(),
		Timings:            timings,
	}, nil
}
