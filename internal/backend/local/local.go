package local

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"docsum/internal/domain"
	"docsum/internal/vectorize"
)

// Pool vectorizes batches on a bounded pool of in-process workers.
// Parallelism is capped at the host CPU count; every sentence of the
// batch is an independent unit of work and results land in their input
// slots, so output order matches input order regardless of completion
// order.
type Pool struct {
	workers int
}

// NewPool creates a local pool. workers <= 0 selects runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Name returns the backend identifier.
func (p *Pool) Name() string { return "local" }

// Ping always succeeds; the process itself is the worker pool.
func (p *Pool) Ping(ctx context.Context) error { return nil }

// Vectorize fans the batch out across the pool and gathers all vectors
// before returning. A cancelled context abandons the batch without
// returning partial results.
func (p *Pool) Vectorize(ctx context.Context, vocab map[string]int, batch []domain.Sentence) ([]domain.Vector, error) {
	out := make([]domain.Vector, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, sent := range batch {
		i, sent := i, sent
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = vectorize.Count(sent.Tokens, vocab)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBatchFailed, err)
	}
	return out, nil
}
