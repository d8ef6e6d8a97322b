package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"docsum/internal/domain"
)

// VectorizeRequest is the payload a coordinator sends to a worker: the
// current vocabulary snapshot plus the token lists of one batch slice.
type VectorizeRequest struct {
	Vocab     map[string]int `json:"vocab"`
	Sentences [][]string     `json:"sentences"`
}

// VectorizeResponse carries one vector per requested sentence, in
// request order.
type VectorizeResponse struct {
	Vectors []domain.Vector `json:"vectors"`
}

// Config configures the cluster backend.
type Config struct {
	// Workers are the base URLs of registered remote workers.
	Workers []string
	// Timeout bounds each worker round trip.
	Timeout time.Duration
}

// Pool distributes batch vectorization over registered remote workers.
// Each batch is cut into one contiguous slice per worker and the slices
// are dispatched concurrently; the gathered vectors are reassembled in
// input order. Any network failure or timeout surfaces as a
// backend-unavailable condition, never as a partial result.
type Pool struct {
	workers []string
	client  *http.Client
}

// New creates a cluster pool. An empty worker list is a configuration
// error: a cluster with zero registered workers is unavailable.
func New(cfg Config) (*Pool, error) {
	if len(cfg.Workers) == 0 {
		return nil, fmt.Errorf("%w: no cluster workers configured", domain.ErrBackendUnavailable)
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	workers := make([]string, len(cfg.Workers))
	for i, w := range cfg.Workers {
		workers[i] = strings.TrimRight(w, "/")
	}
	return &Pool{
		workers: workers,
		client:  &http.Client{Timeout: t},
	}, nil
}

// Name returns the backend identifier.
func (p *Pool) Name() string { return "cluster" }

// Ping verifies every registered worker answers its health endpoint.
func (p *Pool) Ping(ctx context.Context) error {
	for _, w := range p.workers {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, w+"/healthz", nil)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: worker %s unreachable: %v", domain.ErrBackendUnavailable, w, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: worker %s returned %s", domain.ErrBackendUnavailable, w, resp.Status)
		}
	}
	return nil
}

// Vectorize cuts the batch into per-worker slices, dispatches them
// concurrently, and reassembles the vectors in input order. The whole
// batch fails if any slice fails.
func (p *Pool) Vectorize(ctx context.Context, vocab map[string]int, batch []domain.Sentence) ([]domain.Vector, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	out := make([]domain.Vector, len(batch))
	sliceLen := (len(batch) + len(p.workers) - 1) / len(p.workers)

	g, gctx := errgroup.WithContext(ctx)
	worker := 0
	for start := 0; start < len(batch); start += sliceLen {
		end := start + sliceLen
		if end > len(batch) {
			end = len(batch)
		}
		url := p.workers[worker%len(p.workers)]
		worker++
		start, end := start, end
		g.Go(func() error {
			vecs, err := p.dispatch(gctx, url, vocab, batch[start:end])
			if err != nil {
				return err
			}
			copy(out[start:end], vecs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return out, nil
}

func (p *Pool) dispatch(ctx context.Context, workerURL string, vocab map[string]int, slice []domain.Sentence) ([]domain.Vector, error) {
	reqBody := VectorizeRequest{
		Vocab:     vocab,
		Sentences: make([][]string, len(slice)),
	}
	for i, sent := range slice {
		reqBody.Sentences[i] = sent.Tokens
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBatchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, workerURL+"/vectorize", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: worker %s: %v", domain.ErrBackendUnavailable, workerURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: worker %s returned %s", domain.ErrBatchFailed, workerURL, resp.Status)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: worker %s: %v", domain.ErrBackendUnavailable, workerURL, err)
	}
	var out VectorizeResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("%w: worker %s sent malformed response: %v", domain.ErrBatchFailed, workerURL, err)
	}
	if len(out.Vectors) != len(slice) {
		return nil, fmt.Errorf("%w: worker %s returned %d vectors for %d sentences", domain.ErrBatchFailed, workerURL, len(out.Vectors), len(slice))
	}
	return out.Vectors, nil
}
