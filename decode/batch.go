package decode

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the number of documents DecodeAll
// decodes in parallel when the caller doesn't override it.
const DefaultBatchConcurrency = 8

// DecodeAll generalizes Decode to a batch of independent header-magic
// frames — one HTTP session's worth of chunks, say — fanning the work
// out across goroutines bounded by an errgroup.Group and cancelling the
// rest on the first hard error (§6.2's convenience wrapper, applied per
// document): a decode that has not started once ctx is cancelled or
// another decode has failed is skipped. Results preserve the input order;
// if any packet fails, DecodeAll returns a nil slice and the first error.
func DecodeAll(ctx context.Context, packets [][]byte, concurrency int) ([]*Result, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	results := make([]*Result, len(packets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, packet := range packets {
		i, packet := i, packet
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Decode(packet)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
