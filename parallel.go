package hankel

import (
	"context"
	"fmt"

	"github.com/tphakala/go-hankel/logging"
	"golang.org/x/sync/errgroup"
)

// block is a half-open range [start, end) of output indices.
type block struct {
	start, end int
}

func (b block) len() int {
	return b.end - b.start
}

// partition splits [0, n) into workers contiguous, non-overlapping blocks.
// Every block has n/workers indices except the last, which also absorbs
// the n%workers remainder and ends exactly at n. When n < workers the
// leading blocks are empty.
func partition(n, workers int) []block {
	workers = max(workers, minWorkers)
	size := n / workers

	blocks := make([]block, workers)
	for w := range blocks {
		start := w * size
		end := start + size
		if w == workers-1 {
			end = n
		}
		blocks[w] = block{start: start, end: end}
	}

	return blocks
}

// evaluateParallel computes every output sample by handing one contiguous
// block to each worker. Workers share only read-only coefficients and write
// private buffers, which are concatenated in block order. The first failing
// block cancels the rest and no partial output is returned.
func (c *coefficients) evaluateParallel(ctx context.Context, workers int, log logging.Logger) ([]complex128, error) {
	// No point in workers that would only get empty blocks
	workers = min(max(workers, minWorkers), c.n)
	if workers == 1 {
		log.Debug("single worker, evaluating serially")
		return c.evaluateSerial(ctx)
	}

	blocks := partition(c.n, workers)
	results := make([][]complex128, len(blocks))

	log.Debug("dispatching blocks", logging.Fields{
		"workers":    workers,
		"block_size": blocks[0].len(),
		"last_block": blocks[len(blocks)-1].len(),
	})

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range blocks {
		g.Go(func() error {
			local := make([]complex128, b.len())
			if err := c.evaluateRange(gctx, b.start, b.end, local); err != nil {
				return fmt.Errorf("block %d [%d, %d): %w", i, b.start, b.end, err)
			}
			results[i] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Debug("transform aborted", logging.Fields{"error": err.Error()})
		return nil, err
	}

	out := make([]complex128, 0, c.n)
	for _, local := range results {
		out = append(out, local...)
	}

	return out, nil
}
