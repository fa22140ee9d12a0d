package region

import (
	"fmt"
	"runtime"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/internal/options"
	"golang.org/x/sync/errgroup"
)

// rowsPerWorker is how many row chunks each worker receives when WithChunkRows is not set.
const rowsPerWorker = 4

// ParallelBackend splits a grid into row chunks and computes them concurrently.
//
// Chunks share only the read-only grid descriptor and write disjoint parts of the output,
// so no locking is involved. A ParallelBackend is immutable after construction and may be
// shared by any number of goroutines.
type ParallelBackend struct {
	workers   int
	chunkRows int
}

var _ Backend = (*ParallelBackend)(nil)

// ParallelOption configures a ParallelBackend.
type ParallelOption = options.Option[*ParallelBackend]

// WithWorkers sets the maximum number of concurrently running chunks.
// The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) ParallelOption {
	return options.New(func(b *ParallelBackend) error {
		if n < 1 {
			return fmt.Errorf("workers must be positive, got %d", n)
		}
		b.workers = n

		return nil
	})
}

// WithChunkRows sets how many grid rows make up one work item.
// By default the grid is cut into about four chunks per worker.
func WithChunkRows(n int) ParallelOption {
	return options.New(func(b *ParallelBackend) error {
		if n < 1 {
			return fmt.Errorf("chunk rows must be positive, got %d", n)
		}
		b.chunkRows = n

		return nil
	})
}

// NewParallelBackend creates a parallel backend.
//
// It returns an error wrapping errs.ErrBackendUnavailable when fewer than two workers
// are available, in which case callers should use SequentialBackend.
func NewParallelBackend(opts ...ParallelOption) (*ParallelBackend, error) {
	b := &ParallelBackend{workers: runtime.GOMAXPROCS(0)}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	if b.workers < 2 {
		return nil, fmt.Errorf("%w: parallel execution needs at least 2 workers, have %d", errs.ErrBackendUnavailable, b.workers)
	}

	return b, nil
}

func (b *ParallelBackend) Name() string { return "parallel" }

// Workers returns the concurrency limit of the backend.
func (b *ParallelBackend) Workers() int { return b.workers }

func (b *ParallelBackend) Compute(grid GridDescriptor, out []int64) error {
	if err := checkOutput(grid, out); err != nil {
		return err
	}

	chunk := b.chunkSize(grid.Height)

	var g errgroup.Group
	g.SetLimit(b.workers)
	for from := 0; from < grid.Height; from += chunk {
		to := min(from+chunk, grid.Height)
		g.Go(func() error {
			grid.fillRows(out, from, to)
			return nil
		})
	}

	return g.Wait()
}

func (b *ParallelBackend) chunkSize(height int) int {
	if b.chunkRows > 0 {
		return b.chunkRows
	}

	n := b.workers * rowsPerWorker

	return max(1, (height+n-1)/n)
}
