package region

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/internal/options"
	"github.com/arloliu/jismesh/mesh"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultMaxCells is the largest grid an Enumerator computes unless WithMaxCells says otherwise.
const DefaultMaxCells = 4_000_000

// Enumerator lists the mesh codes of every cell intersecting a viewport.
//
// An Enumerator is safe for concurrent use once constructed.
type Enumerator struct {
	backend  Backend
	fallback Backend
	logger   *zap.Logger
	metrics  *enumeratorMetrics
	maxCells int

	useParallel  bool
	parallelOpts []ParallelOption
	registerer   prometheus.Registerer
}

// NewEnumerator creates an enumerator.
func NewEnumerator(opts ...Option) (*Enumerator, error) {
	e := &Enumerator{
		backend:  SequentialBackend{},
		fallback: SequentialBackend{},
		logger:   zap.NewNop(),
		maxCells: DefaultMaxCells,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if e.registerer != nil {
		m, err := newEnumeratorMetrics(e.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		e.metrics = m
	}

	if e.useParallel {
		pb, err := NewParallelBackend(e.parallelOpts...)
		switch {
		case errors.Is(err, errs.ErrBackendUnavailable):
			e.logger.Warn("parallel backend unavailable, using sequential enumeration", zap.Error(err))
		case err != nil:
			return nil, err
		default:
			e.backend = pb
		}
	}

	return e, nil
}

// Backend returns the name of the backend the enumerator runs first.
func (e *Enumerator) Backend() string {
	return e.backend.Name()
}

// Grid returns the grid the enumerator would compute for v at level.
func (e *Enumerator) Grid(v Viewport, level mesh.Level) (GridDescriptor, error) {
	grid, err := NewGrid(v, level)
	if err != nil {
		return GridDescriptor{}, err
	}
	if grid.Cells() > e.maxCells {
		return GridDescriptor{}, fmt.Errorf("%w: %d x %d grid at %s exceeds %d cells",
			errs.ErrTooManyCells, grid.Width, grid.Height, level, e.maxCells)
	}

	return grid, nil
}

// Codes returns the numeric codes of the cells covering v, in row-major order from the
// south-west cell.
func (e *Enumerator) Codes(v Viewport, level mesh.Level) ([]int64, error) {
	grid, err := e.Grid(v, level)
	if err != nil {
		return nil, err
	}

	out := make([]int64, grid.Cells())
	start := time.Now()

	backend := e.backend
	if err := backend.Compute(grid, out); err != nil {
		if backend.Name() == e.fallback.Name() {
			return nil, fmt.Errorf("compute %s grid: %w", backend.Name(), err)
		}

		e.logger.Warn("enumeration backend failed, retrying sequentially",
			zap.String("backend", backend.Name()),
			zap.Error(err),
		)
		e.metrics.fallback(backend.Name())

		backend = e.fallback
		if err := backend.Compute(grid, out); err != nil {
			return nil, fmt.Errorf("compute %s grid: %w", backend.Name(), err)
		}
	}

	e.metrics.observe(backend.Name(), level, len(out), time.Since(start))
	e.logger.Debug("enumerated mesh codes",
		zap.Stringer("level", level),
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.String("backend", backend.Name()),
	)

	return out, nil
}

// Generate returns the mesh codes of the cells covering v, formatted to the level's code length.
func (e *Enumerator) Generate(v Viewport, level mesh.Level) ([]string, error) {
	codes, err := e.Codes(v, level)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = mesh.Format(c, level)
	}

	return out, nil
}
