package region

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/mesh"
)

func computeWith(t *testing.T, b Backend, grid GridDescriptor) []int64 {
	t.Helper()

	out := make([]int64, grid.Cells())
	require.NoError(t, b.Compute(grid, out))

	return out
}

func TestSequentialBackend_RowMajorOrder(t *testing.T) {
	grid, err := NewGrid(testViewports[0], mesh.Level3)
	require.NoError(t, err)

	out := computeWith(t, SequentialBackend{}, grid)
	for j := range grid.Height {
		for i := range grid.Width {
			require.Equal(t, grid.CellCode(i, j), out[j*grid.Width+i])
		}
	}

	require.Equal(t, "52343745", mesh.Format(out[0], mesh.Level3))
	require.Equal(t, "52353044", mesh.Format(out[grid.Width-1], mesh.Level3))
	require.Equal(t, "52354054", mesh.Format(out[len(out)-1], mesh.Level3))
}

func TestSequentialBackend_OutputLength(t *testing.T) {
	grid, err := NewGrid(testViewports[0], mesh.Level2)
	require.NoError(t, err)

	require.Error(t, SequentialBackend{}.Compute(grid, make([]int64, grid.Cells()-1)))
	require.Error(t, SequentialBackend{}.Compute(grid, make([]int64, grid.Cells()+1)))
}

func TestParallelBackend_MatchesSequential(t *testing.T) {
	backends := map[string][]ParallelOption{
		"default":       nil,
		"two workers":   {WithWorkers(2)},
		"one-row chunk": {WithWorkers(4), WithChunkRows(1)},
		"large chunks":  {WithWorkers(3), WithChunkRows(1000)},
	}

	for name, opts := range backends {
		t.Run(name, func(t *testing.T) {
			opts = append([]ParallelOption{WithWorkers(max(2, runtime.GOMAXPROCS(0)))}, opts...)
			pb, err := NewParallelBackend(opts...)
			require.NoError(t, err)

			for _, v := range testViewports {
				for _, level := range mesh.Levels() {
					grid, err := NewGrid(v, level)
					require.NoError(t, err)

					require.Equal(t, computeWith(t, SequentialBackend{}, grid), computeWith(t, pb, grid),
						"viewport %+v at %s", v, level)
				}
			}
		})
	}
}

func TestParallelBackend_OutputLength(t *testing.T) {
	pb, err := NewParallelBackend(WithWorkers(2))
	require.NoError(t, err)

	grid, err := NewGrid(testViewports[0], mesh.Level2)
	require.NoError(t, err)

	require.Error(t, pb.Compute(grid, make([]int64, 1)))
}

func TestNewParallelBackend(t *testing.T) {
	t.Run("workers", func(t *testing.T) {
		pb, err := NewParallelBackend(WithWorkers(6))
		require.NoError(t, err)
		require.Equal(t, 6, pb.Workers())
		require.Equal(t, "parallel", pb.Name())
	})

	t.Run("single worker is unavailable", func(t *testing.T) {
		pb, err := NewParallelBackend(WithWorkers(1))
		require.ErrorIs(t, err, errs.ErrBackendUnavailable)
		require.Nil(t, pb)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewParallelBackend(WithWorkers(0))
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrBackendUnavailable)

		_, err = NewParallelBackend(WithWorkers(2), WithChunkRows(-1))
		require.Error(t, err)
	})
}

func TestParallelBackend_ChunkSize(t *testing.T) {
	pb := &ParallelBackend{workers: 4}
	require.Equal(t, 1, pb.chunkSize(1))
	require.Equal(t, 1, pb.chunkSize(16))
	require.Equal(t, 2, pb.chunkSize(17))
	require.Equal(t, 7, pb.chunkSize(100))

	pb.chunkRows = 10
	require.Equal(t, 10, pb.chunkSize(100))
}

func BenchmarkBackend(b *testing.B) {
	grid, err := NewGrid(NewViewport(35.6586, 139.7454, 0.5, 0.5), mesh.Level6)
	require.NoError(b, err)

	pb, err := NewParallelBackend(WithWorkers(max(2, runtime.GOMAXPROCS(0))))
	require.NoError(b, err)

	out := make([]int64, grid.Cells())
	for _, backend := range []Backend{SequentialBackend{}, pb} {
		b.Run(backend.Name(), func(b *testing.B) {
			for b.Loop() {
				_ = backend.Compute(grid, out)
			}
		})
	}
}
