package region

import "fmt"

// Backend computes the mesh codes of every cell of a grid.
//
// Compute must fill out, which has exactly grid.Cells() slots, in row-major order:
// out[j*grid.Width+i] is the code of cell (i, j). Implementations must produce the same
// values as SequentialBackend.
type Backend interface {
	Name() string
	Compute(grid GridDescriptor, out []int64) error
}

// SequentialBackend computes cells one after another on the calling goroutine.
// It is always available and is the fallback for every other backend.
type SequentialBackend struct{}

var _ Backend = SequentialBackend{}

func (SequentialBackend) Name() string { return "sequential" }

func (SequentialBackend) Compute(grid GridDescriptor, out []int64) error {
	if err := checkOutput(grid, out); err != nil {
		return err
	}
	grid.fillRows(out, 0, grid.Height)

	return nil
}

func checkOutput(grid GridDescriptor, out []int64) error {
	if len(out) != grid.Cells() {
		return fmt.Errorf("output has %d slots, grid has %d cells", len(out), grid.Cells())
	}

	return nil
}
