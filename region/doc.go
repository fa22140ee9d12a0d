// Package region enumerates the mesh codes covering a rectangular viewport.
//
// A viewport and level define a GridDescriptor: the level's cell lattice aligned to the
// viewport's south-west corner, with enough rows and columns to reach its north-east corner.
// Each cell's code is derived directly from its global lattice indices, so a Backend can
// compute any subset of cells independently of the others.
//
// Two backends are provided. SequentialBackend walks the grid on the calling goroutine and is
// always available. ParallelBackend splits the grid into row chunks computed by a bounded
// pool of goroutines; NewParallelBackend fails with errs.ErrBackendUnavailable when the
// process cannot run chunks concurrently.
//
// Enumerator ties the pieces together:
//
//	e, err := region.NewEnumerator(
//		region.WithParallel(region.WithWorkers(8)),
//		region.WithLogger(logger),
//		region.WithMetrics(prometheus.DefaultRegisterer),
//	)
//	if err != nil {
//		return err
//	}
//	codes, err := e.Generate(region.NewViewport(35.68, 139.76, 0.1, 0.1), mesh.Level3)
//
// If the configured backend fails at run time the enumerator logs the failure and recomputes
// the grid sequentially, so Generate only fails for invalid input.
package region
