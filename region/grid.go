package region

import (
	"fmt"
	"math"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/mesh"
)

// maxGridSide bounds either grid dimension before the cell count is computed, so that
// Width*Height cannot overflow.
const maxGridSide = 1 << 24

// maxLatticeIndex is the largest lattice index a float64 origin converts to exactly.
const maxLatticeIndex = 1 << 53

// GridDescriptor is the lattice of level cells laid over a viewport.
//
// OriginLat and OriginLon are the global lattice indices of the south-west cell: lattice
// row y covers latitudes starting at y*StepLat and column x covers longitudes starting at
// 100+x*StepLon. Cell (i, j) of the grid is column OriginLon+i, row OriginLat+j.
type GridDescriptor struct {
	Level     mesh.Level
	OriginLat int64
	OriginLon int64
	StepLat   float64
	StepLon   float64
	Width     int
	Height    int
}

// NewGrid aligns the level lattice to the viewport.
func NewGrid(v Viewport, level mesh.Level) (GridDescriptor, error) {
	if !level.Valid() {
		return GridDescriptor{}, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}
	if err := v.Validate(); err != nil {
		return GridDescriptor{}, err
	}

	south, west, north, east := v.Bounds()
	stepLat, stepLon := mesh.StepSize(level)

	originLon := math.Floor((west - 100.0) / stepLon)
	originLat := math.Floor(south / stepLat)
	startLon := float64(originLon*stepLon) + 100.0
	startLat := originLat * stepLat

	if !(math.Abs(originLat) <= maxLatticeIndex && math.Abs(originLon) <= maxLatticeIndex) {
		return GridDescriptor{}, fmt.Errorf("%w: origin (%g, %g) is beyond the representable lattice at %s",
			errs.ErrInvalidViewport, south, west, level)
	}

	width := math.Floor((east-startLon)/stepLon) + 1
	height := math.Floor((north-startLat)/stepLat) + 1
	// far from the origin the lattice start can round past the far edge
	if !(width >= 1 && height >= 1) {
		return GridDescriptor{}, fmt.Errorf("%w: spans collapse to a %.0f x %.0f grid at %s",
			errs.ErrInvalidViewport, width, height, level)
	}
	if width > maxGridSide || height > maxGridSide {
		return GridDescriptor{}, fmt.Errorf("%w: %.0f x %.0f grid at %s", errs.ErrTooManyCells, width, height, level)
	}

	return GridDescriptor{
		Level:     level,
		OriginLat: int64(originLat),
		OriginLon: int64(originLon),
		StepLat:   stepLat,
		StepLon:   stepLon,
		Width:     int(width),
		Height:    int(height),
	}, nil
}

// StartLat returns the southern edge of the grid.
func (g GridDescriptor) StartLat() float64 {
	return float64(g.OriginLat) * g.StepLat
}

// StartLon returns the western edge of the grid.
func (g GridDescriptor) StartLon() float64 {
	return float64(float64(g.OriginLon)*g.StepLon) + 100.0
}

// Cells returns the number of cells in the grid.
func (g GridDescriptor) Cells() int {
	return g.Width * g.Height
}

// Corner returns the south-west corner of cell (i, j).
//
// The corner lies on a cell edge, so encoding it may land in a neighboring cell. Use Center
// when the point must encode to CellCode(i, j).
func (g GridDescriptor) Corner(i, j int) mesh.Coordinate {
	return mesh.Coordinate{
		Lat: g.StartLat() + float64(j)*g.StepLat,
		Lon: g.StartLon() + float64(i)*g.StepLon,
	}
}

// Center returns the center of cell (i, j), the point whose encoding equals CellCode(i, j).
func (g GridDescriptor) Center(i, j int) mesh.Coordinate {
	return mesh.CellCenter(g.OriginLat+int64(j), g.OriginLon+int64(i), g.Level)
}

// CellCode returns the numeric mesh code of cell (i, j).
func (g GridDescriptor) CellCode(i, j int) int64 {
	return mesh.CellCode(g.OriginLat+int64(j), g.OriginLon+int64(i), g.Level)
}

// fillRows writes the codes of rows [from, to) into out in row-major order.
// Every backend goes through it so the per-cell derivation exists exactly once.
func (g GridDescriptor) fillRows(out []int64, from, to int) {
	for j := from; j < to; j++ {
		row := out[j*g.Width : (j+1)*g.Width]
		for i := range row {
			row[i] = g.CellCode(i, j)
		}
	}
}
