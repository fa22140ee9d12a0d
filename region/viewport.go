package region

import (
	"fmt"
	"math"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/mesh"
)

// Viewport is a rectangular map region given by its center and angular spans in degrees.
//
// The center is not range checked; a viewport may extend past the antimeridian or the poles
// while it is being panned. Only the spans must be positive.
type Viewport struct {
	Center  mesh.Coordinate
	LatSpan float64
	LonSpan float64
}

// NewViewport returns the viewport centered on (lat, lon) with the given spans.
func NewViewport(lat, lon, latSpan, lonSpan float64) Viewport {
	return Viewport{
		Center:  mesh.Coordinate{Lat: lat, Lon: lon},
		LatSpan: latSpan,
		LonSpan: lonSpan,
	}
}

// ViewportFromBounds returns the viewport covering [south, north] x [west, east].
func ViewportFromBounds(south, west, north, east float64) Viewport {
	return Viewport{
		Center:  mesh.Coordinate{Lat: (south + north) / 2, Lon: (west + east) / 2},
		LatSpan: north - south,
		LonSpan: east - west,
	}
}

// Bounds returns the south, west, north and east edges of the viewport.
func (v Viewport) Bounds() (south, west, north, east float64) {
	south = v.Center.Lat - v.LatSpan/2.0
	north = v.Center.Lat + v.LatSpan/2.0
	west = v.Center.Lon - v.LonSpan/2.0
	east = v.Center.Lon + v.LonSpan/2.0

	return south, west, north, east
}

// Validate reports whether the viewport can be enumerated.
func (v Viewport) Validate() error {
	if !finite(v.Center.Lat) || !finite(v.Center.Lon) {
		return fmt.Errorf("%w: center (%v, %v) is not finite", errs.ErrInvalidViewport, v.Center.Lat, v.Center.Lon)
	}
	if !finite(v.LatSpan) || v.LatSpan <= 0 {
		return fmt.Errorf("%w: latitude span %v must be positive", errs.ErrInvalidViewport, v.LatSpan)
	}
	if !finite(v.LonSpan) || v.LonSpan <= 0 {
		return fmt.Errorf("%w: longitude span %v must be positive", errs.ErrInvalidViewport, v.LonSpan)
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
