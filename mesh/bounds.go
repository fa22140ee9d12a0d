package mesh

import "math"

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether c is a finite point within [-90, 90] x [-180, 180].
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// BoundingBox is the extent of one mesh cell.
type BoundingBox struct {
	South  float64
	West   float64
	North  float64
	East   float64
	Center Coordinate
}

func (b BoundingBox) TopLeft() Coordinate     { return Coordinate{Lat: b.North, Lon: b.West} }
func (b BoundingBox) TopRight() Coordinate    { return Coordinate{Lat: b.North, Lon: b.East} }
func (b BoundingBox) BottomLeft() Coordinate  { return Coordinate{Lat: b.South, Lon: b.West} }
func (b BoundingBox) BottomRight() Coordinate { return Coordinate{Lat: b.South, Lon: b.East} }

// Contains reports whether (lat, lon) falls in the cell. South and west edges are inclusive,
// north and east edges exclusive, matching how the encoder assigns boundary points.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.South && lat < b.North && lon >= b.West && lon < b.East
}

// ContainsWithin is Contains with every edge widened by eps.
func (b BoundingBox) ContainsWithin(lat, lon, eps float64) bool {
	return lat >= b.South-eps && lat <= b.North+eps && lon >= b.West-eps && lon <= b.East+eps
}

// Ring returns the cell outline as a closed ring: SW, SE, NE, NW and SW again.
func (b BoundingBox) Ring() []Coordinate {
	sw := b.BottomLeft()

	return []Coordinate{sw, b.BottomRight(), b.TopRight(), b.TopLeft(), sw}
}
