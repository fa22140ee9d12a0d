// Package jismesh converts between geographic coordinates and JIS X 0410 regional mesh codes.
//
// The standard mesh divides Japan into nested rectangular cells. A level 1 cell spans 2/3 degree
// of latitude by 1 degree of longitude (about 80km); levels 2 and 3 split it 8x8 and then 10x10,
// and levels 4 to 6 halve the cell in each direction three more times, down to about 125m:
//
//	level  digits  cell size
//	1      4       40' x 1 deg
//	2      6       5' x 7'30"
//	3      8       30" x 45"
//	4      9       15" x 22.5"
//	5      10      7.5" x 11.25"
//	6      11      3.75" x 5.625"
//
// # Basic Usage
//
// Encoding a coordinate:
//
//	code, err := jismesh.ToMeshCode(35.6586, 139.7454, jismesh.Level3) // "53393599"
//
// Decoding a code into its cell:
//
//	box, err := jismesh.ToMeshBounds("53393599")
//	fmt.Println(box.South, box.West, box.North, box.East)
//
// Listing every cell of a map viewport:
//
//	codes, err := jismesh.GenerateMeshCodes(jismesh.NewViewport(35.68, 139.76, 0.1, 0.1), jismesh.Level4)
//
// # Package Structure
//
// This package wraps the lower-level packages with input validation:
//   - mesh: encoding, decoding and per-cell arithmetic
//   - region: viewport enumeration with sequential and parallel backends
//   - codeset: compact binary storage of code sets
//   - cache: Redis-backed caching of enumerations
//
// Use those packages directly for logging, metrics, backend selection or caching.
package jismesh

import (
	"fmt"
	"sync"

	"github.com/arloliu/jismesh/codeset"
	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/mesh"
	"github.com/arloliu/jismesh/region"
)

type (
	Level       = mesh.Level
	Coordinate  = mesh.Coordinate
	BoundingBox = mesh.BoundingBox
	Viewport    = region.Viewport
)

const (
	Level1 = mesh.Level1
	Level2 = mesh.Level2
	Level3 = mesh.Level3
	Level4 = mesh.Level4
	Level5 = mesh.Level5
	Level6 = mesh.Level6
)

// minCodeLength is the length of a level 1 code.
const minCodeLength = 4

// NewViewport returns the viewport centered on (lat, lon) spanning latSpan x lonSpan degrees.
func NewViewport(lat, lon, latSpan, lonSpan float64) Viewport {
	return region.NewViewport(lat, lon, latSpan, lonSpan)
}

// StepSize returns the latitude and longitude extent, in degrees, of a cell at level.
func StepSize(level Level) (float64, float64) {
	return mesh.StepSize(level)
}

// CodeLength returns the number of digits of a mesh code at level.
func CodeLength(level Level) int {
	return mesh.CodeLength(level)
}

// Format zero-pads a numeric mesh code to CodeLength(level) digits. Longer codes are returned
// unchanged.
func Format(code int64, level Level) string {
	return mesh.Format(code, level)
}

// ToMeshCode returns the mesh code of the cell containing (lat, lon) at level.
//
// It fails with errs.ErrInvalidCoordinate when lat is outside [-90, 90] or lon is outside
// [-180, 180], and with errs.ErrInvalidLevel for an unknown level.
func ToMeshCode(lat, lon float64, level Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}
	if !(Coordinate{Lat: lat, Lon: lon}).Valid() {
		return "", fmt.Errorf("%w: (%v, %v)", errs.ErrInvalidCoordinate, lat, lon)
	}

	return mesh.Encode(lat, lon, level), nil
}

// ToMeshBounds returns the cell identified by code.
//
// It fails with errs.ErrInvalidCode when code is shorter than four characters or contains
// anything but ASCII digits.
func ToMeshBounds(code string) (BoundingBox, error) {
	if err := validateCode(code); err != nil {
		return BoundingBox{}, err
	}

	return mesh.Decode(code), nil
}

func validateCode(code string) error {
	if len(code) < minCodeLength {
		return fmt.Errorf("%w: %q is shorter than %d characters", errs.ErrInvalidCode, code, minCodeLength)
	}
	for i := range len(code) {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: %q has a non-digit at offset %d", errs.ErrInvalidCode, code, i)
		}
	}

	return nil
}

var defaultEnumerator = sync.OnceValues(func() (*region.Enumerator, error) {
	return region.NewEnumerator(region.WithParallel())
})

// GenerateMeshCodes returns the codes of every level cell intersecting v, in row-major order
// starting from the south-west cell.
//
// Cells are computed in parallel when the process can run more than one goroutine at a time
// and sequentially otherwise; the result is the same either way.
func GenerateMeshCodes(v Viewport, level Level) ([]string, error) {
	e, err := defaultEnumerator()
	if err != nil {
		return nil, err
	}

	return e.Generate(v, level)
}

// EncodeMeshCodes packs mesh code strings of one level into a compressed code-set blob.
//
// Every code must pass the same checks as ToMeshBounds and have the length of level.
func EncodeMeshCodes(codes []string, level Level, opts ...codeset.Option) ([]byte, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	values := make([]int64, len(codes))
	for i, code := range codes {
		if err := validateCode(code); err != nil {
			return nil, err
		}
		if len(code) != mesh.CodeLength(level) {
			return nil, fmt.Errorf("%w: %q is not a %s code", errs.ErrInvalidCode, code, level)
		}

		var v int64
		for k := range len(code) {
			v = v*10 + int64(code[k]-'0')
		}
		values[i] = v
	}

	return codeset.Encode(level, values, opts...)
}

// DecodeMeshCodes unpacks a blob written by EncodeMeshCodes. The codes come back sorted.
func DecodeMeshCodes(data []byte) ([]string, Level, error) {
	set, err := codeset.Decode(data)
	if err != nil {
		return nil, 0, err
	}

	return set.Strings(), set.Level, nil
}
