package mesh

import (
	"fmt"
	"strconv"
)

// Digits holds the digit groups of a mesh code, independent of how they were derived.
//
// The encoder fills it from floating-point residuals and CellDigits fills it from integer
// lattice indices; both render through String and Int64 so the two paths cannot disagree
// on formatting.
type Digits struct {
	PrimaryLat, PrimaryLon     int64 // level 1, two digits each
	SecondaryLat, SecondaryLon int64 // level 2, 0-7
	TertiaryLat, TertiaryLon   int64 // level 3, 0-9
	Quadrants                  [3]uint8
}

// String renders the digits of the given level as a mesh code.
func (d Digits) String(level Level) string {
	if !level.Valid() {
		return ""
	}

	buf := make([]byte, 0, CodeLength(level))
	buf = fmt.Appendf(buf, "%02d%02d", d.PrimaryLat, d.PrimaryLon)
	if level >= Level2 {
		buf = strconv.AppendInt(buf, d.SecondaryLat, 10)
		buf = strconv.AppendInt(buf, d.SecondaryLon, 10)
	}
	if level >= Level3 {
		buf = strconv.AppendInt(buf, d.TertiaryLat, 10)
		buf = strconv.AppendInt(buf, d.TertiaryLon, 10)
	}
	for i := 0; i < quadrantCount(level); i++ {
		buf = append(buf, '0'+d.Quadrants[i])
	}

	return string(buf)
}

// Int64 packs the digits of the given level into the numeric form of the mesh code.
//
// Leading zeros are lost; Format restores them. The packing is only meaningful inside
// the mesh domain where every group is non-negative.
func (d Digits) Int64(level Level) int64 {
	if !level.Valid() {
		return 0
	}

	code := d.PrimaryLat*100 + d.PrimaryLon
	if level >= Level2 {
		code = code*100 + d.SecondaryLat*10 + d.SecondaryLon
	}
	if level >= Level3 {
		code = code*100 + d.TertiaryLat*10 + d.TertiaryLon
	}
	for i := 0; i < quadrantCount(level); i++ {
		code = code*10 + int64(d.Quadrants[i])
	}

	return code
}

// quadrantCount returns how many quadrant digits follow the level-3 code.
func quadrantCount(level Level) int {
	if level <= Level3 || !level.Valid() {
		return 0
	}

	return int(level - Level3)
}

// quadrant maps the north/east halves of a cell to its quadrant digit.
func quadrant(north, east bool) uint8 {
	switch {
	case !north && !east:
		return 1
	case !north && east:
		return 2
	case north && !east:
		return 3
	default:
		return 4
	}
}
