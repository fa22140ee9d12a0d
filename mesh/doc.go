// Package mesh implements the JIS X 0410 regional mesh code system.
//
// A mesh code identifies a rectangular cell on a latitude/longitude grid. Six nested levels
// are supported:
//
//	Level  Code length  Cell size
//	1      4            40' x 1°          (~80km)
//	2      6            5' x 7'30"        (~10km)
//	3      8            30" x 45"         (~1km)
//	4      9            15" x 22.5"       (~500m)
//	5      10           7.5" x 11.25"     (~250m)
//	6      11           3.75" x 5.625"    (~125m)
//
// Levels 1-3 append decimal digit pairs (latitude index, then longitude index). Levels 4-6
// each append one quadrant digit:
//
//	3 | 4
//	--+--
//	1 | 2
//
// # Encoding and decoding
//
//	code := mesh.Encode(35.6586, 139.7454, mesh.Level3) // "53393599"
//	box := mesh.Decode(code)
//
// # Grid cells
//
// CellDigits and CellCode derive the code of a cell from its integer lattice indices rather
// than from a floating-point coordinate. The region package relies on them so that sequential
// and parallel enumeration produce identical codes; for every cell,
// Encode(CellCenter(y, x, l)) equals Format(CellCode(y, x, l), l).
//
// Everything in this package is pure and safe for concurrent use.
//
// Reference: https://www.stat.go.jp/data/mesh/pdf/gaiyo1.pdf
package mesh
