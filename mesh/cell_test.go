package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b int64
		q, r int64
	}{
		{0, 8, 0, 0},
		{7, 8, 0, 7},
		{8, 8, 1, 0},
		{17, 8, 2, 1},
		{-1, 8, -1, 7},
		{-8, 8, -1, 0},
		{-9, 8, -2, 7},
	}
	for _, tt := range tests {
		q, r := floorDivMod(tt.a, tt.b)
		assert.Equal(t, tt.q, q, "%d / %d", tt.a, tt.b)
		assert.Equal(t, tt.r, r, "%d %% %d", tt.a, tt.b)
	}
}

func TestCellDigits_KnownCell(t *testing.T) {
	// Tokyo Tower sits in 53393599212; its level-6 lattice indices follow from the digits.
	n := Divisions(Level6)
	y := 53*n + 3*(n/8) + 9*(n/80)     // quadrants 2,1,2: lat bits 0,0,0
	x := 39*n + 5*(n/8) + 9*(n/80) + 5 // lon bits 1,0,1

	assert.Equal(t, int64(53393599212), CellCode(y, x, Level6))
	assert.Equal(t, "53393599212", CellDigits(y, x, Level6).String(Level6))
}

func TestCellDigits_InvalidLevel(t *testing.T) {
	assert.Equal(t, Digits{}, CellDigits(10, 10, Level(0)))
	assert.Zero(t, CellCode(10, 10, Level(7)))
}

// TestCellDigits_MatchesEncoder checks the integer closed form against the floating-point
// encoder evaluated at each cell's center.
func TestCellDigits_MatchesEncoder(t *testing.T) {
	for _, l := range Levels() {
		t.Run(l.String(), func(t *testing.T) {
			n := Divisions(l)
			y0, ySpan := 36*n, 33*n // latitude 24..46
			x0, xSpan := 22*n, 32*n // longitude 122..154

			for k := int64(0); k < 300; k++ {
				y := y0 + (k*7919)%ySpan
				for m := int64(0); m < 60; m++ {
					x := x0 + (m*104729)%xSpan
					c := CellCenter(y, x, l)
					require.Equal(t, EncodeDigits(c.Lat, c.Lon, l), CellDigits(y, x, l), "y=%d x=%d", y, x)
					require.Equal(t, Encode(c.Lat, c.Lon, l), Format(CellCode(y, x, l), l), "y=%d x=%d", y, x)
				}
			}
		})
	}
}

func TestCellDigits_MatchesEncoderOutsideDomain(t *testing.T) {
	for _, l := range Levels() {
		n := Divisions(l)
		stride := max(int64(1), n/16)
		for y := -3 * n; y < 2*n; y += stride {
			for x := -3 * n; x < 2*n; x += stride {
				c := CellCenter(y, x, l)
				require.Equal(t, EncodeDigits(c.Lat, c.Lon, l), CellDigits(y, x, l), "%s y=%d x=%d", l, y, x)
			}
		}
	}
}

func TestCellCenter_DecodesToSameCell(t *testing.T) {
	for _, l := range Levels() {
		n := Divisions(l)
		y, x := 53*n+n/3, 39*n+n/5
		c := CellCenter(y, x, l)
		box := Decode(Format(CellCode(y, x, l), l))

		assert.InDelta(t, box.Center.Lat, c.Lat, 1e-9, l.String())
		assert.InDelta(t, box.Center.Lon, c.Lon, 1e-9, l.String())
	}
}

func BenchmarkCellCode(b *testing.B) {
	n := Divisions(Level6)
	for b.Loop() {
		_ = CellCode(53*n+17, 39*n+311, Level6)
	}
}
