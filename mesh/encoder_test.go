package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample points across the mesh domain: Kyoto prefecture, Tokyo Tower, Sapporo, Naha, Osaka, Fukuoka.
var samplePoints = []Coordinate{
	{Lat: 35.0, Lon: 135.0},
	{Lat: 35.6586, Lon: 139.7454},
	{Lat: 43.0621, Lon: 141.3544},
	{Lat: 26.2124, Lon: 127.6809},
	{Lat: 34.6937, Lon: 135.5023},
	{Lat: 33.5902, Lon: 130.4017},
}

func TestEncode_KnownCodes(t *testing.T) {
	tests := []struct {
		name string
		pt   Coordinate
		want []string // level 1..6
	}{
		{"35N 135E", samplePoints[0], []string{"5235", "523540", "52354000", "523540001", "5235400011", "52354000111"}},
		{"tokyo tower", samplePoints[1], []string{"5339", "533935", "53393599", "533935992", "5339359921", "53393599212"}},
		{"sapporo", samplePoints[2], []string{"6441", "644142", "64414278", "644142781", "6441427814", "64414278143"}},
		{"naha", samplePoints[3], []string{"3927", "392725", "39272554", "392725541", "3927255414", "39272554144"}},
		{"osaka", samplePoints[4], []string{"5235", "523504", "52350430", "523504301", "5235043011", "52350430114"}},
		{"fukuoka", samplePoints[5], []string{"5030", "503033", "50303302", "503033023", "5030330233", "50303302332"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, l := range Levels() {
				assert.Equal(t, tt.want[i], Encode(tt.pt.Lat, tt.pt.Lon, l), l.String())
			}
		})
	}
}

func TestEncode_InvalidLevel(t *testing.T) {
	assert.Empty(t, Encode(35, 135, Level(0)))
	assert.Empty(t, Encode(35, 135, Level(7)))
}

func TestEncode_LengthInvariant(t *testing.T) {
	for i := 0; i < 36; i++ {
		lat := 20.0013 + float64(i)*0.7213
		for j := 0; j < 35; j++ {
			lon := 122.0021 + float64(j)*0.9107
			for _, l := range Levels() {
				code := Encode(lat, lon, l)
				require.Len(t, code, CodeLength(l), "lat=%v lon=%v %s", lat, lon, l)
				require.Equal(t, -1, strings.IndexFunc(code, func(r rune) bool { return r < '0' || r > '9' }), code)
			}
		}
	}
}

func TestEncode_QuadrantDigitsOnly(t *testing.T) {
	for i := 0; i < 700; i++ {
		lat := 30.00071 + float64(i)*0.013713
		code := Encode(lat, 135.00037+float64(i)*0.000917, Level6)
		for _, c := range code[8:] {
			require.Contains(t, "1234", string(c), code)
		}
	}
}

func TestEncode_PrefixRefinement(t *testing.T) {
	for _, pt := range samplePoints {
		prev := Encode(pt.Lat, pt.Lon, Level1)
		for _, l := range Levels()[1:] {
			code := Encode(pt.Lat, pt.Lon, l)
			assert.True(t, strings.HasPrefix(code, prev), "%s is not a prefix of %s", prev, code)
			prev = code
		}
	}
}

func TestEncode_Quadrants(t *testing.T) {
	box := Decode("53393599")
	stepLat, stepLon := StepSize(Level3)

	tests := []struct {
		name         string
		fLat, fLon   float64 // fraction of the level-3 cell
		wantQuadrant uint8
	}{
		{"south west", 0.25, 0.25, 1},
		{"south east", 0.25, 0.75, 2},
		{"north west", 0.75, 0.25, 3},
		{"north east", 0.75, 0.75, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EncodeDigits(box.South+tt.fLat*stepLat, box.West+tt.fLon*stepLon, Level4)
			assert.Equal(t, tt.wantQuadrant, d.Quadrants[0])
		})
	}
}

func TestQuadrant(t *testing.T) {
	assert.Equal(t, uint8(1), quadrant(false, false))
	assert.Equal(t, uint8(2), quadrant(false, true))
	assert.Equal(t, uint8(3), quadrant(true, false))
	assert.Equal(t, uint8(4), quadrant(true, true))
}

func TestEncodeDigits_MatchesString(t *testing.T) {
	for _, pt := range samplePoints {
		for _, l := range Levels() {
			d := EncodeDigits(pt.Lat, pt.Lon, l)
			assert.Equal(t, Encode(pt.Lat, pt.Lon, l), Format(d.Int64(l), l))
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, l := range []Level{Level1, Level3, Level6} {
		b.Run(l.String(), func(b *testing.B) {
			for b.Loop() {
				_ = Encode(35.6586, 139.7454, l)
			}
		})
	}
}
