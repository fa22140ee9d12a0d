package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Valid(t *testing.T) {
	for _, l := range Levels() {
		assert.True(t, l.Valid(), l.String())
	}
	assert.False(t, Level(0).Valid())
	assert.False(t, Level(7).Valid())
	assert.Equal(t, "Level3", Level3.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestLevels_ReturnsCopy(t *testing.T) {
	levels := Levels()
	require.Len(t, levels, 6)
	levels[0] = Level6

	assert.Equal(t, Level1, Levels()[0])
}

func TestCodeLength(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Level1, 4},
		{Level2, 6},
		{Level3, 8},
		{Level4, 9},
		{Level5, 10},
		{Level6, 11},
		{Level(0), 0},
		{Level(7), 0},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CodeLength(tt.level))
		})
	}
}

func TestStepSize(t *testing.T) {
	lat, lon := StepSize(Level1)
	assert.Equal(t, 2.0/3.0, lat)
	assert.Equal(t, 1.0, lon)

	lat, lon = StepSize(Level3)
	assert.InDelta(t, 1.0/120.0, lat, 1e-15)
	assert.InDelta(t, 1.0/80.0, lon, 1e-15)

	lat, lon = StepSize(Level6)
	assert.InDelta(t, 1.0/960.0, lat, 1e-15)
	assert.InDelta(t, 1.0/640.0, lon, 1e-15)

	lat, lon = StepSize(Level(8))
	assert.Zero(t, lat)
	assert.Zero(t, lon)
}

func TestStepSize_MatchesDivisions(t *testing.T) {
	for _, l := range Levels() {
		t.Run(l.String(), func(t *testing.T) {
			lat, lon := StepSize(l)
			n := float64(Divisions(l))
			assert.InDelta(t, 2.0/3.0, lat*n, 1e-12)
			assert.InDelta(t, 1.0, lon*n, 1e-12)
		})
	}
}

func TestStepSize_HalvesBelowLevel3(t *testing.T) {
	for _, l := range []Level{Level4, Level5, Level6} {
		lat, lon := StepSize(l)
		parentLat, parentLon := StepSize(l - 1)
		assert.Equal(t, parentLat/2, lat, l.String())
		assert.Equal(t, parentLon/2, lon, l.String())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		code  int64
		level Level
		want  string
	}{
		{"exact length", 5339, Level1, "5339"},
		{"pads level 1", 539, Level1, "0539"},
		{"pads level 3", 3935, Level3, "00003935"},
		{"pads level 6", 933935992, Level6, "00933935992"},
		{"longer than level is not truncated", 53393599, Level1, "53393599"},
		{"zero", 0, Level2, "000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.code, tt.level))
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, ok := ParseLevel(Format(0, l))
		require.True(t, ok)
		assert.Equal(t, l, got)
	}

	_, ok := ParseLevel("12345")
	assert.False(t, ok)
	_, ok = ParseLevel("")
	assert.False(t, ok)
}
