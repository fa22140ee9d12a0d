package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jismesh/errs"
)

func TestViewport_Bounds(t *testing.T) {
	v := NewViewport(35.0, 135.0, 0.5, 1.0)
	south, west, north, east := v.Bounds()

	require.InDelta(t, 34.75, south, 1e-12)
	require.InDelta(t, 134.5, west, 1e-12)
	require.InDelta(t, 35.25, north, 1e-12)
	require.InDelta(t, 135.5, east, 1e-12)
}

func TestViewportFromBounds(t *testing.T) {
	v := ViewportFromBounds(34.0, 135.0, 36.0, 139.0)

	require.InDelta(t, 35.0, v.Center.Lat, 1e-12)
	require.InDelta(t, 137.0, v.Center.Lon, 1e-12)
	require.InDelta(t, 2.0, v.LatSpan, 1e-12)
	require.InDelta(t, 4.0, v.LonSpan, 1e-12)

	south, west, north, east := v.Bounds()
	require.InDelta(t, 34.0, south, 1e-12)
	require.InDelta(t, 135.0, west, 1e-12)
	require.InDelta(t, 36.0, north, 1e-12)
	require.InDelta(t, 139.0, east, 1e-12)
}

func TestViewport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		v       Viewport
		wantErr bool
	}{
		{name: "valid", v: NewViewport(35.0, 135.0, 0.1, 0.1)},
		{name: "center outside geographic range", v: NewViewport(95.0, 200.0, 0.1, 0.1)},
		{name: "zero latitude span", v: NewViewport(35.0, 135.0, 0, 0.1), wantErr: true},
		{name: "negative longitude span", v: NewViewport(35.0, 135.0, 0.1, -1), wantErr: true},
		{name: "NaN span", v: NewViewport(35.0, 135.0, math.NaN(), 0.1), wantErr: true},
		{name: "infinite span", v: NewViewport(35.0, 135.0, 0.1, math.Inf(1)), wantErr: true},
		{name: "NaN center", v: NewViewport(math.NaN(), 135.0, 0.1, 0.1), wantErr: true},
		{name: "infinite center", v: NewViewport(35.0, math.Inf(-1), 0.1, 0.1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidViewport)
				return
			}
			require.NoError(t, err)
		})
	}
}
