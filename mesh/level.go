package mesh

import (
	"strconv"
	"strings"
)

// Level is a JIS X 0410 mesh precision tier, Level1 (coarsest, ~80km) through Level6 (~125m).
type Level uint8

const (
	Level1 Level = iota + 1 // primary mesh, 40' x 1°
	Level2                  // secondary mesh, 5' x 7'30"
	Level3                  // standard (third) mesh, 30" x 45"
	Level4                  // half mesh
	Level5                  // quarter mesh
	Level6                  // eighth mesh
)

// Base cell size of a level-1 mesh in degrees.
const (
	baseLat = 2.0 / 3.0
	baseLon = 1.0

	// lonOrigin is the longitude subtracted before taking the primary longitude digits.
	lonOrigin = 100.0
)

var allLevels = []Level{Level1, Level2, Level3, Level4, Level5, Level6}

// Levels returns every mesh level from coarsest to finest.
func Levels() []Level {
	out := make([]Level, len(allLevels))
	copy(out, allLevels)

	return out
}

// Valid reports whether l is one of Level1..Level6.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level6
}

func (l Level) String() string {
	if !l.Valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}

	return "Level" + strconv.Itoa(int(l))
}

// StepSize returns the latitude and longitude span of one cell at the given level, in degrees.
//
// The values are derived by the same chain of divisions for every caller so that the encoder,
// decoder and enumeration backends agree bit for bit. An invalid level yields (0, 0).
func StepSize(level Level) (float64, float64) {
	switch level {
	case Level1:
		return baseLat, baseLon
	case Level2:
		return baseLat / 8.0, baseLon / 8.0
	case Level3:
		return baseLat / 8.0 / 10.0, baseLon / 8.0 / 10.0
	case Level4:
		return baseLat / 8.0 / 10.0 / 2.0, baseLon / 8.0 / 10.0 / 2.0
	case Level5:
		return baseLat / 8.0 / 10.0 / 4.0, baseLon / 8.0 / 10.0 / 4.0
	case Level6:
		return baseLat / 8.0 / 10.0 / 8.0, baseLon / 8.0 / 10.0 / 8.0
	default:
		return 0, 0
	}
}

// CodeLength returns the number of digits in a mesh code of the given level, or 0 for an invalid level.
func CodeLength(level Level) int {
	switch level {
	case Level1:
		return 4
	case Level2:
		return 6
	case Level3:
		return 8
	case Level4:
		return 9
	case Level5:
		return 10
	case Level6:
		return 11
	default:
		return 0
	}
}

// Divisions returns how many cells of the given level span one level-1 cell along each axis.
func Divisions(level Level) int64 {
	switch level {
	case Level1:
		return 1
	case Level2:
		return 8
	case Level3:
		return 80
	case Level4:
		return 160
	case Level5:
		return 320
	case Level6:
		return 640
	default:
		return 0
	}
}

// ParseLevel returns the level whose codes have the length of code.
func ParseLevel(code string) (Level, bool) {
	for _, l := range allLevels {
		if CodeLength(l) == len(code) {
			return l, true
		}
	}

	return 0, false
}

// Format renders a numeric mesh code, left-padding it with zeros to CodeLength(level).
//
// A representation that is already at least CodeLength(level) characters long is returned
// unchanged; Format never truncates.
func Format(code int64, level Level) string {
	raw := strconv.FormatInt(code, 10)
	n := CodeLength(level)
	if len(raw) >= n {
		return raw
	}

	return strings.Repeat("0", n-len(raw)) + raw
}
