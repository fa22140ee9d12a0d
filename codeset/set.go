package codeset

import (
	"slices"
	"strconv"

	"github.com/arloliu/jismesh/mesh"
)

// Set is a decoded code set: distinct numeric mesh codes of one level in ascending order.
type Set struct {
	Level mesh.Level
	Codes []int64
}

// Len returns the number of codes in the set.
func (s *Set) Len() int {
	return len(s.Codes)
}

// Strings returns the codes formatted to the set's code length.
func (s *Set) Strings() []string {
	out := make([]string, len(s.Codes))
	for i, c := range s.Codes {
		out[i] = mesh.Format(c, s.Level)
	}

	return out
}

// Contains reports whether the mesh code string is in the set. Codes of another level never are.
func (s *Set) Contains(code string) bool {
	if level, ok := mesh.ParseLevel(code); !ok || level != s.Level {
		return false
	}

	n, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return false
	}

	return s.ContainsCode(n)
}

// ContainsCode reports whether the numeric code is in the set.
func (s *Set) ContainsCode(code int64) bool {
	_, found := slices.BinarySearch(s.Codes, code)
	return found
}
