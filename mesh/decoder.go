package mesh

import "strconv"

// Decode returns the bounding box of the cell identified by code.
//
// Decode is lenient: a digit group that does not parse counts as 0 and a quadrant position
// holding anything other than 1-4 applies no offset. Strict validation happens in
// jismesh.ToMeshBounds.
func Decode(code string) BoundingBox {
	latSouth := float64(parseGroup(code, 0, 2)) / 1.5
	lonWest := lonOrigin + float64(parseGroup(code, 2, 2))
	cellLat, cellLon := baseLat, baseLon

	if len(code) >= 6 {
		latSouth += float64(parseGroup(code, 4, 1)) * (cellLat / 8.0)
		lonWest += float64(parseGroup(code, 5, 1)) * (cellLon / 8.0)
		cellLat /= 8.0
		cellLon /= 8.0
	}

	if len(code) >= 8 {
		latSouth += float64(parseGroup(code, 6, 1)) * (cellLat / 10.0)
		lonWest += float64(parseGroup(code, 7, 1)) * (cellLon / 10.0)
		cellLat /= 10.0
		cellLon /= 10.0
	}

	for i := 8; i < len(code); i++ {
		switch code[i] {
		case '2':
			lonWest += cellLon / 2.0
		case '3':
			latSouth += cellLat / 2.0
		case '4':
			latSouth += cellLat / 2.0
			lonWest += cellLon / 2.0
		}
		cellLat /= 2.0
		cellLon /= 2.0
	}

	latNorth := latSouth + cellLat
	lonEast := lonWest + cellLon

	return BoundingBox{
		South: latSouth,
		West:  lonWest,
		North: latNorth,
		East:  lonEast,
		Center: Coordinate{
			Lat: (latSouth + latNorth) / 2.0,
			Lon: (lonWest + lonEast) / 2.0,
		},
	}
}

// parseGroup parses up to n characters of code starting at start, returning 0 when
// the group is missing or not a number.
func parseGroup(code string, start, n int) int {
	if start >= len(code) {
		return 0
	}
	end := min(start+n, len(code))

	v, err := strconv.Atoi(code[start:end])
	if err != nil {
		return 0
	}

	return v
}
