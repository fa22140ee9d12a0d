package mesh

import "math"

// Encode returns the mesh code of the cell at the given level that contains (lat, lon).
//
// Encode does not validate its input; see jismesh.ToMeshCode for the checked entry point.
// An invalid level yields an empty string.
func Encode(lat, lon float64, level Level) string {
	return EncodeDigits(lat, lon, level).String(level)
}

// EncodeDigits derives the digit groups of (lat, lon) at the given level.
//
// Points lying exactly on an inner quadrant boundary belong to the north/east quadrant.
func EncodeDigits(lat, lon float64, level Level) Digits {
	var d Digits
	if !level.Valid() {
		return d
	}

	pLat := math.Floor(lat * 1.5)
	pLon := math.Floor(lon - lonOrigin)
	d.PrimaryLat, d.PrimaryLon = int64(pLat), int64(pLon)
	if level == Level1 {
		return d
	}

	latRem := lat - pLat/1.5
	lonRem := lon - math.Floor(lon)

	sLat := math.Floor(latRem / (1.0 / 12.0))
	sLon := math.Floor(lonRem / (1.0 / 8.0))
	d.SecondaryLat, d.SecondaryLon = int64(sLat), int64(sLon)
	if level == Level2 {
		return d
	}

	// The explicit float64 conversions keep the compiler from fusing multiply and
	// subtract into FMA instructions, which would change results on arm64.
	latRem -= float64(sLat * (1.0 / 12.0))
	lonRem -= float64(sLon * (1.0 / 8.0))

	tLat := math.Floor(latRem / (1.0 / 120.0))
	tLon := math.Floor(lonRem / (1.0 / 80.0))
	d.TertiaryLat, d.TertiaryLon = int64(tLat), int64(tLon)
	if level == Level3 {
		return d
	}

	latRem -= float64(tLat * (1.0 / 120.0))
	lonRem -= float64(tLon * (1.0 / 80.0))

	cellLat, cellLon := 1.0/120.0, 1.0/80.0
	for i := 0; i < quadrantCount(level); i++ {
		halfLat, halfLon := cellLat/2.0, cellLon/2.0
		north := latRem >= halfLat
		east := lonRem >= halfLon
		if north {
			latRem -= halfLat
		}
		if east {
			lonRem -= halfLon
		}
		d.Quadrants[i] = quadrant(north, east)
		cellLat, cellLon = halfLat, halfLon
	}

	return d
}
