package mesh

// CellDigits derives the digit groups of the level cell at global lattice indices
// (latIndex, lonIndex).
//
// The lattice is anchored at latitude 0 and longitude 100: the cell with indices (y, x)
// spans latitudes [y*stepLat, (y+1)*stepLat) and longitudes [100+x*stepLon, 100+(x+1)*stepLon).
// Only integer arithmetic is involved, so every enumeration backend gets the same digits.
func CellDigits(latIndex, lonIndex int64, level Level) Digits {
	var d Digits
	n := Divisions(level)
	if n == 0 {
		return d
	}

	var rLat, rLon int64
	d.PrimaryLat, rLat = floorDivMod(latIndex, n)
	d.PrimaryLon, rLon = floorDivMod(lonIndex, n)
	if level == Level1 {
		return d
	}

	sub := n / 8
	d.SecondaryLat, rLat = rLat/sub, rLat%sub
	d.SecondaryLon, rLon = rLon/sub, rLon%sub
	if level == Level2 {
		return d
	}

	sub /= 10
	d.TertiaryLat, rLat = rLat/sub, rLat%sub
	d.TertiaryLon, rLon = rLon/sub, rLon%sub

	// sub is now 2^(level-3); the remainders' bits pick the quadrants, most significant first.
	for i := 0; i < quadrantCount(level); i++ {
		sub /= 2
		north := rLat >= sub
		east := rLon >= sub
		rLat %= sub
		rLon %= sub
		d.Quadrants[i] = quadrant(north, east)
	}

	return d
}

// CellCode returns the numeric mesh code of the cell at global lattice indices (latIndex, lonIndex).
func CellCode(latIndex, lonIndex int64, level Level) int64 {
	return CellDigits(latIndex, lonIndex, level).Int64(level)
}

// CellCenter returns the center of the cell at global lattice indices (latIndex, lonIndex).
func CellCenter(latIndex, lonIndex int64, level Level) Coordinate {
	stepLat, stepLon := StepSize(level)

	return Coordinate{
		Lat: (float64(latIndex) + 0.5) * stepLat,
		Lon: lonOrigin + (float64(lonIndex)+0.5)*stepLon,
	}
}

// floorDivMod returns the floored quotient and the non-negative remainder of a / b for b > 0.
func floorDivMod(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}

	return q, r
}
