package galaxy

// classifyZone maps a sector id to its zone from the configured density
// bands: band 1 is core, band 2 is corridor, and band 3 is split evenly
// between border (lower ids) and frontier (upper ids). Purely positional;
// computed once per sector and cached.
func classifyZone(id int, bands []DensityBand) Zone {
	switch {
	case bands[0].contains(id):
		return ZoneCore
	case bands[1].contains(id):
		return ZoneCorridor
	}
	outer := bands[2]
	borderEnd := outer.From + (outer.size()+1)/2 - 1
	if id <= borderEnd {
		return ZoneBorder
	}
	return ZoneFrontier
}

// bandIndex returns which density band an id falls in.
func bandIndex(id int, bands []DensityBand) int {
	for i, b := range bands {
		if b.contains(id) {
			return i
		}
	}
	return -1
}
