package grid

import "github.com/jsphweid/beatgrid/constants"

// NormalizePPQ returns the resolution to quantize against. A missing or
// non-positive value falls back to constants.DefaultPPQ and ok is false.
func NormalizePPQ(raw *int) (ppq int, ok bool) {
	if raw == nil || *raw <= 0 {
		return constants.DefaultPPQ, false
	}
	return *raw, true
}

// CellFromTicks returns floor(ticks / ppq * CellsPerBeat) using integer math
// so the result is exact for any input.
func CellFromTicks(ticks, ppq int) int {
	num := int64(ticks) * constants.CellsPerBeat
	den := int64(ppq)
	q := num / den
	if (num%den != 0) && ((num < 0) != (den < 0)) {
		q--
	}
	return int(q)
}

// LengthFromTicks is CellFromTicks with a floor of one cell, so short notes
// stay visible on the grid.
func LengthFromTicks(durationTicks, ppq int) int {
	n := CellFromTicks(durationTicks, ppq)
	if n < 1 {
		return 1
	}
	return n
}
