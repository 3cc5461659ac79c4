package grid

import "github.com/jsphweid/beatgrid/constants"

// CellCount rounds maxSeq up past the next bar line, so there is always at
// least one bar of headroom after the last note start.
func CellCount(maxSeq int) int {
	return ((maxSeq + constants.CellsPerBar) / constants.CellsPerBar) * constants.CellsPerBar
}

// CellCountWithTails is CellCount widened to whole bars until every note
// ending at maxEnd (exclusive) fits.
func CellCountWithTails(maxSeq, maxEnd int) int {
	res := CellCount(maxSeq)
	if maxEnd > res {
		res = ((maxEnd + constants.CellsPerBar - 1) / constants.CellsPerBar) * constants.CellsPerBar
	}
	return res
}
