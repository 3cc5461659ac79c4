package preview

import (
	"sort"

	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/util"
)

// Row is one pitch lane of a track, highest pitch first when listed by Rows.
type Row struct {
	Pitch int
	Name  string
	// Cells[i] is true when a note covers cell i.
	Cells []bool
}

// Rows lays a track's notes out as pitch lanes CellCount cells wide. Tails
// past CellCount are clipped.
func Rows(track model.TrackRecord) []Row {
	byPitch := make(map[int]*Row)
	for _, n := range track.Notes {
		r, ok := byPitch[n.Pitch]
		if !ok {
			r = &Row{Pitch: n.Pitch, Name: n.Name, Cells: make([]bool, track.CellCount)}
			byPitch[n.Pitch] = r
		}
		start := util.Max(n.Seq, 0)
		end := util.Min(n.Seq+n.Len, track.CellCount)
		for i := start; i < end; i++ {
			r.Cells[i] = true
		}
	}

	res := make([]Row, 0, len(byPitch))
	for _, r := range byPitch {
		res = append(res, *r)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Pitch > res[j].Pitch
	})
	return res
}
