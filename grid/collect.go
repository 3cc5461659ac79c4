package grid

import (
	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/util"
)

// CollectNotes quantizes a track's notes in authoring order. maxSeq is the
// largest start cell, maxEnd the largest seq+len.
func CollectNotes(track model.RawTrack, ppq int) (notes []model.QuantizedNote, maxSeq int, maxEnd int) {
	notes = make([]model.QuantizedNote, 0, len(track.Notes))
	for _, n := range track.Notes {
		seq := CellFromTicks(n.Ticks, ppq)
		length := LengthFromTicks(n.DurationTicks, ppq)
		notes = append(notes, model.QuantizedNote{
			Pitch:    n.Pitch,
			Seq:      seq,
			Len:      length,
			Name:     n.Name,
			Time:     n.Ticks,
			Duration: n.DurationTicks,
		})
		maxSeq = util.Max(maxSeq, seq)
		maxEnd = util.Max(maxEnd, seq+length)
	}
	return notes, maxSeq, maxEnd
}
