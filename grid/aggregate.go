package grid

import (
	"fmt"

	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/model"
)

type Options struct {
	// MaxPatterns caps the number of emitted tracks. Zero or less means
	// constants.DefaultMaxPatterns.
	MaxPatterns int

	// CoverTails sizes each track so note tails never run past CellCount.
	// Off by default: sizing looks at start cells only and overflowing
	// tails are reported as NoticeTailOverflow.
	CoverTails bool
}

func (o Options) maxPatterns() int {
	if o.MaxPatterns <= 0 {
		return constants.DefaultMaxPatterns
	}
	return o.MaxPatterns
}

// Aggregate converts a timeline into one TrackRecord per non-empty track, in
// input order, up to the configured capacity. It never fails; anything it
// had to paper over is listed in the result's Notices.
func Aggregate(tl model.RawTimeline, opts Options) model.GridResult {
	ppq, ok := NormalizePPQ(tl.PPQ)
	res := model.GridResult{
		Name:    tl.Name,
		PPQ:     ppq,
		Tracks:  []model.TrackRecord{},
		Notices: []model.Notice{},
	}
	if !ok {
		res.Notices = append(res.Notices, model.Notice{
			Kind:    model.NoticeMalformedResolution,
			Track:   -1,
			Message: fmt.Sprintf("resolution missing or unusable, using %d ppq", ppq),
		})
	}

	capacity := opts.maxPatterns()
	var dropped int
	for i, track := range tl.Tracks {
		if len(track.Notes) == 0 {
			res.Notices = append(res.Notices, model.Notice{
				Kind:    model.NoticeEmptyTrack,
				Track:   i,
				Message: fmt.Sprintf("track %d %q has no notes", i, track.Name),
			})
			continue
		}
		if len(res.Tracks) >= capacity {
			dropped++
			continue
		}

		notes, maxSeq, maxEnd := CollectNotes(track, ppq)
		cellCount := CellCount(maxSeq)
		if opts.CoverTails {
			cellCount = CellCountWithTails(maxSeq, maxEnd)
		} else if maxEnd > cellCount {
			res.Notices = append(res.Notices, model.Notice{
				Kind:    model.NoticeTailOverflow,
				Track:   i,
				Message: fmt.Sprintf("notes in track %d end at cell %d, past cell count %d", i, maxEnd, cellCount),
			})
		}

		res.Tracks = append(res.Tracks, model.TrackRecord{
			SourceTrack: i,
			Channel:     track.Channel,
			Instrument:  track.Instrument,
			Name:        track.Name,
			Notes:       notes,
			CellCount:   cellCount,
		})
	}

	if dropped > 0 {
		res.Notices = append(res.Notices, model.Notice{
			Kind:    model.NoticeCapacityExceeded,
			Track:   -1,
			Message: fmt.Sprintf("%d tracks dropped, only %d pattern slots", dropped, capacity),
		})
	}
	return res
}
