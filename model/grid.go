package model

type QuantizedNote struct {
	Pitch int    `json:"pitch"`
	Seq   int    `json:"seq"`
	Len   int    `json:"len"`
	Name  string `json:"name"`

	// unquantized ticks, kept for tracing a cell back to the source
	Time     int `json:"time"`
	Duration int `json:"duration"`
}

type TrackRecord struct {
	SourceTrack int             `json:"sourceTrack"`
	Channel     int             `json:"channel"`
	Instrument  *Instrument     `json:"instrument,omitempty"`
	Name        string          `json:"name"`
	Notes       []QuantizedNote `json:"notes"`
	CellCount   int             `json:"cellCount"`
}

type NoticeKind string

const (
	NoticeMalformedResolution NoticeKind = "malformed_resolution"
	NoticeEmptyTrack          NoticeKind = "empty_track"
	NoticeCapacityExceeded    NoticeKind = "capacity_exceeded"
	NoticeTailOverflow        NoticeKind = "tail_overflow"
)

// Notice records a condition that was recovered from without failing the
// conversion. Track is the source track index, or -1 for timeline-wide notices.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Track   int        `json:"track"`
	Message string     `json:"message"`
}

type GridResult struct {
	Name    string        `json:"name,omitempty"`
	PPQ     int           `json:"ppq"`
	Tracks  []TrackRecord `json:"tracks"`
	Notices []Notice      `json:"notices"`
}

// MaxCellCount is the widest CellCount across all tracks.
func (g GridResult) MaxCellCount() int {
	var res int
	for _, t := range g.Tracks {
		if t.CellCount > res {
			res = t.CellCount
		}
	}
	return res
}
