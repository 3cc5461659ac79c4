package model

// RawTimeline is one rendered tune: absolute-tick notes grouped by track.
// PPQ is nil when the source did not carry a usable resolution.
type RawTimeline struct {
	Name   string
	PPQ    *int
	Tracks []RawTrack
}

type Instrument struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Family string `json:"family"`
}

type RawTrack struct {
	Instrument *Instrument
	Name       string
	Channel    int
	Notes      []RawNote
}

type RawNote struct {
	Pitch         int
	Name          string
	Ticks         int
	DurationTicks int
}
