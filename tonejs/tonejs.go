// Package tonejs decodes timelines in the JSON layout produced by the
// Tone.js MIDI library: a header with the ppq and a list of tracks carrying
// notes in absolute ticks.
package tonejs

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/beatgrid/model"
	"github.com/pkg/errors"
)

type Header struct {
	Name string          `json:"name"`
	PPQ  json.RawMessage `json:"ppq"`
}

type Note struct {
	Midi          int    `json:"midi"`
	Name          string `json:"name"`
	Ticks         int    `json:"ticks"`
	DurationTicks int    `json:"durationTicks"`
}

type Track struct {
	Channel    int               `json:"channel"`
	Instrument *model.Instrument `json:"instrument"`
	Name       string            `json:"name"`
	Notes      []Note            `json:"notes"`
}

type Midi struct {
	Header Header  `json:"header"`
	Tracks []Track `json:"tracks"`
}

// Renderer decodes either a single Midi object or an array of them, one per
// tune.
type Renderer struct{}

func (Renderer) Render(ctx context.Context, src []byte) ([]model.RawTimeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs, err := Decode(src)
	if err != nil {
		return nil, err
	}
	res := make([]model.RawTimeline, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.Timeline())
	}
	return res, nil
}

func Decode(src []byte) ([]Midi, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 || bytes.Equal(src, []byte("null")) {
		return nil, nil
	}

	if src[0] == '[' {
		var docs []Midi
		if err := json.Unmarshal(src, &docs); err != nil {
			return nil, errors.Wrap(err, "decoding timeline list")
		}
		return docs, nil
	}

	var doc Midi
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding timeline")
	}
	return []Midi{doc}, nil
}

// ParsePPQ reads the header resolution the way a lenient integer parse
// would: numbers are truncated, numeric strings are accepted, anything else
// (missing, null, booleans, words) yields nil.
func ParsePPQ(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return truncate(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		return truncate(f)
	}
	return nil
}

func truncate(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

func (m Midi) Timeline() model.RawTimeline {
	tl := model.RawTimeline{
		Name:   m.Header.Name,
		PPQ:    ParsePPQ(m.Header.PPQ),
		Tracks: make([]model.RawTrack, 0, len(m.Tracks)),
	}
	for _, t := range m.Tracks {
		track := model.RawTrack{
			Instrument: t.Instrument,
			Name:       t.Name,
			Channel:    t.Channel,
			Notes:      make([]model.RawNote, 0, len(t.Notes)),
		}
		for _, n := range t.Notes {
			track.Notes = append(track.Notes, model.RawNote{
				Pitch:         n.Midi,
				Name:          n.Name,
				Ticks:         n.Ticks,
				DurationTicks: n.DurationTicks,
			})
		}
		tl.Tracks = append(tl.Tracks, track)
	}
	return tl
}
