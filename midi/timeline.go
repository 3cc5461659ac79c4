package midi

import (
	"context"
	"strconv"

	"github.com/jsphweid/beatgrid/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// General MIDI program families, eight programs each.
var families = [16]string{
	"piano", "chromatic percussion", "organ", "guitar",
	"bass", "strings", "ensemble", "brass",
	"reed", "pipe", "synth lead", "synth pad",
	"synth effects", "world", "percussive", "sound effects",
}

const drumChannel = 9

// NoteName gives scientific pitch notation, 60 -> "C4".
func NoteName(pitch int) string {
	if pitch < 0 {
		return strconv.Itoa(pitch)
	}
	return pitchClasses[pitch%12] + strconv.Itoa(pitch/12-1)
}

func instrumentFor(channel, program uint8) *model.Instrument {
	if channel == drumChannel {
		return &model.Instrument{Number: int(program), Family: "drums"}
	}
	return &model.Instrument{Number: int(program), Family: families[(program&0x7f)/8]}
}

// Renderer turns a Standard MIDI File into a single timeline.
type Renderer struct{}

func (Renderer) Render(ctx context.Context, src []byte) ([]model.RawTimeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := ReadMidi(src)
	if err != nil {
		return nil, err
	}
	if len(s.Tracks) == 0 {
		return nil, nil
	}
	return []model.RawTimeline{Timeline(s)}, nil
}

// Timeline converts every SMF track to a RawTrack. SMPTE time formats have
// no ticks-per-quarter resolution and leave PPQ unset.
func Timeline(s *smf.SMF) model.RawTimeline {
	var tl model.RawTimeline
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		ppq := int(mt.Resolution())
		tl.PPQ = &ppq
	}
	for i, events := range s.Tracks {
		track := readTrack(events)
		if i == 0 && len(track.Notes) == 0 {
			// format 1 files keep the song title on the conductor track
			tl.Name = track.Name
		}
		tl.Tracks = append(tl.Tracks, track)
	}
	return tl
}

type noteKey struct {
	channel uint8
	key     uint8
}

func readTrack(events smf.Track) model.RawTrack {
	var track model.RawTrack
	var absTicks int64
	channelSeen := false

	// indexes into track.Notes of notes still sounding, oldest first
	sounding := make(map[noteKey][]int)

	for _, event := range events {
		absTicks += int64(event.Delta)
		var channel, key, velocity, program uint8
		var text string
		switch {
		case event.Message.GetNoteStart(&channel, &key, &velocity):
			if !channelSeen {
				track.Channel = int(channel)
				channelSeen = true
			}
			k := noteKey{channel, key}
			sounding[k] = append(sounding[k], len(track.Notes))
			track.Notes = append(track.Notes, model.RawNote{
				Pitch: int(key),
				Name:  NoteName(int(key)),
				Ticks: int(absTicks),
			})
		case event.Message.GetNoteEnd(&channel, &key):
			k := noteKey{channel, key}
			open := sounding[k]
			if len(open) == 0 {
				continue
			}
			n := &track.Notes[open[0]]
			n.DurationTicks = int(absTicks) - n.Ticks
			sounding[k] = open[1:]
		case event.Message.GetProgramChange(&channel, &program):
			if track.Instrument == nil {
				track.Instrument = instrumentFor(channel, program)
			}
			if !channelSeen {
				track.Channel = int(channel)
				channelSeen = true
			}
		case event.Message.GetMetaTrackName(&text):
			if track.Name == "" {
				track.Name = text
			}
		}
	}

	// anything still held ends with the track
	for _, open := range sounding {
		for _, i := range open {
			track.Notes[i].DurationTicks = int(absTicks) - track.Notes[i].Ticks
		}
	}

	if track.Instrument == nil && channelSeen && track.Channel == drumChannel {
		track.Instrument = instrumentFor(drumChannel, 0)
	}
	return track
}
