// Package score is the entry point from a score source to a grid. Turning
// the source into timed notes is delegated to a Renderer.
package score

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jsphweid/beatgrid/grid"
	"github.com/jsphweid/beatgrid/midi"
	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/tonejs"
	"github.com/pkg/errors"
)

var (
	ErrNoTimelineParsed = errors.New("no notation parsed")
	ErrTuneOutOfRange   = errors.New("tune index out of range")
)

// Renderer turns a score source into one timeline per tune it contains.
type Renderer interface {
	Render(ctx context.Context, src []byte) ([]model.RawTimeline, error)
}

type Options struct {
	Grid grid.Options

	// Tune picks which timeline to convert when the source holds several.
	Tune int
}

func Convert(ctx context.Context, r Renderer, src []byte, opts Options) (model.GridResult, error) {
	timelines, err := r.Render(ctx, src)
	if err != nil {
		return model.GridResult{}, errors.Wrap(err, "rendering score")
	}
	if len(timelines) == 0 {
		return model.GridResult{}, ErrNoTimelineParsed
	}
	if opts.Tune < 0 || opts.Tune >= len(timelines) {
		return model.GridResult{}, errors.Wrapf(ErrTuneOutOfRange, "tune %d requested, source has %d", opts.Tune, len(timelines))
	}
	return grid.Aggregate(timelines[opts.Tune], opts.Grid), nil
}

const (
	FormatJSON = "json"
	FormatMidi = "midi"
)

func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return FormatMidi
	default:
		return FormatJSON
	}
}

// RendererFor returns the renderer for a format name. Unknown names get the
// JSON renderer.
func RendererFor(format string) Renderer {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case FormatMidi, "mid", "smf":
		return midi.Renderer{}
	default:
		return tonejs.Renderer{}
	}
}
