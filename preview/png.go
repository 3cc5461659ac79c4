package preview

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/model"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cellW      = 12.0
	rowH       = 10.0
	labelW     = 48.0
	titleH     = 18.0
	trackGap   = 8.0
	margin     = 10.0
	fontSize   = 9.0
	noteRadius = 2.0
)

type color struct {
	R, G, B float64
}

var trackColors = []color{
	{0.94, 0.33, 0.31},
	{0.26, 0.65, 0.96},
	{0.40, 0.73, 0.42},
	{1.00, 0.65, 0.15},
	{0.67, 0.28, 0.74},
	{0.15, 0.78, 0.85},
}

func trackColor(i int) color {
	return trackColors[i%len(trackColors)]
}

// Size returns the image dimensions Draw uses for res.
func Size(res model.GridResult) (int, int) {
	w := margin*2 + labelW + float64(res.MaxCellCount())*cellW
	h := margin * 2
	for _, t := range res.Tracks {
		h += titleH + float64(len(Rows(t)))*rowH + trackGap
	}
	return int(w), int(h)
}

// Draw paints a piano roll of every track, stacked top to bottom.
func Draw(res model.GridResult) (*gg.Context, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "loading font")
	}

	w, h := Size(res)
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.17, 0.17, 0.17)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: fontSize}))

	y := margin
	for i, t := range res.Tracks {
		dc.SetRGB(1, 1, 1)
		dc.DrawString(trackLabel(t), margin, y+titleH-6)
		y += titleH

		rows := Rows(t)
		drawLanes(dc, t, len(rows), y)
		for j, r := range rows {
			rowY := y + float64(j)*rowH
			dc.SetRGBA(1, 1, 1, 0.6)
			dc.DrawString(r.Name, margin, rowY+rowH-1)
			drawRow(dc, r, rowY, trackColor(i))
		}
		y += float64(len(rows))*rowH + trackGap
	}
	return dc, nil
}

func trackLabel(t model.TrackRecord) string {
	if t.Name != "" {
		return t.Name
	}
	if t.Instrument != nil && t.Instrument.Name != "" {
		return t.Instrument.Name
	}
	return "track"
}

func drawLanes(dc *gg.Context, t model.TrackRecord, numRows int, y float64) {
	x0 := margin + labelW
	height := float64(numRows) * rowH
	for c := 0; c <= t.CellCount; c++ {
		x := x0 + float64(c)*cellW
		switch {
		case c%constants.CellsPerBar == 0:
			dc.SetRGBA(1, 1, 1, 0.35)
		case c%constants.CellsPerBeat == 0:
			dc.SetRGBA(1, 1, 1, 0.15)
		default:
			dc.SetRGBA(1, 1, 1, 0.05)
		}
		dc.SetLineWidth(0.5)
		dc.DrawLine(x, y, x, y+height)
		dc.Stroke()
	}
}

// drawRow draws each contiguous run of covered cells as one block.
func drawRow(dc *gg.Context, r Row, y float64, c color) {
	x0 := margin + labelW
	start := -1
	for i := 0; i <= len(r.Cells); i++ {
		on := i < len(r.Cells) && r.Cells[i]
		if on && start < 0 {
			start = i
		}
		if !on && start >= 0 {
			dc.DrawRoundedRectangle(x0+float64(start)*cellW, y+1, float64(i-start)*cellW, rowH-2, noteRadius)
			dc.SetRGB(c.R, c.G, c.B)
			dc.FillPreserve()
			dc.SetRGBA(0, 0, 0, 1)
			dc.SetLineWidth(1)
			dc.Stroke()
			start = -1
		}
	}
}

func WritePNG(w io.Writer, res model.GridResult) error {
	dc, err := Draw(res)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
