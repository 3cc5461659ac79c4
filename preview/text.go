package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/util"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Width(5).Align(lipgloss.Right).Foreground(lipgloss.Color("250"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func trackTitle(t model.TrackRecord) string {
	name := t.Name
	if name == "" {
		name = fmt.Sprintf("track %d", t.SourceTrack)
	}
	meta := fmt.Sprintf("ch %d, %d notes, %d cells", t.Channel, len(t.Notes), t.CellCount)
	if t.Instrument != nil {
		meta = fmt.Sprintf("%s, program %d (%s)", meta, t.Instrument.Number, t.Instrument.Family)
	}
	return titleStyle.Render(name) + " " + metaStyle.Render(meta)
}

func renderCells(cells []bool) string {
	var b strings.Builder
	for i, on := range cells {
		if i > 0 && i%constants.CellsPerBar == 0 {
			b.WriteString(emptyStyle.Render("|"))
		}
		if on {
			b.WriteString(noteStyle.Render("█"))
		} else {
			b.WriteString(emptyStyle.Render("·"))
		}
	}
	return b.String()
}

// Text renders every track as a block of pitch lanes, followed by any
// notices.
func Text(res model.GridResult) string {
	var b strings.Builder

	header := fmt.Sprintf("%d tracks, %d notes, %d ppq", len(res.Tracks), countNotes(res), res.PPQ)
	if res.Name != "" {
		header = res.Name + " - " + header
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	for _, t := range res.Tracks {
		b.WriteString("\n")
		b.WriteString(trackTitle(t))
		b.WriteString("\n")
		for _, r := range Rows(t) {
			b.WriteString(labelStyle.Render(r.Name))
			b.WriteString(" ")
			b.WriteString(renderCells(r.Cells))
			b.WriteString("\n")
		}
	}

	if len(res.Notices) > 0 {
		b.WriteString("\n")
		for _, n := range res.Notices {
			b.WriteString(noticeStyle.Render(fmt.Sprintf("! %s: %s", n.Kind, n.Message)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func countNotes(res model.GridResult) uint64 {
	counts := make([]int, 0, len(res.Tracks))
	for _, t := range res.Tracks {
		counts = append(counts, len(t.Notes))
	}
	return util.Sum(counts)
}
