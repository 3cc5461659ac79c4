package cmd

import (
	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/grid"
	"github.com/jsphweid/beatgrid/score"
	"github.com/spf13/cobra"
)

var gridFlags struct {
	maxPatterns int
	tune        int
	coverTails  bool
}

var rootCmd = &cobra.Command{
	Use:   "beatgrid",
	Short: "Quantizes scores into step-sequencer grids",
	Long: `beatgrid turns a rendered score (Tone.js style JSON or a Standard MIDI File)
into per-track note grids of sixteenth-note cells, sized in whole bars, for
the beat editor.`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&gridFlags.maxPatterns, "max-patterns", constants.GetMaxPatterns(), "maximum number of tracks in a grid")
	flags.IntVar(&gridFlags.tune, "tune", 0, "index of the tune to convert when a source holds several")
	flags.BoolVar(&gridFlags.coverTails, "cover-tails", false, "size tracks so long notes never run past the grid")
}

func options() score.Options {
	return score.Options{
		Grid: grid.Options{
			MaxPatterns: gridFlags.maxPatterns,
			CoverTails:  gridFlags.coverTails,
		},
		Tune: gridFlags.tune,
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
