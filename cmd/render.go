package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/beatgrid/preview"
	"github.com/spf13/cobra"
)

var renderOut string

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "png path, defaults to the source name with .png")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Renders a grid to a png",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := convertFile(args[0], options())
		if err != nil {
			return err
		}

		out := renderOut
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		return preview.WritePNG(f, res)
	},
}
