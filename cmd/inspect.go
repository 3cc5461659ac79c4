package cmd

import (
	"fmt"

	"github.com/jsphweid/beatgrid/preview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints a grid in the terminal",
	Long:  `Converts a score and prints every track as rows of cells, one row per pitch.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := convertFile(args[0], options())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), preview.Text(res))
		return nil
	},
}
