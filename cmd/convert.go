package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/score"
	"github.com/jsphweid/beatgrid/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var convertFlags struct {
	out    string
	maxNum int
}

func init() {
	convertCmd.Flags().StringVarP(&convertFlags.out, "out", "o", "", "write the grid here instead of stdout")
	convertCmd.Flags().IntVar(&convertFlags.maxNum, "max-files", 0, "when converting a directory, stop after this many files")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file|dir>",
	Short: "Converts a score to a grid",
	Long: `Converts a score to a grid and prints it as JSON. Given a directory, every
score under it is converted and written next to its source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			return convertDir(args[0], convertFlags.maxNum)
		}

		res, err := convertFile(args[0], options())
		if err != nil {
			return err
		}
		if convertFlags.out != "" {
			return util.WriteJSON(convertFlags.out, res)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func convertFile(path string, opts score.Options) (model.GridResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return model.GridResult{}, err
	}
	r := score.RendererFor(score.FormatFromPath(path))
	res, err := score.Convert(context.Background(), r, src, opts)
	if err != nil {
		return model.GridResult{}, errors.Wrapf(err, "converting %s", path)
	}
	logNotices(path, res.Notices)
	return res, nil
}

func convertDir(dir string, maxNum int) error {
	paths, err := util.GatherAllScorePaths(dir, maxNum)
	if err != nil {
		return err
	}
	var failed int
	for i, path := range paths {
		log.Printf("Processing %v of %v scores\n", i+1, len(paths))
		res, err := convertFile(path, options())
		if err != nil {
			log.Printf("Skipping %v because: %v\n", path, err)
			failed++
			continue
		}
		if err := util.WriteJSON(util.GridPathFor(path), res); err != nil {
			return err
		}
	}
	if failed > 0 {
		log.Printf("%d of %d scores could not be converted\n", failed, len(paths))
	}
	return nil
}

func logNotices(source string, notices []model.Notice) {
	for _, n := range notices {
		log.Printf("%s: %s: %s\n", source, n.Kind, n.Message)
	}
}
