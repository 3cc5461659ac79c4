package util

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/beatgrid/constants"
	"golang.org/x/exp/constraints"
)

var scoreExtensions = []string{".json", ".mid", ".midi"}

func isScorePath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	for _, v := range scoreExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// GatherAllScorePaths walks path and returns every score source under it,
// skipping grids written by a previous run. maxNum of 0 means no limit.
func GatherAllScorePaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(s, GridSuffix) || !isScorePath(s) {
			return nil
		}
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, s)
		}
		return nil
	}
	err := filepath.WalkDir(path, walk)
	return res, err
}

const GridSuffix = ".grid.json"

// GridPathFor returns where the grid for a score source is written.
func GridPathFor(source string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + GridSuffix
	if dir := constants.GetOutDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(source), name)
}

func WriteJSON(filename string, data any) error {
	fmt.Printf("Writing json for filename: %v\n", filename)
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

func Max[A constraints.Ordered](a A, b A) A {
	if a < b {
		return b
	}
	return a
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
