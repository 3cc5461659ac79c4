package cmd

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/score"
	"github.com/jsphweid/beatgrid/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Regenerates a grid whenever its score changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(args[0], options(), nil)
	},
}

// watch converts path once, then again after every burst of writes to it.
// It returns when done is closed or the watcher fails.
func watch(path string, opts score.Options, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: editors often replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var mu sync.Mutex
	out := util.GridPathFor(path)
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()
		res, err := convertFile(path, opts)
		if err != nil {
			log.Printf("Could not convert %v: %v\n", path, err)
			return
		}
		if err := util.WriteJSON(out, res); err != nil {
			log.Printf("Could not write %v: %v\n", out, err)
		}
	}
	regenerate()

	debounced := debounce.New(constants.WatchDebounce)
	target := filepath.Clean(path)
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounced(regenerate)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v\n", err)
		}
	}
}
