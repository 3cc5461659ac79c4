package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/score"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readGrid(path string) (model.GridResult, error) {
	var res model.GridResult
	b, err := os.ReadFile(path)
	if err != nil {
		return res, err
	}
	err = json.Unmarshal(b, &res)
	return res, err
}

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.json")
	writeFile(t, path, reel)

	res, err := convertFile(path, score.Options{})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res.Tracks, 2)
}

func TestConvertFileNothingParsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	writeFile(t, path, "[]")

	_, err := convertFile(path, score.Options{})
	assert.ErrorIs(t, err, score.ErrNoTimelineParsed)
	assert.Contains(t, err.Error(), "empty.json")
}

func TestConvertDirWritesGridsNextToSources(t *testing.T) {
	t.Setenv("BEATGRID_OUT_DIR", "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), reel)
	writeFile(t, filepath.Join(dir, "broken.json"), "{")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	assert := assert.New(t)
	assert.NoError(convertDir(dir, 0))

	res, err := readGrid(filepath.Join(dir, "a.grid.json"))
	assert.NoError(err)
	assert.Len(res.Tracks, 2)

	_, err = os.Stat(filepath.Join(dir, "broken.grid.json"))
	assert.True(os.IsNotExist(err))

	// a second pass must not pick up its own output
	assert.NoError(convertDir(dir, 0))
	_, err = os.Stat(filepath.Join(dir, "a.grid.grid.json"))
	assert.True(os.IsNotExist(err))
}

func TestWatchRegeneratesOnChange(t *testing.T) {
	t.Setenv("BEATGRID_OUT_DIR", "")
	dir := t.TempDir()
	src := filepath.Join(dir, "tune.json")
	out := filepath.Join(dir, "tune.grid.json")
	writeFile(t, src, reel)

	done := make(chan struct{})
	errc := make(chan error, 1)
	go func() {
		errc <- watch(src, score.Options{}, done)
	}()

	assert := assert.New(t)
	assert.Eventually(func() bool {
		res, err := readGrid(out)
		return err == nil && len(res.Tracks) == 2
	}, 3*time.Second, 50*time.Millisecond)

	writeFile(t, src, `{"header": {"ppq": 96}, "tracks": [{"notes": [{"midi": 70, "ticks": 0, "durationTicks": 96}]}]}`)
	assert.Eventually(func() bool {
		res, err := readGrid(out)
		return err == nil && res.PPQ == 96 && len(res.Tracks) == 1
	}, 5*time.Second, 50*time.Millisecond)

	close(done)
	assert.NoError(<-errc)
}
