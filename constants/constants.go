package constants

import (
	"os"
	"strconv"
	"time"
)

// sixteenth-note grid relative to a quarter-note beat
const CellsPerBeat = 4
const CellsPerBar = 16

const DefaultPPQ = 480

// matches the number of pattern slots in the editor
const DefaultMaxPatterns = 16

const DefaultAddr = ":8080"

const WatchDebounce = 250 * time.Millisecond

func GetMaxPatterns() int {
	val := os.Getenv("BEATGRID_MAX_PATTERNS")
	if val == "" {
		return DefaultMaxPatterns
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return DefaultMaxPatterns
	}
	return n
}

func GetAddr() string {
	addr := os.Getenv("BEATGRID_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}

// GetOutDir returns where generated grids are written. Empty means next to
// the source file.
func GetOutDir() string {
	return os.Getenv("BEATGRID_OUT_DIR")
}
