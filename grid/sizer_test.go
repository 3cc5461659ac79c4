package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellCountIsPositiveMultipleOf16(t *testing.T) {
	for maxSeq := 0; maxSeq < 200; maxSeq++ {
		got := CellCount(maxSeq)
		if got <= 0 || got%16 != 0 {
			t.Fatalf("CellCount(%d) = %d, not a positive multiple of 16", maxSeq, got)
		}
		if got < maxSeq+1 {
			t.Fatalf("CellCount(%d) = %d, does not cover the start cell", maxSeq, got)
		}
	}
}

func TestCellCountExamples(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(16, CellCount(0))
	assert.Equal(16, CellCount(15))
	assert.Equal(32, CellCount(16))
	assert.Equal(32, CellCount(20))
	assert.Equal(48, CellCount(32))
}

func TestCellCountWithTails(t *testing.T) {
	assert := assert.New(t)

	// tail fits inside the start-based size
	assert.Equal(32, CellCountWithTails(20, 24))
	assert.Equal(32, CellCountWithTails(20, 32))

	// tail runs past it
	assert.Equal(48, CellCountWithTails(20, 33))
	assert.Equal(64, CellCountWithTails(30, 64))
	assert.Equal(80, CellCountWithTails(30, 65))

	for maxSeq := 0; maxSeq < 64; maxSeq++ {
		for maxEnd := maxSeq + 1; maxEnd < maxSeq+70; maxEnd++ {
			got := CellCountWithTails(maxSeq, maxEnd)
			if got%16 != 0 || got < maxEnd || got < CellCount(maxSeq) {
				t.Fatalf("CellCountWithTails(%d, %d) = %d", maxSeq, maxEnd, got)
			}
		}
	}
}
