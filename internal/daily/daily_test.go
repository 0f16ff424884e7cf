package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 10, 14, 8, 0, 0, 0, loc)
	assert.Equal(t, "2024-10-13", DateKey(d))
}

func TestWordIndex(t *testing.T) {
	d := time.Date(2024, 10, 13, 12, 0, 0, 0, time.UTC)
	later := time.Date(2024, 10, 13, 23, 59, 0, 0, time.UTC)

	i := WordIndex(d, "salt", 16)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 16)
	assert.Equal(t, i, WordIndex(later, "salt", 16), "same day, same index")
	assert.Equal(t, 0, WordIndex(d, "salt", 0))

	long := string(make([]byte, 100))
	j := WordIndex(d, long, 16)
	assert.Less(t, j, 16)
}

func TestWordIndex_Spreads(t *testing.T) {
	seen := map[int]bool{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		seen[WordIndex(start.AddDate(0, 0, day), "salt", 8)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPicker(t *testing.T) {
	d := time.Date(2024, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, WordIndex(d, "s", 5), Picker(d, "s")(5))
}
