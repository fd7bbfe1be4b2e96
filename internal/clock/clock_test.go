package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDs_StrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	g := NewIDs(func() time.Time { return fixed })

	assert.Equal(t, "1700000000000", g.Next())
	assert.Equal(t, "1700000000001", g.Next())
	assert.Equal(t, "1700000000002", g.Next())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2023-10-25", DisplayDate(time.Date(2023, 10, 25, 23, 0, 0, 0, time.UTC)))
}
