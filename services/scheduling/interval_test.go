package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Back-to-back intervals share a boundary but do not overlap.
	assert.False(t, Overlaps(at(10, 0), at(10, 30), at(10, 30), at(11, 0)))
	assert.False(t, Overlaps(at(10, 30), at(11, 0), at(10, 0), at(10, 30)))

	// One minute of shared time is an overlap.
	assert.True(t, Overlaps(at(10, 29), at(10, 31), at(10, 0), at(10, 30)))
	assert.True(t, Overlaps(at(10, 0), at(10, 30), at(10, 29), at(10, 31)))

	// Full containment is an overlap.
	assert.True(t, Overlaps(at(9, 0), at(17, 0), at(10, 0), at(10, 30)))

	// Disjoint intervals are not.
	assert.False(t, Overlaps(at(9, 0), at(10, 0), at(14, 0), at(15, 0)))
}
