package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeBoundBareDate(t *testing.T) {
	start, err := ParseRangeBound("2024-01-15", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), start)

	end, err := ParseRangeBound("2024-01-15", true)
	require.NoError(t, err)
	// End of the same local day, inclusive.
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local).Add(24*time.Hour-time.Nanosecond), end)
}

func TestParseRangeBoundISOTimestampVerbatim(t *testing.T) {
	ts, err := ParseRangeBound("2024-01-15T10:30:00Z", true)
	require.NoError(t, err)
	// Full timestamps are used verbatim, no day-boundary expansion.
	assert.True(t, ts.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestParseRangeBoundInvalid(t *testing.T) {
	_, err := ParseRangeBound("15/01/2024", false)
	assert.Error(t, err)
}
