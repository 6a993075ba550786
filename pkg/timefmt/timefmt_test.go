package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParse_RoundTripInLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	moment := time.Date(2025, 3, 7, 9, 30, 0, 0, loc)

	s := Format(moment, loc)
	assert.Equal(t, "09:30 07.03.2025", s)

	parsed, err := Parse(s, loc)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(moment))
}

func TestFormat_UsesLocationNotUTC(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	utc := time.Date(2025, 3, 7, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, "09:00 07.03.2025", Format(utc, loc))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("2025-03-07 09:00", time.UTC)
	assert.Error(t, err)

	_, err = ParseDate("07.03.2025", time.UTC)
	assert.Error(t, err)
}
