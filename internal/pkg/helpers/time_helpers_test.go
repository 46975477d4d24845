package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, 24*time.Hour, ParseDuration("", 24*time.Hour))
}

func TestParseDateString(t *testing.T) {
	got, err := ParseDateString("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 15, got.Day())

	_, err = ParseDateString("15-06-2025")
	assert.Error(t, err)

	_, err = ParseDateString("2025-13-40")
	assert.Error(t, err)
}
