package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returning the default on error
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateString validates a YYYY-MM-DD date string
func ParseDateString(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}
