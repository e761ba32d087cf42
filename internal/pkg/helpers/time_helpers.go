package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// BackupTimestampLayout is the timestamp format used in backup file names.
const BackupTimestampLayout = "20060102_150405"

// NowMillis returns the current time as milliseconds since the Unix epoch,
// the timestamp representation used throughout the persisted documents.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MillisToTime converts an epoch-millisecond timestamp to a time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
