package utils

import "time"

// timestampLayout is RFC3339 with millisecond precision, always UTC.
// Fixed width so stored timestamps sort lexicographically.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// NowUTC returns the current time as an ISO-8601 UTC string.
func NowUTC() string {
	return time.Now().UTC().Format(timestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp produced by NowUTC.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
