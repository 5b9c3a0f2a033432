package core

import "time"

// TimestampLayout is the ISO-8601 layout used for Message.Timestamp
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Message is the structured record a formatter builds for an accepted call
type Message struct {
	Level     Level
	Domain    string
	Message   string
	Timestamp string
	// Fields holds extra record fields added by a custom formatter.
	// The default formatter leaves it nil.
	Fields map[string]any
}

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
