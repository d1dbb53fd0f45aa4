package models

import "time"

// LogEntry is one successfully parsed access log line. Referer and user agent are matched by the
// parser but not kept.
type LogEntry struct {
	ClientIP   string
	Timestamp  time.Time // keeps the offset recorded in the log line
	StatusCode uint16
	BodyBytes  uint64
}

// IsError reports whether the entry carries a client or server error status.
func (e *LogEntry) IsError() bool {
	return e.StatusCode >= 400
}
