package models

import (
	"time"
)

// HourBucketLayout is the key layout of requests_by_hour.
const HourBucketLayout = "2006-01-02 15:00"

// FormatHourBucket returns the hour bucket of t in t's own offset.
//
// The bucket is formatted, not truncated: time.Truncate works on absolute time, so an entry logged
// at 10:45 +0530 would land on 10:30 instead of 10:00.
//
// Examples:
//   - 2023-10-10 13:55:36 -0700 -> "2023-10-10 13:00"
//   - 2023-10-10 23:59:59 +0000 -> "2023-10-10 23:00"
func FormatHourBucket(t time.Time) string {
	return t.Format(HourBucketLayout)
}
