package ingestors

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"log-stats/internal/models"
)

// TimestampLayout is the Combined Log Format timestamp, e.g. 10/Oct/2023:13:55:36 -0700.
const TimestampLayout = "02/Jan/2006:15:04:05 -0700"

// combinedLogPattern matches
//
//	<ip> <ident> <user> [<timestamp>] "<request>" <status> <bytes>[ "<referer>" "<user-agent>"]
//
// anchored on both ends. Referer and user agent are matched but not captured into the entry.
var combinedLogPattern = regexp.MustCompile(`^(\S+) (\S+) (\S+) \[([^\]]+)\] "([^"]*)" (\d+) (\S+)(?: "([^"]*)" "([^"]*)")?$`)

// timestampPattern pins the exact shape of TimestampLayout. time.Parse alone also accepts
// fractional seconds after the seconds field.
var timestampPattern = regexp.MustCompile(`^\d{2}/[A-Za-z]{3}/\d{4}:\d{2}:\d{2}:\d{2} [+-]\d{4}$`)

const (
	groupIP        = 1
	groupTimestamp = 4
	groupStatus    = 6
	groupBytes     = 7
)

// LineParser turns one raw access log line into a LogEntry.
//
//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse returns an error wrapping ErrLineRejected when the line is not a valid
	// Combined Log Format record. line must not contain the trailing newline.
	Parse(line string) (*models.LogEntry, error)
}

type combinedLogParser struct{}

func NewCombinedLogParser() LineParser {
	return &combinedLogParser{}
}

func (p *combinedLogParser) Parse(line string) (*models.LogEntry, error) {
	matches := combinedLogPattern.FindStringSubmatch(line)
	if matches == nil {
		return nil, errRejected("line does not match combined log format")
	}

	timestamp, err := parseTimestamp(matches[groupTimestamp])
	if err != nil {
		return nil, errRejected("invalid timestamp %q", matches[groupTimestamp])
	}

	status, err := strconv.ParseUint(matches[groupStatus], 10, 16)
	if err != nil {
		return nil, errRejected("invalid status %q", matches[groupStatus])
	}

	bodyBytes, err := parseBodyBytes(matches[groupBytes])
	if err != nil {
		return nil, errRejected("invalid bytes %q", matches[groupBytes])
	}

	return &models.LogEntry{
		ClientIP:   matches[groupIP],
		Timestamp:  timestamp,
		StatusCode: uint16(status),
		BodyBytes:  bodyBytes,
	}, nil
}

// parseTimestamp parses a log timestamp and pins it to a fixed zone carrying the recorded offset.
// time.Parse would otherwise hand back time.Local when the offset happens to match it.
func parseTimestamp(value string) (time.Time, error) {
	if !timestampPattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %q", value, TimestampLayout)
	}
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	_, offset := t.Zone()
	return t.In(time.FixedZone("", offset)), nil
}

// parseBodyBytes maps "-" to 0. Anything else must be an unsigned integer.
func parseBodyBytes(value string) (uint64, error) {
	if value == "-" {
		return 0, nil
	}
	return strconv.ParseUint(value, 10, 64)
}
