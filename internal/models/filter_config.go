package models

import "time"

type StatusClass string

const (
	StatusClass2xx StatusClass = "2xx"
	StatusClass3xx StatusClass = "3xx"
	StatusClass4xx StatusClass = "4xx"
	StatusClass5xx StatusClass = "5xx"
)

const DefaultTopN = 10

// Bounds returns the half-open status range [low, high) of the class.
// ok is false for an empty or unrecognized class, which does not filter anything.
func (c StatusClass) Bounds() (low, high uint16, ok bool) {
	switch c {
	case StatusClass2xx:
		return 200, 300, true
	case StatusClass3xx:
		return 300, 400, true
	case StatusClass4xx:
		return 400, 500, true
	case StatusClass5xx:
		return 500, 600, true
	default:
		return 0, 0, false
	}
}

// FilterConfig is resolved once before a run and never changes during it.
// From and To are inclusive; nil means unbounded.
type FilterConfig struct {
	From   *time.Time
	To     *time.Time
	Status StatusClass
	TopN   int `validate:"min=1"`
}
