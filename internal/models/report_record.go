package models

import "time"

// ReportRecord is an archived report together with the run that produced it.
type ReportRecord struct {
	RunID     string    `json:"run_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Report    *Report   `json:"report"`
}
