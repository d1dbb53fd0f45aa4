package models

// Report is the single output of a pipeline run. It is built once by the stats reporter and never
// mutated afterwards.
//
// Example JSON:
//
//	{
//	  "total_requests": 10,
//	  "total_bytes": 23935,
//	  "skipped_lines": 1,
//	  "requests_by_status": {
//	    "200": 7,
//	    "403": 1,
//	    "404": 1,
//	    "500": 1
//	  },
//	  "requests_by_hour": {
//	    "2023-10-10 13:00": 2,
//	    "2023-10-10 14:00": 8
//	  },
//	  "top_ips": [
//	    {"ip": "192.168.1.1", "count": 4},
//	    {"ip": "192.168.1.2", "count": 2}
//	  ],
//	  "error_rate": 30.0,
//	  "avg_response_size": 2393.5
//	}
type Report struct {
	TotalRequests    int64            `json:"total_requests"`
	TotalBytes       uint64           `json:"total_bytes"`
	SkippedLines     int64            `json:"skipped_lines"`
	RequestsByStatus map[string]int64 `json:"requests_by_status"`
	RequestsByHour   map[string]int64 `json:"requests_by_hour"`
	TopIPs           []IPCount        `json:"top_ips"`
	ErrorRate        float64          `json:"error_rate"`
	AvgResponseSize  float64          `json:"avg_response_size"`
}

type IPCount struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

// NewEmptyReport returns a report with non-nil collections, so an empty log renders as {} and [].
func NewEmptyReport() *Report {
	return &Report{
		RequestsByStatus: make(map[string]int64),
		RequestsByHour:   make(map[string]int64),
		TopIPs:           make([]IPCount, 0),
	}
}
