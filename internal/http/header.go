package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	contentTypeJSON = "application/json"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

// setRequestID records the id on the request and echoes it on the response.
func setRequestID(w http.ResponseWriter, r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
	w.Header().Set(headerRequestID, requestID)
}
