package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID         = "run_id"
	FieldSource        = "source"
	FieldLinesRead     = "lines_read"
	FieldLinesAccepted = "lines_accepted"
	FieldLinesFiltered = "lines_filtered"
	FieldLinesSkipped  = "lines_skipped"
	FieldLineNumber    = "line_number"
)
