package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"log-stats/internal/shared/svcerrors"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewNotFoundError("RPT_1001", "status not reported", nil))
	assert.Equal(t, "RPT_1001", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Empty(t, appWriter.ErrorCode())
}

func TestResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		writer   func() http.ResponseWriter
		expected int
	}{
		{
			name:     "plain writer defaults to 200",
			writer:   func() http.ResponseWriter { return httptest.NewRecorder() },
			expected: http.StatusOK,
		},
		{
			name:     "app writer without header defaults to 200",
			writer:   func() http.ResponseWriter { return newAppResponseWriter(httptest.NewRecorder(), 1) },
			expected: http.StatusOK,
		},
		{
			name: "app writer reports written status",
			writer: func() http.ResponseWriter {
				w := newAppResponseWriter(httptest.NewRecorder(), 1)
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("not found"))
				return w
			},
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, responseStatus(tt.writer()))
		})
	}
}

func TestResponseErrorCode_PlainWriter(t *testing.T) {
	t.Parallel()

	assert.Empty(t, responseErrorCode(httptest.NewRecorder()))
}
