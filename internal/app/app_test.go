package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"log-stats/internal/filters"
	"log-stats/internal/models"
	pipelinemocks "log-stats/internal/pipelines/mocks"
	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/shared/ulid"
	"log-stats/internal/sources"
	sourcemocks "log-stats/internal/sources/mocks"
)

func newTestConfig(t *testing.T) *configs.Config {
	t.Helper()

	return &configs.Config{
		Log:     configs.LogConfig{Level: "debug"},
		Report:  configs.ReportConfig{TopN: models.DefaultTopN, Format: "json"},
		Storage: configs.StorageConfig{RootDir: t.TempDir()},
		Server: configs.ServerConfig{
			Port:              0,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
		},
	}
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	application, err := New(newTestConfig(t), &logs)
	require.NoError(t, err)
	return application, &logs
}

func sampleOptions() RunOptions {
	return RunOptions{
		Source:  filepath.Join("testdata", "sample.log"),
		Filters: filters.FilterOptions{TopN: models.DefaultTopN},
	}
}

func assertServiceErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	config := newTestConfig(t)
	config.Log.Level = "loud"

	application, err := New(config, &bytes.Buffer{})
	assert.Nil(t, application)
	assert.ErrorContains(t, err, "failed to initialize logger")
}

func TestApp_Run_SampleLog(t *testing.T) {
	t.Parallel()

	application, logs := newTestApp(t)

	result, err := application.Run(context.Background(), sampleOptions())
	require.NoError(t, err)

	assert.True(t, ulid.IsValid(result.RunID))
	assert.False(t, result.Saved)
	assert.Equal(t, int64(10), result.Report.TotalRequests)
	assert.Equal(t, int64(7), result.Report.RequestsByStatus["200"])
	assert.InDelta(t, 30.0, result.Report.ErrorRate, 0.1)

	assert.Contains(t, logs.String(), `"run_id":"`+result.RunID+`"`)
	assert.Contains(t, logs.String(), `"app":"log-stats"`)
	assert.Contains(t, logs.String(), "pipeline run completed")
}

func TestApp_Run_InvalidLog(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)

	opts := sampleOptions()
	opts.Source = filepath.Join("testdata", "invalid.log")
	result, err := application.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Report.SkippedLines)
	assert.Equal(t, int64(0), result.Report.TotalRequests)
}

func TestApp_Run_FromFilterReducesTotal(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)

	opts := sampleOptions()
	opts.Filters.From = "2023-10-10 14:00"
	result, err := application.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(8), result.Report.TotalRequests)
	assert.Less(t, result.Report.TotalRequests, int64(10))
}

func TestApp_Run_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mutate       func(opts *RunOptions)
		expectedCode string
	}{
		{
			name:         "missing file",
			mutate:       func(opts *RunOptions) { opts.Source = filepath.Join("testdata", "missing.log") },
			expectedCode: "SRC_1000",
		},
		{
			name:         "malformed from",
			mutate:       func(opts *RunOptions) { opts.Filters.From = "10/10/2023" },
			expectedCode: "FLT_1000",
		},
		{
			name:         "top ips below one",
			mutate:       func(opts *RunOptions) { opts.Filters.TopN = 0 },
			expectedCode: "FLT_1001",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			application, _ := newTestApp(t)
			opts := sampleOptions()
			tt.mutate(&opts)

			result, err := application.Run(context.Background(), opts)
			assert.Nil(t, result)
			assertServiceErrorCode(t, err, tt.expectedCode)
		})
	}
}

func TestApp_Run_SaveAndReadBack(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	ctx := context.Background()

	opts := sampleOptions()
	opts.Save = true
	result, err := application.Run(ctx, opts)
	require.NoError(t, err)
	assert.True(t, result.Saved)

	runIDs, err := application.ListReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{result.RunID}, runIDs)

	record, err := application.GetReport(ctx, result.RunID)
	require.NoError(t, err)
	assert.Equal(t, result.RunID, record.RunID)
	assert.Equal(t, result.Source, record.Source)
	assert.Equal(t, result.Report, record.Report)
}

func TestApp_Run_Idempotent(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	ctx := context.Background()

	var outputs [2]bytes.Buffer
	for i := range outputs {
		result, err := application.Run(ctx, sampleOptions())
		require.NoError(t, err)
		require.NoError(t, application.Render(&outputs[i], result.Report, ""))
	}
	assert.Equal(t, outputs[0].String(), outputs[1].String())
}

func TestApp_Render(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	result, err := application.Run(context.Background(), sampleOptions())
	require.NoError(t, err)

	var jsonOut bytes.Buffer
	require.NoError(t, application.Render(&jsonOut, result.Report, ""))
	var decoded models.Report
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, *result.Report, decoded)

	var tableOut bytes.Buffer
	require.NoError(t, application.Render(&tableOut, result.Report, "table"))
	assert.Contains(t, tableOut.String(), "Top IPs")

	err = application.Render(&bytes.Buffer{}, result.Report, "xml")
	assertServiceErrorCode(t, err, "RND_1000")
}

func TestApp_Handler(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	result, err := application.Run(context.Background(), sampleOptions())
	require.NoError(t, err)

	server := httptest.NewServer(application.Handler(result))
	defer server.Close()

	resp, err := http.Get(server.URL + "/report/status/200")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "200", body.Status)
	assert.Equal(t, int64(7), body.Count)
}

func TestApp_Serve_StopsOnCancel(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	result, err := application.Run(context.Background(), sampleOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, application.Serve(ctx, result))
}

func TestApp_Shutdown_WithoutServe(t *testing.T) {
	t.Parallel()

	application, _ := newTestApp(t)
	assert.NoError(t, application.Shutdown(context.Background()))
}

func TestApp_Run_SourceOpenFailureSkipsPipeline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	application, logs := newTestApp(t)

	source := sourcemocks.NewMockLogSource(ctrl)
	source.EXPECT().Name().Return("file:broken.log").AnyTimes()
	source.EXPECT().Open(gomock.Any()).Return(nil, svcerrors.NewInternalError("SRC_9000", errors.New("permission denied")))
	application.newSource = func(string) sources.LogSource { return source }
	application.pipeline = pipelinemocks.NewMockPipeline(ctrl)

	result, err := application.Run(context.Background(), sampleOptions())
	assert.Nil(t, result)
	assertServiceErrorCode(t, err, "SRC_9000")
	assert.Contains(t, logs.String(), `"error_code":"SRC_9000"`)
}

func TestApp_Run_PipelineFailureClosesSource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	application, logs := newTestApp(t)

	reader := &closeRecorder{Reader: strings.NewReader("")}
	source := sourcemocks.NewMockLogSource(ctrl)
	source.EXPECT().Name().Return("stdin").AnyTimes()
	source.EXPECT().Open(gomock.Any()).Return(reader, nil)
	application.newSource = func(string) sources.LogSource { return source }

	pipeline := pipelinemocks.NewMockPipeline(ctrl)
	pipeline.EXPECT().
		Run(gomock.Any(), reader, gomock.Any()).
		Return(nil, svcerrors.NewInternalError("PIP_9000", errors.New("read failed")))
	application.pipeline = pipeline

	opts := sampleOptions()
	opts.Save = true
	result, err := application.Run(context.Background(), opts)
	assert.Nil(t, result)
	assertServiceErrorCode(t, err, "PIP_9000")
	assert.True(t, reader.closed)
	assert.Contains(t, logs.String(), `"error_code":"PIP_9000"`)

	runIDs, err := application.ListReports(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runIDs)
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}
