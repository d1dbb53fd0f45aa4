package sources

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-stats/internal/shared/svcerrors"
)

func TestFileSource_Open(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte("line\n"), 0o644))

	source := NewFileSource(path)
	assert.Equal(t, "file:"+path, source.Name())

	rc, err := source.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(content))
}

func TestFileSource_Open_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name         string
		path         string
		expectedCode string
		httpStatus   int
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.log"), expectedCode: codeSourceNotFound, httpStatus: 404},
		{name: "missing parent directory", path: filepath.Join(dir, "nope", "access.log"), expectedCode: codeSourceNotFound, httpStatus: 404},
		{name: "directory", path: dir, expectedCode: codeInternalSourceFailed, httpStatus: 500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc, err := NewFileSource(tt.path).Open(context.Background())
			assert.Nil(t, rc)
			require.Error(t, err)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.httpStatus, svcErr.HttpStatusCode)
			assert.Contains(t, err.Error(), tt.expectedCode)
		})
	}
}

func TestStdinSource_Open(t *testing.T) {
	t.Parallel()

	source := NewStdinSource(strings.NewReader("a\nb\n"))
	assert.Equal(t, "stdin", source.Name())

	rc, err := source.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stdin", New(StdinName).Name())
	assert.Equal(t, "file:access.log", New("access.log").Name())
}
