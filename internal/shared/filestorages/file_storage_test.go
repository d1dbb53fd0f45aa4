package filestorages

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage("")
	assert.Nil(t, storage)
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report.json",
		"reports/01HF7YQ8Z3K1V5J6W2N4P0R9TB.json",
		"nested/deep/path/file.txt",
		"file.with.dots.json",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			result, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, "{}", string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "reports/run.json"
	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "reports/run.json"
	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	result, err := storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestPut_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "reports/a.json", strings.NewReader("a"), PutOptions{})
	require.NoError(t, err)

	dirEntries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, "reports"))
	require.NoError(t, err)
	require.Len(t, dirEntries, 1)
	assert.Equal(t, "a.json", dirEntries[0].Name())
}

func TestPut_ReaderFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	readErr := errors.New("connection reset")

	_, err := storage.Put(context.Background(), "reports/a.json", iotest.ErrReader(readErr), PutOptions{})
	assert.ErrorIs(t, err, readErr)

	dirEntries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, "reports"))
	require.NoError(t, err)
	assert.Empty(t, dirEntries)
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"reports/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "reports/missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "reports/run.json"
	data := `{"total_requests": 10}`

	_, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestList_SortedKeysUnderPrefix(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"reports/b.json", "reports/a.json", "reports/nested/c.json", "other/d.json"} {
		_, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{})
		require.NoError(t, err)
	}

	keys, err := storage.List(ctx, "reports")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/a.json", "reports/b.json"}, keys)
}

func TestList_MissingPrefix(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	keys, err := storage.List(context.Background(), "reports")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestList_InvalidPrefix(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.List(context.Background(), "../outside")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
