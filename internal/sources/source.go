// Package sources acquires the input log of a run. Failing to open it is fatal and happens before
// any line is processed.
package sources

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// StdinName is the source argument that selects standard input.
const StdinName = "-"

// LogSource opens the single input of a run.
//
//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks
type LogSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the source in logs.
	Name() string
}

// New returns a stdin source for "-" and a file source otherwise.
func New(path string) LogSource {
	if path == StdinName {
		return NewStdinSource(os.Stdin)
	}
	return NewFileSource(path)
}

type fileSource struct {
	path string
}

func NewFileSource(path string) LogSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return "file:" + s.path
}

func (s *fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errSourceNotFound(s.path, err)
		}
		return nil, errInternalSourceFailed(s.path, err)
	}
	if info.IsDir() {
		return nil, errInternalSourceFailed(s.path, errors.New("is a directory"))
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, errInternalSourceFailed(s.path, err)
	}
	return f, nil
}

type stdinSource struct {
	r io.Reader
}

// NewStdinSource reads from r, usually os.Stdin. Closing it does not close r.
func NewStdinSource(r io.Reader) LogSource {
	return &stdinSource{r: r}
}

func (s *stdinSource) Name() string {
	return "stdin"
}

func (s *stdinSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}
