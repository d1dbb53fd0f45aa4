package pipelines

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

// lineReader yields lines without their "\n" or "\r\n" terminator. A final line without a
// terminator is still yielded; an empty input yields nothing.
//
// bufio.Reader is used instead of bufio.Scanner so that long lines are never truncated or fatal.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next line, io.EOF once the input is exhausted, errInvalidEncoding for a line
// that is not UTF-8, or the underlying read error.
func (lr *lineReader) Next() (string, error) {
	raw, err := lr.r.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if len(raw) == 0 {
			return "", io.EOF
		}
	}

	if trimmed, ok := bytes.CutSuffix(raw, []byte{'\n'}); ok {
		raw = bytes.TrimSuffix(trimmed, []byte{'\r'})
	}
	if !utf8.Valid(raw) {
		return "", errInvalidEncoding
	}
	return string(raw), nil
}
