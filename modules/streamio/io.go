package streamio

import (
	"bytes"
	"errors"
	"io"
)

var (
	ErrTooLarge = errors.New("content too large")
)

func ReadMax(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(min(n, 64<<10)))
	if _, err := buf.ReadFrom(io.LimitReader(r, n)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadLimited reads all of r. Content beyond limit bytes is rejected with
// ErrTooLarge; a limit <= 0 means no limit.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	b, err := ReadMax(r, limit+1)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, ErrTooLarge
	}
	return b, nil
}
