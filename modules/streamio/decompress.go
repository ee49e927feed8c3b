package streamio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "none"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect reports the compression format announced by the leading bytes.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	}
	return None
}

type decompressReader struct {
	io.Reader
	closeFn func() error
}

func (d *decompressReader) Close() error {
	if d.closeFn == nil {
		return nil
	}
	return d.closeFn()
}

// NewDecompressReader sniffs r and transparently decompresses gzip and zstd
// streams. Anything else is passed through unchanged.
func NewDecompressReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, None, err
	}
	switch Detect(head) {
	case Zstd:
		z, err := GetZstdReader(br)
		if err != nil {
			return nil, None, err
		}
		return &decompressReader{Reader: z, closeFn: func() error {
			PutZstdReader(z)
			return nil
		}}, Zstd, nil
	case Gzip:
		z, err := gzip.NewReader(br)
		if err != nil {
			return nil, None, err
		}
		return &decompressReader{Reader: z, closeFn: z.Close}, Gzip, nil
	}
	return &decompressReader{Reader: br}, None, nil
}
