package levenshtein

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/antgroup/levdiff/modules/chardet"
	"github.com/antgroup/levdiff/modules/streamio"
	"github.com/zeebo/blake3"
)

const (
	MAX_DIFF_SIZE = 100 << 20 // MAX_DIFF_SIZE 100MiB
	sniffLen      = 8000
)

var (
	ErrNonTextContent = errors.New("non-text content")
	ErrTooLarge       = errors.New("content too large to diff")
)

// File describes one side of a diff.
type File struct {
	Name        string `json:"name"`
	Hash        string `json:"hash"` // BLAKE3 of the decoded content
	Size        int64  `json:"size"`
	Compression string `json:"compression,omitempty"`
	Charset     string `json:"charset,omitempty"`
}

// ShortHash returns an abbreviated hash.
func (f *File) ShortHash() string {
	if len(f.Hash) > 12 {
		return f.Hash[:12]
	}
	return f.Hash
}

type ReadOptions struct {
	Name    string
	MaxSize int64  // 0 means MAX_DIFF_SIZE, negative means unlimited
	Charset string // source charset; empty or UTF-8 means no conversion
	Text    bool   // treat content as text even if it looks binary
}

func (o *ReadOptions) maxSize() int64 {
	if o.MaxSize == 0 {
		return MAX_DIFF_SIZE
	}
	return o.MaxSize
}

// ReadText reads one diff input: compressed streams are decompressed, the
// size limit is enforced after decompression, binary content is rejected and
// the text is converted to UTF-8.
func ReadText(r io.Reader, opts *ReadOptions) (*File, string, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	dr, c, err := streamio.NewDecompressReader(r)
	if err != nil {
		return nil, "", err
	}
	defer dr.Close() // nolint
	content, err := streamio.ReadLimited(dr, opts.maxSize())
	if errors.Is(err, streamio.ErrTooLarge) {
		return nil, "", fmt.Errorf("%s: %w", opts.Name, ErrTooLarge)
	}
	if err != nil {
		return nil, "", err
	}
	if !opts.Text && chardet.IsUTF8(opts.Charset) && bytes.IndexByte(content[:min(len(content), sniffLen)], 0) != -1 {
		return nil, "", fmt.Errorf("%s: %w", opts.Name, ErrNonTextContent)
	}
	if content, err = chardet.DecodeFromCharset(content, opts.Charset); err != nil {
		return nil, "", err
	}
	sum := blake3.Sum256(content)
	f := &File{
		Name:    opts.Name,
		Hash:    hex.EncodeToString(sum[:]),
		Size:    int64(len(content)),
		Charset: opts.Charset,
	}
	if c != streamio.None {
		f.Compression = c.String()
	}
	return f, string(content), nil
}
