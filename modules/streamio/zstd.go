package streamio

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdReader = sync.Pool{
		New: func() any {
			d, _ := zstd.NewReader(nil)
			return &ZstdDecoder{
				Decoder: d,
			}
		},
	}
	zstdWriter = sync.Pool{
		New: func() any {
			e, _ := zstd.NewWriter(nil)
			return &ZstdEncoder{
				Encoder: e,
			}
		},
	}
)

type ZstdDecoder struct {
	*zstd.Decoder
}

// GetZstdReader returns a ZstdDecoder reset to read from r. The decoder is
// managed by a sync.Pool and should be returned with PutZstdReader.
func GetZstdReader(r io.Reader) (*ZstdDecoder, error) {
	z := zstdReader.Get().(*ZstdDecoder)
	if err := z.Reset(r); err != nil {
		zstdReader.Put(z)
		return nil, err
	}
	return z, nil
}

// PutZstdReader detaches z from its source and puts it back into the pool.
func PutZstdReader(z *ZstdDecoder) {
	_ = z.Reset(nil)
	zstdReader.Put(z)
}

type ZstdEncoder struct {
	*zstd.Encoder
}

// GetZstdWriter returns a pooled encoder reset to write to w.
func GetZstdWriter(w io.Writer) *ZstdEncoder {
	z := zstdWriter.Get().(*ZstdEncoder)
	z.Reset(w)
	return z
}

// PutZstdWriter flushes w and puts it back into the pool.
func PutZstdWriter(w *ZstdEncoder) {
	w.Encoder.Close() // close flush writer
	zstdWriter.Put(w)
}
