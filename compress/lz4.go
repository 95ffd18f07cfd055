package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// lz4WriterPool pools lz4.Writer instances for reuse. The writer maintains
// block buffers and hash tables that benefit from reuse.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// lz4ReaderPool pools lz4.Reader instances for the same reason.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// LZ4Codec compresses payloads into the LZ4 frame format, magic number and
// end mark included, and restores them. Frames are interchangeable with any
// conforming LZ4 frame implementation.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 frame codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses the input buffer into a single LZ4 frame. An empty
// input yields a complete frame holding zero content bytes.
func (LZ4Codec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	zw, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(zw)

	dst := fragbuf.New()
	zw.Reset(dst)

	if _, err := io.Copy(zw, buf.Reader()); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return dst, nil
}

// Uncompress decompresses an LZ4 frame. A zero-byte payload, a bad magic
// number, a truncated frame, or a corrupt block yields an error wrapping
// errs.ErrMalformedInput.
func (LZ4Codec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	// The frame reader treats EOF before the magic as an empty frame
	// sequence rather than an error, so zero-byte payloads are rejected
	// here.
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: lz4: empty input", errs.ErrMalformedInput)
	}

	zr, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(zr)

	zr.Reset(buf.Reader())

	dst := fragbuf.New()
	if _, err := dst.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrMalformedInput, err)
	}

	return dst, nil
}
