package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// gzipWriterPool pools gzip.Writer instances. Each writer carries a deflate
// state machine whose allocation dominates small payload compression.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// gzipReaderPool pools gzip.Reader instances for the same reason. A pooled
// zero-value reader is armed with Reset before first use.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCodec compresses payloads into a single gzip (RFC 1952) member and
// restores them. Compression streams fragment by fragment, so no contiguous
// copy of the input is made.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress compresses the input buffer into a gzip member written at the
// default compression level. An empty input still yields a complete, valid
// gzip member.
func (GzipCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	zw, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(zw)

	dst := fragbuf.New()
	zw.Reset(dst)

	if _, err := io.Copy(zw, buf.Reader()); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}

	return dst, nil
}

// Uncompress decompresses a gzip member, verifying the trailing CRC32 and
// size fields. Invalid headers, corrupt deflate streams, and checksum
// mismatches yield an error wrapping errs.ErrMalformedInput.
func (GzipCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	zr, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(zr)

	if err := zr.Reset(buf.Reader()); err != nil {
		return nil, fmt.Errorf("%w: gzip: %w", errs.ErrMalformedInput, err)
	}

	dst := fragbuf.New()
	if _, err := dst.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("%w: gzip: %w", errs.ErrMalformedInput, err)
	}

	return dst, nil
}
