//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// Compress compresses the input buffer into one Zstandard frame through
// libzstd. gozstd maintains its own cctx pools, so no pooling is needed here.
func (ZstdCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	src, cleanup := contiguous(buf)
	defer cleanup()

	return fragbuf.FromBytes(gozstd.CompressLevel(nil, src, zstdDefaultLevel)), nil
}

// Uncompress decompresses a Zstandard frame through libzstd.
func (ZstdCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	// libzstd reads a zero-byte input as zero frames and succeeds. A
	// payload with no frame header is malformed, not empty.
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: zstd: empty input", errs.ErrMalformedInput)
	}

	src, cleanup := contiguous(buf)
	defer cleanup()

	decompressed, err := gozstd.Decompress(nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrMalformedInput, err)
	}

	return fragbuf.FromBytes(decompressed), nil
}
