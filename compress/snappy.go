package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/golang/snappy"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// snappyStreamID is the stream identifier chunk that opens every payload in
// the snappy container framing: chunk type 0xff, little-endian length 6, and
// the magic body "sNaPpY".
var snappyStreamID = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}

// snappyWriterPool pools snappy.Writer instances configured for the framed
// container format.
var snappyWriterPool = sync.Pool{
	New: func() any {
		return snappy.NewBufferedWriter(nil)
	},
}

// snappyReaderPool pools snappy.Reader instances for the framed container
// format.
var snappyReaderPool = sync.Pool{
	New: func() any {
		return snappy.NewReader(nil)
	},
}

// SnappyCodec compresses payloads into the canonical snappy container
// framing: a stream identifier chunk followed by checksummed compressed and
// uncompressed data chunks.
//
// This framing is not interchangeable with the java-compatible framing
// handled by SnappyJavaCodec. Either decoder rejects the other's output as
// malformed.
type SnappyCodec struct{}

var _ Codec = (*SnappyCodec)(nil)

// NewSnappyCodec creates a new snappy container codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress compresses the input buffer into the snappy container framing.
// The output always begins with the stream identifier chunk, even for an
// empty input.
func (SnappyCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	zw, _ := snappyWriterPool.Get().(*snappy.Writer)
	defer snappyWriterPool.Put(zw)

	dst := fragbuf.New()
	zw.Reset(dst)

	if _, err := io.Copy(zw, buf.Reader()); err != nil {
		return nil, fmt.Errorf("snappy compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("snappy compress: %w", err)
	}

	// The writer emits the stream identifier lazily with the first data
	// chunk, so an empty input produces no output at all. Emit the
	// identifier explicitly to keep the result a well-formed container.
	if dst.Len() == 0 {
		dst.Append(snappyStreamID)
	}

	return dst, nil
}

// Uncompress decompresses a snappy container stream. A zero-byte payload or
// one that does not begin with the stream identifier chunk, including one
// produced by the java-compatible framing, yields an error wrapping
// errs.ErrMalformedInput, as do corrupt chunks and checksum mismatches.
func (SnappyCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	// The container reader reports EOF before the stream identifier as a
	// clean empty stream, so zero-byte payloads are rejected here.
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: snappy: empty input", errs.ErrMalformedInput)
	}

	zr, _ := snappyReaderPool.Get().(*snappy.Reader)
	defer snappyReaderPool.Put(zr)

	zr.Reset(buf.Reader())

	dst := fragbuf.New()
	if _, err := dst.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("%w: snappy: %w", errs.ErrMalformedInput, err)
	}

	return dst, nil
}
