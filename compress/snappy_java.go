package compress

import (
	"bytes"
	"fmt"

	xerial "github.com/eapache/go-xerial-snappy"
	"github.com/golang/snappy"

	"github.com/freef4ll/redpanda/endian"
	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// The java-compatible snappy stream framing, as produced by the
// snappy-java library and expected by JVM consumers: an 8-byte magic,
// two big-endian version fields, then a sequence of chunks, each a
// big-endian length prefix followed by one raw snappy block.
var snappyJavaMagic = []byte{0x82, 'S', 'N', 'A', 'P', 'P', 'Y', 0x00}

const (
	snappyJavaHeaderLen        = 16
	snappyJavaCompatVersion    = 1
	snappyJavaChunkPrefixBytes = 4
)

// SnappyJavaCodec compresses payloads into the java-compatible snappy
// stream framing and restores them.
//
// Decoding is strict: the 16-byte stream header must be present and every
// chunk must be a well-formed raw snappy block. Payloads in the canonical
// snappy container framing are rejected as malformed rather than passed to a
// fallback path.
type SnappyJavaCodec struct{}

var _ Codec = (*SnappyJavaCodec)(nil)

// NewSnappyJavaCodec creates a new java-compatible snappy codec.
func NewSnappyJavaCodec() SnappyJavaCodec {
	return SnappyJavaCodec{}
}

// Compress compresses the input buffer into the java-compatible framing,
// splitting the content into 32KiB chunks. An empty input yields the bare
// 16-byte stream header.
func (SnappyJavaCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	src, cleanup := contiguous(buf)
	defer cleanup()

	return fragbuf.FromBytes(xerial.EncodeStream(nil, src)), nil
}

// Uncompress decompresses a java-compatible snappy stream. A missing or
// mismatched header, an unsupported compatibility version, a truncated or
// oversized chunk length, and a corrupt snappy block all yield an error
// wrapping errs.ErrMalformedInput.
func (SnappyJavaCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	src, cleanup := contiguous(buf)
	defer cleanup()

	if len(src) < snappyJavaHeaderLen || !bytes.Equal(src[:len(snappyJavaMagic)], snappyJavaMagic) {
		return nil, fmt.Errorf("%w: snappy-java: missing stream header", errs.ErrMalformedInput)
	}

	engine := endian.GetBigEndianEngine()

	// The version field is informational; only the compatibility version
	// gates decoding, mirroring the reference implementation.
	if compat := engine.Uint32(src[12:16]); compat != snappyJavaCompatVersion {
		return nil, fmt.Errorf("%w: snappy-java: unsupported compatible version %d", errs.ErrMalformedInput, compat)
	}

	dst := fragbuf.New()

	body := src[snappyJavaHeaderLen:]
	for len(body) > 0 {
		if len(body) < snappyJavaChunkPrefixBytes {
			return nil, fmt.Errorf("%w: snappy-java: truncated chunk length", errs.ErrMalformedInput)
		}

		chunkLen := int(engine.Uint32(body[:snappyJavaChunkPrefixBytes]))
		body = body[snappyJavaChunkPrefixBytes:]

		if chunkLen <= 0 || chunkLen > len(body) {
			return nil, fmt.Errorf("%w: snappy-java: chunk length %d exceeds remaining %d bytes", errs.ErrMalformedInput, chunkLen, len(body))
		}

		decoded, err := snappy.Decode(nil, body[:chunkLen])
		if err != nil {
			return nil, fmt.Errorf("%w: snappy-java: %w", errs.ErrMalformedInput, err)
		}

		dst.Append(decoded)
		body = body[chunkLen:]
	}

	return dst, nil
}
