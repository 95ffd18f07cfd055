package compress

import "github.com/freef4ll/redpanda/fragbuf"

// NoopCodec provides a no-operation codec that passes payloads through
// unchanged.
//
// This codec is useful for:
//   - Batches whose payloads are already compressed or do not compress
//   - Testing and benchmarking scenarios that measure pipeline overhead
//   - Development environments where compression is disabled for debugging
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a new no-op codec that passes payloads through.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns a zero-copy view of the whole input.
//
// The returned buffer shares storage with the input through fragbuf sharing
// semantics, so no bytes are copied and the shared content stays stable even
// if either buffer is appended to afterwards.
func (NoopCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	return buf.Share(0, buf.Len()), nil
}

// Uncompress returns a zero-copy view of the whole input.
func (NoopCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	return buf.Share(0, buf.Len()), nil
}
