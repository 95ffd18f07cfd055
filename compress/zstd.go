package compress

// zstdDefaultLevel is the Zstandard compression level used by the block
// codec and by new streaming sessions unless overridden. Level 3 is the
// upstream default and balances ratio against throughput for batch payloads.
const zstdDefaultLevel = 3

// ZstdCodec provides Zstandard block compression for batch payloads.
//
// Each Compress call produces one self-contained zstd frame, so payloads are
// interchangeable with any conforming Zstandard implementation. Two builds
// exist behind build tags: with cgo the codec binds libzstd through
// valyala/gozstd, and without cgo it falls back to the pure Go
// klauspost/compress/zstd implementation. The frames produced by either
// build decode under the other.
//
// Performance characteristics:
//   - Compression ratio: 3:1 to 10:1 for text-like batch payloads
//   - Decompression is several times faster than compression
//   - Encoder and decoder state is pooled, so steady-state operation
//     allocates only for output
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd block codec with default settings.
//
// Example:
//
//	codec := NewZstdCodec()
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
