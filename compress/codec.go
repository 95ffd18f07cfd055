package compress

import (
	"fmt"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/format"
	"github.com/freef4ll/redpanda/fragbuf"
	"github.com/freef4ll/redpanda/internal/pool"
)

// Compressor compresses batch payloads held in fragmented buffers.
//
// Payloads arrive as *fragbuf.Buffer values assembled by the write path,
// usually fragmented and often shared views of larger batches. Implementations
// must treat the input as read-only and must produce output that depends only
// on the logical byte sequence, never on how the input happens to be split
// into fragments.
type Compressor interface {
	// Compress compresses the input buffer and returns the compressed result.
	//
	// Memory management:
	//   - The returned buffer is newly produced and owned by the caller
	//   - The input buffer content is never modified
	//   - Internal scratch buffers and codec state may be reused across calls
	Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error)
}

// Decompressor restores batch payloads previously produced by the matching
// Compressor.
type Decompressor interface {
	// Uncompress decompresses the input buffer and returns the original
	// content.
	//
	// The input must be a complete, well-formed payload of the codec's
	// format. Anything else, including zero-byte inputs, truncated frames,
	// corrupt blocks, and payloads produced by a different framing
	// variant, yields an error wrapping errs.ErrMalformedInput.
	//
	// Memory management:
	//   - The returned buffer is newly produced and owned by the caller
	//   - The input buffer content is never modified
	//   - Internal scratch buffers and codec state may be reused across calls
	Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error)
}

// Codec combines both compression and decompression capabilities.
//
// All built-in codecs are stateless values that are safe for concurrent use;
// shared scratch state lives in internal pools.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes one compression operation for monitoring and
// logging.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the payload size before compression.
	OriginalSize int64

	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// StatsFor builds compression statistics from the original and compressed
// payloads of one operation.
func StatsFor(algorithm format.CompressionType, original, compressed *fragbuf.Buffer) CompressionStats {
	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(original.Len()),
		CompressedSize: int64(compressed.Len()),
	}
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Values greater than
// 1.0 indicate framing overhead exceeded the savings, which is expected for
// tiny or incompressible payloads.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate better compression.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, LZ4, SnappyJava, Snappy, or Zstd)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnknownCompression if the type has no codec
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoopCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionSnappyJava:
		return NewSnappyJavaCodec(), nil
	case format.CompressionSnappy:
		return NewSnappyCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnknownCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:       NewNoopCodec(),
	format.CompressionGzip:       NewGzipCodec(),
	format.CompressionLZ4:        NewLZ4Codec(),
	format.CompressionSnappyJava: NewSnappyJavaCodec(),
	format.CompressionSnappy:     NewSnappyCodec(),
	format.CompressionZstd:       NewZstdCodec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}

// contiguous returns the buffer content as a single slice for codecs whose
// underlying library works on whole blocks rather than streams. A buffer of
// at most one fragment is returned as-is with a no-op cleanup; otherwise the
// content is gathered into a pooled scratch slice that the cleanup returns
// to the pool.
//
// The returned slice is only valid until cleanup is called and must be
// treated as read-only.
func contiguous(buf *fragbuf.Buffer) ([]byte, func()) {
	if buf.FragmentCount() <= 1 {
		return buf.Bytes(), func() {}
	}

	scratch, cleanup := pool.GetByteSlice(buf.Len())
	n := 0
	for frag := range buf.Fragments() {
		n += copy(scratch[n:], frag)
	}

	return scratch, cleanup
}
