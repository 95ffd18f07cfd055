//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/fragbuf"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),   // Match the frame layout of the cgo build
			zstd.WithZeroFrames(true),    // Empty input must still produce a valid frame
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress compresses the input buffer into one Zstandard frame.
// Uses a pooled encoder for better performance (eliminates allocation overhead).
func (ZstdCodec) Compress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	src, cleanup := contiguous(buf)
	defer cleanup()

	// Get encoder from pool (reuses "warmed up" encoder)
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return fragbuf.FromBytes(encoder.EncodeAll(src, nil)), nil
}

// Uncompress decompresses a Zstandard frame.
// Uses a pooled decoder for better performance (eliminates allocation overhead).
func (ZstdCodec) Uncompress(buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	// DecodeAll reads a zero-byte input as zero frames and succeeds. A
	// payload with no frame header is malformed, not empty.
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: zstd: empty input", errs.ErrMalformedInput)
	}

	src, cleanup := contiguous(buf)
	defer cleanup()

	// Get decoder from pool (reuses "warmed up" decoder)
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrMalformedInput, err)
	}

	return fragbuf.FromBytes(decompressed), nil
}
