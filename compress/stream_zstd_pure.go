//go:build !cgo

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// newStreamEncoder creates the pure Go session encoder. The encoder is bound
// to its destination later through Reset, once per compressed payload.
func newStreamEncoder(level int) streamEncoder {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderCRC(false),
		zstd.WithZeroFrames(true), // Empty input must still produce a valid frame
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		// This should never happen with valid options
		panic(fmt.Sprintf("failed to create stream zstd encoder: %v", err))
	}

	return encoder
}

// newStreamDecoder creates the pure Go session decoder.
func newStreamDecoder() streamDecoder {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		// This should never happen with valid options
		panic(fmt.Sprintf("failed to create stream zstd decoder: %v", err))
	}

	return decoder
}
