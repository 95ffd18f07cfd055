// Package redpanda provides the compression layer of a high-throughput log
// storage engine: fragmented buffers for assembling batch payloads without
// copying, and a set of block and streaming codecs that operate directly on
// those buffers.
//
// Payloads in the storage path are assembled incrementally, sliced into
// ranges, and handed between subsystems. Representing them as a single
// contiguous slice would force a reallocation and copy on every growth step,
// so the fragbuf package keeps payloads as chains of fragments and the
// compress package consumes and produces such chains natively.
//
// # Core Features
//
//   - Fragmented buffers that grow without relocating previously written bytes
//   - Zero-copy shared views (fragbuf.Buffer.Share) for slicing batches out of
//     larger payloads
//   - Block codecs: gzip, LZ4 frame, snappy in both the xerial framing and the
//     canonical container framing, and zstd
//   - Reusable streaming zstd sessions (compress.StreamZstd) for long-lived
//     producers
//   - Uniform error taxonomy: undecodable input always wraps
//     errs.ErrMalformedInput
//   - Fragmentation-independent xxHash64 content hashing
//
// # Basic Usage
//
// Compressing a payload assembled from appends:
//
//	import (
//	    "github.com/freef4ll/redpanda"
//	    "github.com/freef4ll/redpanda/format"
//	)
//
//	buf := redpanda.NewBuffer()
//	for _, record := range records {
//	    buf.Append(record)
//	}
//
//	compressed, err := redpanda.Compress(format.CompressionZstd, buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := redpanda.Uncompress(format.CompressionZstd, compressed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Working with plain byte slices:
//
//	compressed, err := redpanda.CompressBytes(format.CompressionLZ4, data)
//	restored, err := redpanda.UncompressBytes(format.CompressionLZ4, compressed)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fragbuf and
// compress packages, simplifying the most common use cases. For fine-grained
// control (shared views, streaming sessions, compression statistics), use
// those packages directly.
package redpanda

import (
	"github.com/freef4ll/redpanda/compress"
	"github.com/freef4ll/redpanda/format"
	"github.com/freef4ll/redpanda/fragbuf"
)

// NewBuffer creates an empty fragmented buffer.
//
// The buffer grows in fragments as data is appended, never relocating bytes
// already written. See the fragbuf package for the full API, including shared
// views, trimming, and streaming I/O.
//
// Example:
//
//	buf := redpanda.NewBuffer()
//	buf.Append(header)
//	buf.Append(payload)
func NewBuffer() *fragbuf.Buffer {
	return fragbuf.New()
}

// NewBufferFromBytes creates a buffer that adopts the given slice as its only
// fragment without copying.
//
// The buffer takes ownership of the slice; the caller must not modify it
// afterwards.
//
// Parameters:
//   - data: The slice to adopt (may be nil or empty)
//
// Returns:
//   - *fragbuf.Buffer: A buffer whose content is exactly data.
func NewBufferFromBytes(data []byte) *fragbuf.Buffer {
	return fragbuf.FromBytes(data)
}

// Compress compresses a buffer with the named algorithm.
//
// The input buffer's content is not modified and the buffer may be reused
// afterwards. The returned buffer is newly produced and owned by the caller.
//
// Parameters:
//   - compressionType: One of the format.Compression* constants
//   - buf: The payload to compress
//
// Returns:
//   - *fragbuf.Buffer: The compressed payload.
//   - error: errs.ErrUnknownCompression if the type has no codec.
//
// Example:
//
//	compressed, err := redpanda.Compress(format.CompressionZstd, buf)
func Compress(compressionType format.CompressionType, buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(buf)
}

// Uncompress decompresses a buffer previously produced by Compress with the
// same algorithm.
//
// Parameters:
//   - compressionType: One of the format.Compression* constants
//   - buf: The compressed payload
//
// Returns:
//   - *fragbuf.Buffer: The original payload.
//   - error: errs.ErrUnknownCompression if the type has no codec, or an error
//     wrapping errs.ErrMalformedInput if the payload cannot be decoded.
//
// Example:
//
//	restored, err := redpanda.Uncompress(format.CompressionZstd, compressed)
func Uncompress(compressionType format.CompressionType, buf *fragbuf.Buffer) (*fragbuf.Buffer, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Uncompress(buf)
}

// CompressBytes compresses a plain byte slice with the named algorithm.
//
// This is a convenience wrapper for callers that do not work with fragmented
// buffers. The input slice is adopted without copying and must not be
// modified during the call.
//
// Parameters:
//   - compressionType: One of the format.Compression* constants
//   - data: The payload to compress
//
// Returns:
//   - []byte: The compressed payload.
//   - error: errs.ErrUnknownCompression if the type has no codec.
func CompressBytes(compressionType format.CompressionType, data []byte) ([]byte, error) {
	compressed, err := Compress(compressionType, fragbuf.FromBytes(data))
	if err != nil {
		return nil, err
	}

	return compressed.Bytes(), nil
}

// UncompressBytes decompresses a plain byte slice previously produced by
// CompressBytes with the same algorithm.
//
// Parameters:
//   - compressionType: One of the format.Compression* constants
//   - data: The compressed payload
//
// Returns:
//   - []byte: The original payload.
//   - error: errs.ErrUnknownCompression if the type has no codec, or an error
//     wrapping errs.ErrMalformedInput if the payload cannot be decoded.
func UncompressBytes(compressionType format.CompressionType, data []byte) ([]byte, error) {
	restored, err := Uncompress(compressionType, fragbuf.FromBytes(data))
	if err != nil {
		return nil, err
	}

	return restored.Bytes(), nil
}

// NewStreamZstd creates a reusable streaming zstd session.
//
// A session keeps its compression and decompression contexts alive across
// calls, which avoids per-call context setup on hot paths. Sessions are not
// safe for concurrent use; create one per goroutine.
//
// The produced frames are self-contained and interchangeable with the block
// zstd codec in both directions.
//
// Parameters:
//   - opts: Optional configuration (see compress.WithLevel)
//
// Returns:
//   - *compress.StreamZstd: The created session.
//
// Example:
//
//	session := redpanda.NewStreamZstd(compress.WithLevel(5))
//	compressed, err := session.Compress(buf)
func NewStreamZstd(opts ...compress.StreamZstdOption) *compress.StreamZstd {
	return compress.NewStreamZstd(opts...)
}
