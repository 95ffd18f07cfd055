// Package compress provides the block codecs and streaming sessions that
// compress and restore batch payloads held in fragmented buffers.
//
// # Compression Types
//
// Six compression types are supported, selected through format.CompressionType:
//
//   - None: pass-through, zero-copy in both directions
//   - Gzip: one gzip (RFC 1952) member per payload
//   - LZ4: one LZ4 frame per payload
//   - SnappyJava: the snappy stream framing used by JVM clients
//   - Snappy: the canonical snappy container framing
//   - Zstd: one Zstandard frame per payload
//
// Every codec produces standard output for its format: payloads written here
// decode under any conforming implementation of the same format, and vice
// versa.
//
// # Usage
//
// Codecs are obtained from the registry and applied to buffers:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
//
//	restored, err := codec.Uncompress(compressed)
//	if err != nil {
//		return err
//	}
//
// CreateCodec builds a codec for a compression type carried in a batch
// header and reports the consuming component in its error messages:
//
//	codec, err := compress.CreateCodec(hdr.Compression, "batch reader")
//
// # Snappy Framing Variants
//
// The two snappy types share the raw snappy block format but wrap it in
// incompatible stream framings. SnappyJava frames blocks with an 8-byte
// magic, big-endian version fields, and big-endian length prefixes, matching
// the snappy-java library. Snappy uses the canonical container framing with
// a stream identifier chunk and per-chunk checksums. The two are never
// interchangeable: each decoder verifies its own header and rejects the
// other framing as malformed input instead of guessing.
//
// # Streaming Sessions
//
// StreamZstd keeps Zstandard encoder and decoder contexts alive across
// calls. Each call still produces or consumes one self-contained frame that
// the block ZstdCodec understands, so sessions change the cost profile, not
// the wire format:
//
//	session := compress.NewStreamZstd(compress.WithLevel(5))
//	for _, payload := range payloads {
//		compressed, err := session.Compress(payload)
//		...
//	}
//
// # Input Fragmentation
//
// Compressed output depends only on the logical byte sequence of the input.
// A payload held in one fragment, split across thirty fragments, or viewed
// through fragbuf.Buffer.Share compresses to equivalent output that restores
// to the same content. Codecs backed by streaming libraries consume input
// fragment by fragment; block-oriented codecs gather fragmented input into a
// pooled scratch slice first.
//
// # Error Handling
//
// Uncompress validates its input and reports anything that is not a
// well-formed payload of the expected format, including truncated frames,
// corrupt blocks, checksum mismatches, and cross-variant snappy input, with
// an error wrapping errs.ErrMalformedInput:
//
//	restored, err := codec.Uncompress(compressed)
//	if errors.Is(err, errs.ErrMalformedInput) {
//		// quarantine the batch
//	}
//
// Compress does not fail on any input content; its errors only surface
// internal encoder failures.
//
// # Thread Safety
//
// The stateless codecs returned by GetCodec and CreateCodec are safe for
// concurrent use on distinct buffers; shared scratch state lives in
// sync.Pool instances. StreamZstd sessions are single-goroutine; create one
// per worker.
package compress
