// Package format defines the wire-level identifiers shared by the encoding
// and decoding layers.
package format

// CompressionType identifies the compressed representation of a payload.
//
// The value is persisted in batch headers, so existing constants must never
// be renumbered. New algorithms append new values.
type CompressionType byte

const (
	// CompressionNone indicates an uncompressed payload.
	CompressionNone CompressionType = 0x1
	// CompressionGzip indicates a gzip (RFC 1952) member stream.
	CompressionGzip CompressionType = 0x2
	// CompressionLZ4 indicates an LZ4 frame.
	CompressionLZ4 CompressionType = 0x3
	// CompressionSnappyJava indicates the java-compatible snappy stream
	// framing used by the JVM Kafka client ecosystem.
	CompressionSnappyJava CompressionType = 0x4
	// CompressionSnappy indicates the canonical snappy container framing.
	CompressionSnappy CompressionType = 0x5
	// CompressionZstd indicates a zstandard frame.
	CompressionZstd CompressionType = 0x6
)

// String returns a human-readable name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappyJava:
		return "SnappyJava"
	case CompressionSnappy:
		return "Snappy"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionZstd
}
