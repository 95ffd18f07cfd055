// Package endian provides byte order utilities for binary encoding and decoding.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so that framing code
// can read fixed-width fields and append them to byte slices through one
// value.
//
// Compressed stream framings fix their byte order on the wire: the
// java-compatible snappy framing stores lengths big-endian while the snappy
// container framing stores them little-endian. Code that parses or emits
// such fields picks the matching engine once and never consults the host
// byte order.
//
// The returned EndianEngine instances are immutable and stateless, and are
// safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian from the
// standard library, so values of this type interoperate with existing code
// that expects either interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
