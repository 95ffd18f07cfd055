// Package fragbuf provides a fragmented byte buffer for assembling,
// slicing, and streaming payloads without copying or moving bytes that have
// already been written.
//
// # Overview
//
// A Buffer stores its content as an ordered list of fragments instead of one
// contiguous slice. Appending never relocates existing bytes: new data fills
// the spare capacity of the tail fragment and spills into fresh fragments
// whose capacities follow a fixed growth table. This keeps assembly of large
// payloads free of the copy-on-grow behavior of bytes.Buffer and keeps
// allocations small for small payloads.
//
//	buf := fragbuf.New()
//	buf.Append(header)
//	buf.Append(body)
//	view := buf.Share(0, buf.Len()) // zero-copy view of the whole payload
//
// # Fragment Growth
//
// Fragment capacities walk AllocTable: the first allocation is
// DefaultFragmentSize and each later one is roughly 1.5x the previous,
// saturating at MaxFragmentSize. AllocTable returns a copy of the table so
// tests can target payload sizes that land exactly on fragment boundaries.
//
// # Sharing
//
// Share returns a view buffer whose fragments alias the source storage.
// Creating a view freezes the overlapped source fragments: neither handle
// will rewrite or extend frozen storage in place, so the bytes observed
// through a view stay stable while the source keeps growing or trimming.
// Storage is reclaimed by the garbage collector once no buffer references
// it.
//
// # Streaming
//
// Buffer implements io.Writer and io.ReaderFrom, and Reader implements
// io.Reader and io.WriterTo. Creating a Reader freezes the buffer's
// fragments just as Share does, so the snapshot stays stable under later
// appends and trims. io.Copy between them and an encoder or decoder moves
// data one fragment at a time with no intermediate scratch buffer:
//
//	dst := fragbuf.New()
//	zw.Reset(dst)
//	_, err := io.Copy(zw, buf.Reader())
//
// # Equality and Hashing
//
// Equal and Hash64 operate on the logical byte sequence. Two buffers with
// identical content compare equal and hash identically regardless of how
// that content is split into fragments.
//
// # Concurrency
//
// A Buffer is not safe for concurrent use when any goroutine mutates it.
// Distinct buffers can be used concurrently, including views of the same
// source created beforehand.
package fragbuf
