package fragbuf

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// fragment is one contiguous run of payload bytes. The data slice length is
// the number of valid bytes and its capacity is the space reserved for
// appends. A frozen fragment is visible through at least one shared view or
// Reader snapshot and its valid bytes must never be rewritten or extended in
// place.
type fragment struct {
	data   []byte
	frozen bool
}

// Buffer is a byte sequence stored as an ordered list of fragments.
//
// A buffer grows by appending fragments whose capacities follow AllocTable,
// so building a large payload never reallocates or copies previously written
// bytes. Share returns zero-copy views of a byte range, and Reader streams
// the content fragment by fragment.
//
// The zero value is an empty buffer ready for use.
//
// A Buffer is not safe for concurrent mutation. Distinct buffers are
// independent even when they share fragment memory through Share.
type Buffer struct {
	frags    []fragment
	size     int
	allocIdx int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes returns a buffer that adopts p as its single fragment without
// copying. The caller must not modify p afterwards. A nil or empty p yields
// an empty buffer.
func FromBytes(p []byte) *Buffer {
	if len(p) == 0 {
		return &Buffer{}
	}

	// Capping the capacity keeps later appends out of whatever storage
	// may follow p in its backing array.
	return &Buffer{
		frags: []fragment{{data: p[:len(p):len(p)]}},
		size:  len(p),
	}
}

// Len returns the number of payload bytes in the buffer.
func (b *Buffer) Len() int {
	return b.size
}

// FragmentCount returns the number of fragments holding the payload.
func (b *Buffer) FragmentCount() int {
	return len(b.frags)
}

// Fragments returns an iterator over the buffer's fragments in payload
// order. Every yielded slice is non-empty. The slices alias the buffer's
// storage and must not be modified.
func (b *Buffer) Fragments() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := range b.frags {
			if !yield(b.frags[i].data) {
				return
			}
		}
	}
}

// writableTail returns the last fragment if it can still accept bytes, or
// nil if the buffer is empty, the tail is full, or the tail is frozen by a
// shared view or Reader snapshot.
func (b *Buffer) writableTail() *fragment {
	if len(b.frags) == 0 {
		return nil
	}

	f := &b.frags[len(b.frags)-1]
	if f.frozen || len(f.data) == cap(f.data) {
		return nil
	}

	return f
}

// grow appends a fresh writable fragment sized by the allocation table.
func (b *Buffer) grow() *fragment {
	b.frags = append(b.frags, fragment{data: make([]byte, 0, allocSizeAt(b.allocIdx))})
	b.allocIdx++

	return &b.frags[len(b.frags)-1]
}

// Append copies p onto the end of the buffer. The bytes fill the spare
// capacity of the tail fragment first and spill into new fragments sized by
// the allocation table. Previously written fragments are never moved.
func (b *Buffer) Append(p []byte) {
	for len(p) > 0 {
		f := b.writableTail()
		if f == nil {
			f = b.grow()
		}

		n := copy(f.data[len(f.data):cap(f.data)], p)
		f.data = f.data[:len(f.data)+n]
		b.size += n
		p = p[n:]
	}
}

// AppendString copies s onto the end of the buffer. It behaves exactly like
// Append without converting s to a byte slice first.
func (b *Buffer) AppendString(s string) {
	for len(s) > 0 {
		f := b.writableTail()
		if f == nil {
			f = b.grow()
		}

		n := copy(f.data[len(f.data):cap(f.data)], s)
		f.data = f.data[:len(f.data)+n]
		b.size += n
		s = s[n:]
	}
}

// Write implements io.Writer by appending p to the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Append(p)

	return len(p), nil
}

// ReadFrom implements io.ReaderFrom. It reads r until EOF, filling fragment
// spare capacity directly so no intermediate copy is made. It returns the
// number of bytes appended and the first non-EOF error encountered.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	for {
		f := b.writableTail()
		if f == nil {
			f = b.grow()
		}

		n, err := r.Read(f.data[len(f.data):cap(f.data)])
		f.data = f.data[:len(f.data)+n]
		b.size += n
		total += int64(n)

		if err != nil {
			b.dropEmptyTail()
			if err == io.EOF {
				return total, nil
			}

			return total, err
		}
	}
}

// dropEmptyTail removes a zero-length tail fragment left behind when a
// reader hit EOF before producing any bytes for it.
func (b *Buffer) dropEmptyTail() {
	if n := len(b.frags); n > 0 && len(b.frags[n-1].data) == 0 {
		b.frags = b.frags[:n-1]
	}
}

// TrimBack discards the last n bytes of the buffer. Fully trimmed fragments
// are released and a partially trimmed tail keeps its storage, so a
// subsequent append may reuse the reclaimed capacity unless the tail is
// frozen by a shared view or Reader snapshot.
//
// TrimBack panics if n is negative or larger than the buffer length.
func (b *Buffer) TrimBack(n int) {
	if n < 0 || n > b.size {
		panic(fmt.Sprintf("fragbuf: TrimBack(%d) out of range for buffer of %d bytes", n, b.size))
	}

	b.size -= n
	for n > 0 {
		last := &b.frags[len(b.frags)-1]
		if len(last.data) <= n {
			n -= len(last.data)
			b.frags = b.frags[:len(b.frags)-1]

			continue
		}

		last.data = last.data[:len(last.data)-n]
		n = 0
	}
}

// Share returns a zero-copy view of length bytes starting at offset. The
// view is a regular buffer whose fragments alias the source storage.
//
// Both handles keep the shared bytes stable: fragments visible through a
// view are frozen, so appends on either buffer go to fresh fragments and
// never rewrite shared storage. Trimming one buffer does not change what the
// other observes. The shared storage is released only when every buffer
// referencing it is garbage.
//
// Share panics if the range [offset, offset+length) does not lie within the
// buffer.
func (b *Buffer) Share(offset, length int) *Buffer {
	if offset < 0 || length < 0 || offset+length > b.size {
		panic(fmt.Sprintf("fragbuf: Share(%d, %d) out of range for buffer of %d bytes", offset, length, b.size))
	}

	view := &Buffer{size: length}
	if length == 0 {
		return view
	}

	remaining := length
	pos := 0

	for i := range b.frags {
		f := &b.frags[i]
		if pos+len(f.data) <= offset {
			pos += len(f.data)

			continue
		}

		start := 0
		if offset > pos {
			start = offset - pos
		}

		take := min(len(f.data)-start, remaining)
		end := start + take

		f.frozen = true
		view.frags = append(view.frags, fragment{
			data:   f.data[start:end:end],
			frozen: true,
		})

		remaining -= take
		if remaining == 0 {
			break
		}

		pos += len(f.data)
	}

	return view
}

// Bytes returns the buffer content as a single contiguous slice.
//
// For a buffer of at most one fragment the returned slice aliases the
// buffer's storage and must not be modified. A multi-fragment buffer is
// copied into a fresh slice.
func (b *Buffer) Bytes() []byte {
	switch len(b.frags) {
	case 0:
		return nil
	case 1:
		return b.frags[0].data
	}

	out := make([]byte, 0, b.size)
	for i := range b.frags {
		out = append(out, b.frags[i].data...)
	}

	return out
}

// Clone returns a deep copy of the buffer. The copy shares no storage with
// the original and its fragment layout follows the allocation table rather
// than the layout of the source.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{}
	for i := range b.frags {
		out.Append(b.frags[i].data)
	}

	return out
}

// Equal reports whether two buffers hold the same byte sequence. Fragment
// layout does not participate in the comparison, so buffers with different
// fragmentation compare equal whenever their logical content matches.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.size != other.size {
		return false
	}

	var (
		ai, bi int
		ao, bo int
	)

	remaining := b.size
	for remaining > 0 {
		fa := b.frags[ai].data[ao:]
		fb := other.frags[bi].data[bo:]

		n := min(len(fa), len(fb))
		if !bytes.Equal(fa[:n], fb[:n]) {
			return false
		}

		remaining -= n

		ao += n
		if ao == len(b.frags[ai].data) {
			ai++
			ao = 0
		}

		bo += n
		if bo == len(other.frags[bi].data) {
			bi++
			bo = 0
		}
	}

	return true
}

// Hash64 returns the xxHash64 digest of the buffer content. The digest
// depends only on the byte sequence, not on fragment layout, so it can stand
// in for deep comparison when indexing payloads.
func (b *Buffer) Hash64() uint64 {
	d := xxhash.New()
	for i := range b.frags {
		_, _ = d.Write(b.frags[i].data)
	}

	return d.Sum64()
}
