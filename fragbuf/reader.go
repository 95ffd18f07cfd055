package fragbuf

import "io"

// Reader streams a buffer's content from the first byte to the last. It
// implements io.Reader and io.WriterTo, so io.Copy moves the payload one
// fragment at a time without a scratch buffer.
//
// A Reader snapshots the fragment list when created and freezes the
// underlying fragments the same way Share does. The snapshot aliases
// fragment storage, but appending to or trimming the source buffer
// afterwards lands in fresh fragments and never rewrites the bytes an
// existing Reader yields.
type Reader struct {
	frags [][]byte
	idx   int
	off   int
}

// Reader returns a new Reader positioned at the first byte of the buffer.
// The buffer's fragments are frozen so their bytes stay stable for the
// lifetime of the snapshot.
func (b *Buffer) Reader() *Reader {
	frags := make([][]byte, len(b.frags))
	for i := range b.frags {
		b.frags[i].frozen = true
		frags[i] = b.frags[i].data
	}

	return &Reader{frags: frags}
}

// Read implements io.Reader. It copies up to len(p) bytes into p, never
// crossing a fragment boundary in a single call, and returns io.EOF once the
// content is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if r.idx >= len(r.frags) {
		return 0, io.EOF
	}

	n := copy(p, r.frags[r.idx][r.off:])
	r.off += n
	if r.off == len(r.frags[r.idx]) {
		r.idx++
		r.off = 0
	}

	return n, nil
}

// WriteTo implements io.WriterTo. It writes the unread remainder of the
// content to w, one fragment per Write call, and returns the number of bytes
// written.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for r.idx < len(r.frags) {
		frag := r.frags[r.idx][r.off:]
		n, err := w.Write(frag)
		total += int64(n)
		r.off += n

		if err != nil {
			return total, err
		}
		if n < len(frag) {
			return total, io.ErrShortWrite
		}

		r.idx++
		r.off = 0
	}

	return total, nil
}

// Len returns the number of unread bytes remaining in the reader.
func (r *Reader) Len() int {
	if r.idx >= len(r.frags) {
		return 0
	}

	n := len(r.frags[r.idx]) - r.off
	for i := r.idx + 1; i < len(r.frags); i++ {
		n += len(r.frags[i])
	}

	return n
}
