//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// gozstdEncoder adapts gozstd.Writer to the streamEncoder interface. The
// underlying cctx survives Reset and Close, so one adapter serves a whole
// session.
type gozstdEncoder struct {
	zw    *gozstd.Writer
	level int
}

func (e *gozstdEncoder) Write(p []byte) (int, error) {
	return e.zw.Write(p)
}

func (e *gozstdEncoder) Reset(w io.Writer) {
	e.zw.Reset(w, nil, e.level)
}

func (e *gozstdEncoder) Close() error {
	return e.zw.Close()
}

// gozstdDecoder adapts gozstd.Reader to the streamDecoder interface.
type gozstdDecoder struct {
	zr *gozstd.Reader
}

func (d *gozstdDecoder) Read(p []byte) (int, error) {
	return d.zr.Read(p)
}

func (d *gozstdDecoder) Reset(r io.Reader) error {
	d.zr.Reset(r, nil)

	return nil
}

// newStreamEncoder creates the libzstd session encoder. The writer is bound
// to its destination later through Reset, once per compressed payload.
func newStreamEncoder(level int) streamEncoder {
	return &gozstdEncoder{
		zw:    gozstd.NewWriterLevel(nil, level),
		level: level,
	}
}

// newStreamDecoder creates the libzstd session decoder.
func newStreamDecoder() streamDecoder {
	return &gozstdDecoder{
		zr: gozstd.NewReader(nil),
	}
}
