package record

import (
	"fmt"

	"github.com/arloliu/flowrec/endian"
	"github.com/arloliu/flowrec/errs"
)

// Writer fills a fixed-size record buffer field by field, tracking the
// running offset so no caller computes absolute offsets by hand.
type Writer struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewWriter returns a Writer over buf. The record is complete when exactly
// len(buf) bytes have been written.
func NewWriter(buf []byte) *Writer {
	return &Writer{
		buf:    buf,
		engine: endian.GetNetworkEngine(),
	}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.off
}

// Remaining returns the number of bytes still to be written.
func (w *Writer) Remaining() int {
	return len(w.buf) - w.off
}

func (w *Writer) next(width int) ([]byte, error) {
	if width < 0 || width > w.Remaining() {
		return nil, fmt.Errorf("%w: %d-byte field at offset %d overflows %d-byte record",
			errs.ErrShortWrite, width, w.off, len(w.buf))
	}
	b := w.buf[w.off : w.off+width]
	w.off += width

	return b, nil
}

// PutUint writes the low-order width bytes of v in network byte order.
// Bytes above width are dropped. width must be between 1 and 8.
func (w *Writer) PutUint(v uint64, width int) error {
	if width < 1 || width > 8 {
		return fmt.Errorf("%w: integer width %d", errs.ErrShortWrite, width)
	}
	b, err := w.next(width)
	if err != nil {
		return err
	}
	endian.PutUintN(w.engine, b, v)

	return nil
}

// PutBytes copies p, which must be exactly width bytes long.
func (w *Writer) PutBytes(p []byte, width int) error {
	if len(p) != width {
		return fmt.Errorf("%w: %d bytes for a %d-byte field", errs.ErrShortWrite, len(p), width)
	}
	b, err := w.next(width)
	if err != nil {
		return err
	}
	copy(b, p)

	return nil
}

// PutByte writes a single byte.
func (w *Writer) PutByte(v byte) error {
	b, err := w.next(1)
	if err != nil {
		return err
	}
	b[0] = v

	return nil
}

// Finish returns the filled buffer. It fails if the record is not complete.
func (w *Writer) Finish() ([]byte, error) {
	if w.off != len(w.buf) {
		return nil, fmt.Errorf("%w: wrote %d of %d bytes", errs.ErrShortWrite, w.off, len(w.buf))
	}

	return w.buf, nil
}
