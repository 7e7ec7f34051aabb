// Package spool collects encoded data records that share one template into a
// contiguous payload, optionally compressed, for hand-off to the transport
// layer.
//
// A payload is the concatenation of Count records of RecordLength bytes each.
// It carries no set or message header; the exporter session adds those when
// it frames the payload.
package spool

import (
	"bytes"
	"fmt"

	"github.com/arloliu/flowrec/compress"
	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/internal/options"
	"github.com/arloliu/flowrec/internal/pool"
	"github.com/arloliu/flowrec/record"
	"github.com/arloliu/flowrec/template"
)

// Writer accumulates encoded records of one template.
//
// A Writer is not safe for concurrent use. Records themselves may be built and
// encoded concurrently; only Add must be serialized.
type Writer struct {
	tmpl  *template.Record
	cfg   *config
	codec compress.Codec
	buf   *pool.ByteBuffer
	count int
}

// NewWriter creates a Writer for records conforming to tmpl.
func NewWriter(tmpl *template.Record, opts ...Option) (*Writer, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("%w: nil template", errs.ErrTemplateNotFound)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetSpoolBuffer()
	buf.Grow(cfg.initialCapacity * tmpl.Length())

	return &Writer{
		tmpl:  tmpl.Clone(),
		cfg:   cfg,
		codec: codec,
		buf:   buf,
	}, nil
}

// TemplateID returns the template id records must carry.
func (w *Writer) TemplateID() uint16 {
	return w.tmpl.ID
}

// Count returns the number of records added since the last Finish.
func (w *Writer) Count() int {
	return w.count
}

// Size returns the uncompressed payload size in bytes.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Add encodes r and appends it to the payload.
//
// It fails with ErrTemplateMismatch when r's template differs from the
// writer's in id, length or field list, with ErrSpoolFull once the record
// limit is reached, and with the record's own *record.EncodeError when
// encoding fails. The payload is left unchanged on any error.
func (w *Writer) Add(r record.Record) error {
	if r.TemplateID() != w.tmpl.ID || r.Length() != w.tmpl.Length() {
		return fmt.Errorf("%w: got template %d, want %d", errs.ErrTemplateMismatch, r.TemplateID(), w.tmpl.ID)
	}
	if !w.tmpl.Equal(r.Template()) {
		return fmt.Errorf("%w: template %d field list differs", errs.ErrTemplateMismatch, w.tmpl.ID)
	}
	if w.cfg.maxRecords > 0 && w.count >= w.cfg.maxRecords {
		return fmt.Errorf("%w: %d records", errs.ErrSpoolFull, w.count)
	}

	w.buf.Grow(r.Length())
	data, err := r.AppendTo(w.buf.B)
	if err != nil {
		return err
	}
	w.buf.B = data
	w.count++

	return nil
}

// Finish compresses the collected records into a Payload and resets the
// writer for the next batch.
func (w *Writer) Finish() (*Payload, error) {
	raw := bytes.Clone(w.buf.Bytes())

	data, err := w.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress template %d payload: %w", w.tmpl.ID, err)
	}

	p := &Payload{
		TemplateID:   w.tmpl.ID,
		RecordLength: w.tmpl.Length(),
		Count:        w.count,
		Compression:  w.cfg.compression,
		RawSize:      len(raw),
		Data:         data,
	}

	w.buf.Reset()
	w.count = 0

	return p, nil
}

// Release returns the writer's buffer to the pool. The writer must not be used afterwards.
func (w *Writer) Release() {
	pool.PutSpoolBuffer(w.buf)
	w.buf = nil
}
