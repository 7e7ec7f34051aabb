// Package template builds template records: the ordered list of information
// elements that tells a collector how to parse a data record.
//
// A template record body on the wire is laid out as
//
//	┌──────────────────────┬──────────────────────┐
//	│ Template ID (2)      │ Field Count (2)      │
//	├──────────────────────┼──────────────────────┤
//	│ Element ID (2)       │ Field Length (2)     │  × Field Count
//	└──────────────────────┴──────────────────────┘
//
// with every value in network byte order. Set and message headers belong to
// the exporter session and are not produced here.
package template

import (
	"fmt"
	"slices"

	"github.com/arloliu/flowrec/endian"
	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/ie"
	"github.com/arloliu/flowrec/internal/hash"
)

const (
	// MinID is the lowest template id usable for data records; 0-255 are reserved for set ids.
	MinID = 256
	// HeaderSize is the size of the template id and field count prefix.
	HeaderSize = 4
	// FieldSpecSize is the size of one (element id, field length) pair.
	FieldSpecSize = 4
)

// Record is the template for one record variant.
type Record struct {
	// ID is the template id that tags data records of this shape.
	ID uint16
	// FieldCount is the number of fields advertised. Always equal to len(Fields).
	FieldCount int
	// Fields lists the elements in the same order as their bytes in a data record.
	Fields []ie.Element
}

// New builds a template from element names.
//
// Parameters:
//   - id: template id, at least MinID
//   - fieldCount: the field count the caller expects, checked against len(names)
//   - names: information element names in wire order
//
// Returns:
//   - *Record: the template
//   - error: ErrInvalidTemplateID, ErrFieldCountMismatch or ErrUnknownElement
func New(id uint16, fieldCount int, names ...string) (*Record, error) {
	if id < MinID {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidTemplateID, id)
	}
	if fieldCount != len(names) {
		return nil, fmt.Errorf("%w: template %d declares %d fields, has %d",
			errs.ErrFieldCountMismatch, id, fieldCount, len(names))
	}

	fields := make([]ie.Element, 0, len(names))
	for _, name := range names {
		e, ok := ie.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in template %d", errs.ErrUnknownElement, name, id)
		}
		fields = append(fields, e)
	}

	return &Record{ID: id, FieldCount: fieldCount, Fields: fields}, nil
}

// MustNew is like New but panics on error. Use it for compiled-in templates.
func MustNew(id uint16, fieldCount int, names ...string) *Record {
	r, err := New(id, fieldCount, names...)
	if err != nil {
		panic(err)
	}

	return r
}

// Length returns the data record length implied by the template: the sum of field widths.
func (r *Record) Length() int {
	n := 0
	for _, f := range r.Fields {
		n += f.Width
	}

	return n
}

// Names returns the field names in wire order.
func (r *Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	return names
}

// Offsets returns the byte offset of each field within a data record.
func (r *Record) Offsets() []int {
	offsets := make([]int, len(r.Fields))
	off := 0
	for i, f := range r.Fields {
		offsets[i] = off
		off += f.Width
	}

	return offsets
}

// Size returns the size of the template record body produced by Bytes.
func (r *Record) Size() int {
	return HeaderSize + FieldSpecSize*len(r.Fields)
}

// Bytes serializes the template record body.
func (r *Record) Bytes() []byte {
	return r.AppendTo(make([]byte, 0, r.Size()))
}

// AppendTo appends the template record body to dst and returns the extended slice.
func (r *Record) AppendTo(dst []byte) []byte {
	engine := endian.GetNetworkEngine()

	dst = engine.AppendUint16(dst, r.ID)
	dst = engine.AppendUint16(dst, uint16(len(r.Fields))) //nolint: gosec
	for _, f := range r.Fields {
		dst = engine.AppendUint16(dst, f.ID)
		dst = engine.AppendUint16(dst, uint16(f.Width)) //nolint: gosec
	}

	return dst
}

// Signature returns the xxHash64 of the template record body.
//
// Two templates with the same id and field layout have the same signature, so
// an exporter can compare signatures to decide whether a template must be
// advertised again.
func (r *Record) Signature() uint64 {
	return hash.Sum(r.Bytes())
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	return &Record{ID: r.ID, FieldCount: r.FieldCount, Fields: slices.Clone(r.Fields)}
}

// Equal reports whether r and other describe the same template.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.ID == other.ID && r.FieldCount == other.FieldCount && slices.Equal(r.Fields, other.Fields)
}

func (r *Record) String() string {
	return fmt.Sprintf("template %d (%d fields, %d bytes)", r.ID, r.FieldCount, r.Length())
}
