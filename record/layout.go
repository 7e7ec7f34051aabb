package record

import (
	"fmt"
	"slices"

	"github.com/arloliu/flowrec/template"
)

// Layout is the single field-order definition of a record variant.
//
// Template, Encode and Fields all walk the same column slice, so the
// advertised template, the byte offsets and the introspection listing always
// agree.
type Layout[R any] struct {
	tmpl    *template.Record
	length  int
	columns []Column[R]
}

// NewLayout builds the layout of a variant and checks it against the catalog.
//
// It panics if fieldCount differs from the number of columns, if length
// differs from the sum of the catalog widths, or if a column's accessor type
// cannot encode its element's kind. All of these are schema bugs and surface
// at package initialization.
func NewLayout[R any](templateID uint16, fieldCount int, length int, columns ...Column[R]) *Layout[R] {
	names := make([]string, len(columns))
	for i, c := range columns {
		if !c.accept(c.elem.Kind) {
			panic(fmt.Sprintf("record: template %d column %s cannot encode kind %s",
				templateID, c.elem.Name, c.elem.Kind))
		}
		names[i] = c.elem.Name
	}

	tmpl := template.MustNew(templateID, fieldCount, names...)
	if tmpl.Length() != length {
		panic(fmt.Sprintf("record: template %d declares length %d, catalog widths sum to %d",
			templateID, length, tmpl.Length()))
	}

	return &Layout[R]{
		tmpl:    tmpl,
		length:  length,
		columns: slices.Clone(columns),
	}
}

// TemplateID returns the variant's template id.
func (l *Layout[R]) TemplateID() uint16 {
	return l.tmpl.ID
}

// Length returns the declared record length.
func (l *Layout[R]) Length() int {
	return l.length
}

// FieldCount returns the number of fields.
func (l *Layout[R]) FieldCount() int {
	return len(l.columns)
}

// Template returns a copy of the variant's template.
func (l *Layout[R]) Template() *template.Record {
	return l.tmpl.Clone()
}

// Fields returns the introspection listing of r.
func (l *Layout[R]) Fields(r *R) []Field {
	fields := make([]Field, len(l.columns))
	for i, c := range l.columns {
		fields[i] = Field{Name: c.elem.Name, Value: c.value(r)}
	}

	return fields
}

// Encode returns the encoded form of r, or nil and an *EncodeError.
func (l *Layout[R]) Encode(r *R) ([]byte, error) {
	data, err := l.AppendTo(make([]byte, 0, l.length), r)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// AppendTo appends the encoded form of r to dst.
//
// On failure the original dst is returned together with an *EncodeError and
// no bytes are considered written.
func (l *Layout[R]) AppendTo(dst []byte, r *R) ([]byte, error) {
	start := len(dst)
	out := slices.Grow(dst, l.length)[:start+l.length]

	w := NewWriter(out[start:])
	for _, c := range l.columns {
		if err := c.write(w, r); err != nil {
			return dst, &EncodeError{TemplateID: l.tmpl.ID, Field: c.elem.Name, Err: err}
		}
	}

	if _, err := w.Finish(); err != nil {
		return dst, &EncodeError{TemplateID: l.tmpl.ID, Err: err}
	}

	return out, nil
}
