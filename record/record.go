package record

import (
	"fmt"
	"slices"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/template"
)

// Field is one entry of a record's introspection listing.
type Field struct {
	Name  string
	Value any
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%v", f.Name, f.Value)
}

// Record is a flow record that can describe and encode itself.
type Record interface {
	// TemplateID returns the id of the template this record conforms to.
	TemplateID() uint16
	// Length returns the fixed encoded length of records of this shape.
	Length() int
	// Template returns the template describing the record's wire layout.
	Template() *template.Record
	// Fields returns every field paired with its element name, in template order.
	Fields() []Field
	// Encode returns the encoded record, or nil and an *EncodeError.
	Encode() ([]byte, error)
	// AppendTo appends the encoded record to dst. On failure dst is returned unchanged.
	AppendTo(dst []byte) ([]byte, error)
}

var (
	_ Record = RfwdMAC{}
	_ Record = RfwdIPv4{}
	_ Record = RfwdIPv6{}
)

// Templates returns the templates of all built-in variants, ordered by template id.
func Templates() []*template.Record {
	return []*template.Record{
		RfwdMACTemplate(),
		RfwdIPv4Template(),
		RfwdIPv6Template(),
	}
}

// TemplateByID returns the built-in template with the given id.
func TemplateByID(id uint16) (*template.Record, error) {
	tmpls := Templates()
	i := slices.IndexFunc(tmpls, func(t *template.Record) bool { return t.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrTemplateNotFound, id)
	}

	return tmpls[i], nil
}
