package record

import "github.com/arloliu/flowrec/template"

// RfwdMAC template constants.
const (
	RfwdMACTemplateID = 331
	RfwdMACFieldCount = commonFieldCount
	RfwdMACLength     = commonLength
)

// RfwdMAC is a reactive forwarding flow matched on Ethernet fields only.
type RfwdMAC struct {
	Common
}

var rfwdMACLayout = NewLayout(RfwdMACTemplateID, RfwdMACFieldCount, RfwdMACLength,
	commonColumns(func(r *RfwdMAC) *Common { return &r.Common })...,
)

// RfwdMACTemplate returns the RfwdMAC template record.
func RfwdMACTemplate() *template.Record {
	return rfwdMACLayout.Template()
}

// TemplateID returns RfwdMACTemplateID.
func (r RfwdMAC) TemplateID() uint16 { return RfwdMACTemplateID }

// Length returns RfwdMACLength.
func (r RfwdMAC) Length() int { return RfwdMACLength }

// Template returns a copy of the RfwdMAC template.
func (r RfwdMAC) Template() *template.Record { return rfwdMACLayout.Template() }

// Fields lists every field with its element name, in template order.
func (r RfwdMAC) Fields() []Field { return rfwdMACLayout.Fields(&r) }

// Encode returns the RfwdMACLength-byte encoding of r, or nil and an *EncodeError.
func (r RfwdMAC) Encode() ([]byte, error) { return rfwdMACLayout.Encode(&r) }

// AppendTo appends the encoding of r to dst. On failure it returns dst
// unchanged together with an *EncodeError.
func (r RfwdMAC) AppendTo(dst []byte) ([]byte, error) {
	return rfwdMACLayout.AppendTo(dst, &r)
}
