package record

import (
	"net/netip"

	"github.com/arloliu/flowrec/ie"
	"github.com/arloliu/flowrec/template"
)

// RfwdIPv4 template constants.
const (
	RfwdIPv4TemplateID = 332
	RfwdIPv4FieldCount = commonFieldCount + 6
	RfwdIPv4Length     = commonLength + 14
)

// RfwdIPv4 is a reactive forwarding flow matched on IPv4 fields.
type RfwdIPv4 struct {
	Common

	SrcIP    netip.Addr
	DstIP    netip.Addr
	Protocol uint8
	ToS      uint8
	// Ports are carried in 32 bits and written into 2-byte fields.
	SrcPort uint32
	DstPort uint32
}

var rfwdIPv4Layout = NewLayout(RfwdIPv4TemplateID, RfwdIPv4FieldCount, RfwdIPv4Length,
	append(commonColumns(func(r *RfwdIPv4) *Common { return &r.Common }),
		IPv4(ie.SourceIPv4Address, func(r *RfwdIPv4) netip.Addr { return r.SrcIP }),
		IPv4(ie.DestinationIPv4Address, func(r *RfwdIPv4) netip.Addr { return r.DstIP }),
		Octet(ie.ProtocolIdentifier, func(r *RfwdIPv4) uint8 { return r.Protocol }),
		Octet(ie.IPClassOfService, func(r *RfwdIPv4) uint8 { return r.ToS }),
		Unsigned(ie.SourceTransportPort, func(r *RfwdIPv4) uint32 { return r.SrcPort }),
		Unsigned(ie.DestinationTransportPort, func(r *RfwdIPv4) uint32 { return r.DstPort }),
	)...,
)

// RfwdIPv4Template returns the RfwdIPv4 template record.
func RfwdIPv4Template() *template.Record {
	return rfwdIPv4Layout.Template()
}

// TemplateID returns RfwdIPv4TemplateID.
func (r RfwdIPv4) TemplateID() uint16 { return RfwdIPv4TemplateID }

// Length returns RfwdIPv4Length.
func (r RfwdIPv4) Length() int { return RfwdIPv4Length }

// Template returns a copy of the RfwdIPv4 template.
func (r RfwdIPv4) Template() *template.Record { return rfwdIPv4Layout.Template() }

// Fields lists every field with its element name, in template order.
func (r RfwdIPv4) Fields() []Field { return rfwdIPv4Layout.Fields(&r) }

// Encode returns the RfwdIPv4Length-byte encoding of r, or nil and an *EncodeError.
func (r RfwdIPv4) Encode() ([]byte, error) { return rfwdIPv4Layout.Encode(&r) }

// AppendTo appends the encoding of r to dst. On failure it returns dst
// unchanged together with an *EncodeError.
func (r RfwdIPv4) AppendTo(dst []byte) ([]byte, error) {
	return rfwdIPv4Layout.AppendTo(dst, &r)
}
