package record

import (
	"net/netip"

	"github.com/arloliu/flowrec/ie"
	"github.com/arloliu/flowrec/template"
)

// RfwdIPv6 template constants.
const (
	RfwdIPv6TemplateID = 333
	RfwdIPv6FieldCount = commonFieldCount + 7
	RfwdIPv6Length     = commonLength + 42
)

// RfwdIPv6 is a reactive forwarding flow matched on IPv6 fields.
type RfwdIPv6 struct {
	Common

	SrcIP     netip.Addr
	DstIP     netip.Addr
	FlowLabel uint32
	// Protocol is the IPv6 next header.
	Protocol     uint8
	TrafficClass uint8
	// Ports are carried in 32 bits and written into 2-byte fields.
	SrcPort uint32
	DstPort uint32
}

var rfwdIPv6Layout = NewLayout(RfwdIPv6TemplateID, RfwdIPv6FieldCount, RfwdIPv6Length,
	append(commonColumns(func(r *RfwdIPv6) *Common { return &r.Common }),
		IPv6(ie.SourceIPv6Address, func(r *RfwdIPv6) netip.Addr { return r.SrcIP }),
		IPv6(ie.DestinationIPv6Address, func(r *RfwdIPv6) netip.Addr { return r.DstIP }),
		Unsigned(ie.FlowLabelIPv6, func(r *RfwdIPv6) uint32 { return r.FlowLabel }),
		Octet(ie.ProtocolIdentifier, func(r *RfwdIPv6) uint8 { return r.Protocol }),
		Octet(ie.IPClassOfService, func(r *RfwdIPv6) uint8 { return r.TrafficClass }),
		Unsigned(ie.SourceTransportPort, func(r *RfwdIPv6) uint32 { return r.SrcPort }),
		Unsigned(ie.DestinationTransportPort, func(r *RfwdIPv6) uint32 { return r.DstPort }),
	)...,
)

// RfwdIPv6Template returns the RfwdIPv6 template record.
func RfwdIPv6Template() *template.Record {
	return rfwdIPv6Layout.Template()
}

// TemplateID returns RfwdIPv6TemplateID.
func (r RfwdIPv6) TemplateID() uint16 { return RfwdIPv6TemplateID }

// Length returns RfwdIPv6Length.
func (r RfwdIPv6) Length() int { return RfwdIPv6Length }

// Template returns a copy of the RfwdIPv6 template.
func (r RfwdIPv6) Template() *template.Record { return rfwdIPv6Layout.Template() }

// Fields lists every field with its element name, in template order.
func (r RfwdIPv6) Fields() []Field { return rfwdIPv6Layout.Fields(&r) }

// Encode returns the RfwdIPv6Length-byte encoding of r, or nil and an *EncodeError.
func (r RfwdIPv6) Encode() ([]byte, error) { return rfwdIPv6Layout.Encode(&r) }

// AppendTo appends the encoding of r to dst. On failure it returns dst
// unchanged together with an *EncodeError.
func (r RfwdIPv6) AppendTo(dst []byte) ([]byte, error) {
	return rfwdIPv6Layout.AppendTo(dst, &r)
}
