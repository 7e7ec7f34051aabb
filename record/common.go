package record

import (
	"net"
	"net/netip"

	"github.com/arloliu/flowrec/ie"
)

// Common holds the fields shared by every reactive forwarding record: the
// exporter identity, flow timing and counters, and the layer 2 match.
type Common struct {
	// ExporterIPv4 is the IPv4 address of the exporting process.
	ExporterIPv4 netip.Addr
	// ExporterIPv6 is the IPv6 address of the exporter. The forwarding
	// application encodes the switch DPID in it.
	ExporterIPv6 netip.Addr

	FlowStartMillis int64 // Unix milliseconds
	FlowEndMillis   int64 // Unix milliseconds
	Octets          uint64
	Packets         uint64

	IngressInterface uint32
	EgressInterface  uint32

	SrcMAC    net.HardwareAddr
	DstMAC    net.HardwareAddr
	EtherType uint16
	VlanID    uint16
}

const (
	commonFieldCount = 12
	commonLength     = 76
)

// commonColumns returns the 12 leading columns of a reactive forwarding
// variant R, reading Common through get.
func commonColumns[R any](get func(*R) *Common) []Column[R] {
	return []Column[R]{
		IPv4(ie.ExporterIPv4Address, func(r *R) netip.Addr { return get(r).ExporterIPv4 }),
		IPv6(ie.ExporterIPv6Address, func(r *R) netip.Addr { return get(r).ExporterIPv6 }),
		Unsigned(ie.FlowStartMilliseconds, func(r *R) int64 { return get(r).FlowStartMillis }),
		Unsigned(ie.FlowEndMilliseconds, func(r *R) int64 { return get(r).FlowEndMillis }),
		Unsigned(ie.OctetDeltaCount, func(r *R) uint64 { return get(r).Octets }),
		Unsigned(ie.PacketDeltaCount, func(r *R) uint64 { return get(r).Packets }),
		Unsigned(ie.IngressInterface, func(r *R) uint32 { return get(r).IngressInterface }),
		Unsigned(ie.EgressInterface, func(r *R) uint32 { return get(r).EgressInterface }),
		MAC(ie.SourceMacAddress, func(r *R) net.HardwareAddr { return get(r).SrcMAC }),
		MAC(ie.DestinationMacAddress, func(r *R) net.HardwareAddr { return get(r).DstMAC }),
		Unsigned(ie.EthernetType, func(r *R) uint16 { return get(r).EtherType }),
		Unsigned(ie.VlanID, func(r *R) uint16 { return get(r).VlanID }),
	}
}
