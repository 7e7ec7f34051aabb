package ie

import (
	"fmt"
	"slices"

	"github.com/arloliu/flowrec/format"
)

// Information element names known to the catalog.
const (
	OctetDeltaCount          = "octetDeltaCount"
	PacketDeltaCount         = "packetDeltaCount"
	ProtocolIdentifier       = "protocolIdentifier"
	IPClassOfService         = "ipClassOfService"
	SourceTransportPort      = "sourceTransportPort"
	SourceIPv4Address        = "sourceIPv4Address"
	IngressInterface         = "ingressInterface"
	DestinationTransportPort = "destinationTransportPort"
	DestinationIPv4Address   = "destinationIPv4Address"
	EgressInterface          = "egressInterface"
	SourceIPv6Address        = "sourceIPv6Address"
	DestinationIPv6Address   = "destinationIPv6Address"
	FlowLabelIPv6            = "flowLabelIPv6"
	SourceMacAddress         = "sourceMacAddress"
	VlanID                   = "vlanId"
	DestinationMacAddress    = "destinationMacAddress"
	ExporterIPv4Address      = "exporterIPv4Address"
	ExporterIPv6Address      = "exporterIPv6Address"
	FlowStartMilliseconds    = "flowStartMilliseconds"
	FlowEndMilliseconds      = "flowEndMilliseconds"
	EthernetType             = "ethernetType"
)

var builtin = []Element{
	{ID: 1, Name: OctetDeltaCount, Width: 8, Kind: format.KindCounter},
	{ID: 2, Name: PacketDeltaCount, Width: 8, Kind: format.KindCounter},
	{ID: 4, Name: ProtocolIdentifier, Width: 1, Kind: format.KindOctet},
	{ID: 5, Name: IPClassOfService, Width: 1, Kind: format.KindOctet},
	{ID: 7, Name: SourceTransportPort, Width: 2, Kind: format.KindIdentifier},
	{ID: 8, Name: SourceIPv4Address, Width: 4, Kind: format.KindIPv4Address},
	{ID: 10, Name: IngressInterface, Width: 4, Kind: format.KindIdentifier},
	{ID: 11, Name: DestinationTransportPort, Width: 2, Kind: format.KindIdentifier},
	{ID: 12, Name: DestinationIPv4Address, Width: 4, Kind: format.KindIPv4Address},
	{ID: 14, Name: EgressInterface, Width: 4, Kind: format.KindIdentifier},
	{ID: 27, Name: SourceIPv6Address, Width: 16, Kind: format.KindIPv6Address},
	{ID: 28, Name: DestinationIPv6Address, Width: 16, Kind: format.KindIPv6Address},
	{ID: 31, Name: FlowLabelIPv6, Width: 4, Kind: format.KindUnsigned},
	{ID: 56, Name: SourceMacAddress, Width: 6, Kind: format.KindMACAddress},
	{ID: 58, Name: VlanID, Width: 2, Kind: format.KindIdentifier},
	{ID: 80, Name: DestinationMacAddress, Width: 6, Kind: format.KindMACAddress},
	{ID: 130, Name: ExporterIPv4Address, Width: 4, Kind: format.KindIPv4Address},
	{ID: 131, Name: ExporterIPv6Address, Width: 16, Kind: format.KindIPv6Address},
	{ID: 152, Name: FlowStartMilliseconds, Width: 8, Kind: format.KindTimeMillis},
	{ID: 153, Name: FlowEndMilliseconds, Width: 8, Kind: format.KindTimeMillis},
	{ID: 256, Name: EthernetType, Width: 2, Kind: format.KindUnsigned},
}

var (
	byName = make(map[string]Element, len(builtin))
	byID   = make(map[uint16]Element, len(builtin))
)

func init() {
	for _, e := range builtin {
		if err := check(e); err != nil {
			panic(err)
		}
		byName[e.Name] = e
		byID[e.ID] = e
	}
}

var addressWidths = map[format.ElementKind]int{
	format.KindIPv4Address: 4,
	format.KindIPv6Address: 16,
	format.KindMACAddress:  6,
}

func check(e Element) error {
	if e.Name == "" {
		return fmt.Errorf("ie: element %d has no name", e.ID)
	}
	if e.Width < 1 || e.Width > MaxWidth {
		return fmt.Errorf("ie: element %s has invalid width %d", e.Name, e.Width)
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("ie: element %s has invalid kind %d", e.Name, e.Kind)
	}
	if _, dup := byName[e.Name]; dup {
		return fmt.Errorf("ie: duplicate element name %s", e.Name)
	}
	if _, dup := byID[e.ID]; dup {
		return fmt.Errorf("ie: duplicate element id %d", e.ID)
	}

	switch {
	case e.Kind.IsAddress():
		if want := addressWidths[e.Kind]; e.Width != want {
			return fmt.Errorf("ie: %s element %s must be %d bytes", e.Kind, e.Name, want)
		}
	case e.Kind == format.KindOctet:
		if e.Width != 1 {
			return fmt.Errorf("ie: octet element %s must be 1 byte", e.Name)
		}
	case e.Kind.IsInteger():
		if e.Width > 8 {
			return fmt.Errorf("ie: integer element %s wider than 8 bytes", e.Name)
		}
	}

	return nil
}

// Lookup returns the element registered under name.
func Lookup(name string) (Element, bool) {
	e, ok := byName[name]
	return e, ok
}

// ByID returns the element with the given IANA id.
func ByID(id uint16) (Element, bool) {
	e, ok := byID[id]
	return e, ok
}

// MustLookup returns the element registered under name and panics if there is none.
// The catalog is compiled in, so an unknown name is a programming error.
func MustLookup(name string) Element {
	e, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("ie: unknown information element %q", name))
	}

	return e
}

// WidthOf returns the encoded width of the named element. It panics on unknown names.
func WidthOf(name string) int {
	return MustLookup(name).Width
}

// KindOf returns the semantic kind of the named element. It panics on unknown names.
func KindOf(name string) format.ElementKind {
	return MustLookup(name).Kind
}

// All returns a copy of the catalog ordered by element id.
func All() []Element {
	out := slices.Clone(builtin)
	slices.SortFunc(out, func(a, b Element) int {
		return int(a.ID) - int(b.ID)
	})

	return out
}
