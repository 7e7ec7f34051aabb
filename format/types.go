package format

type (
	ElementKind     uint8
	CompressionType uint8
)

const (
	KindUnsigned     ElementKind = 0x1 // KindUnsigned represents an unsigned integer of the element width.
	KindCounter      ElementKind = 0x2 // KindCounter represents a delta counter (octets, packets).
	KindIdentifier   ElementKind = 0x3 // KindIdentifier represents an identifier (interface index, vlan, port).
	KindOctet        ElementKind = 0x4 // KindOctet represents a single raw byte (protocol, class of service).
	KindTimeMillis   ElementKind = 0x5 // KindTimeMillis represents a dateTimeMilliseconds value.
	KindIPv4Address  ElementKind = 0x6 // KindIPv4Address represents a 4-byte IPv4 address.
	KindIPv6Address  ElementKind = 0x7 // KindIPv6Address represents a 16-byte IPv6 address.
	KindMACAddress   ElementKind = 0x8 // KindMACAddress represents a 6-byte MAC address.
	KindUnknown      ElementKind = 0x0
	maxElementKindID             = KindMACAddress

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsAddress reports whether values of this kind are network or link addresses.
func (k ElementKind) IsAddress() bool {
	return k == KindIPv4Address || k == KindIPv6Address || k == KindMACAddress
}

// IsInteger reports whether values of this kind are written as big-endian unsigned integers.
func (k ElementKind) IsInteger() bool {
	return k == KindUnsigned || k == KindCounter || k == KindIdentifier || k == KindTimeMillis
}

// Valid reports whether k is a known kind.
func (k ElementKind) Valid() bool {
	return k > KindUnknown && k <= maxElementKindID
}

func (k ElementKind) String() string {
	switch k {
	case KindUnsigned:
		return "Unsigned"
	case KindCounter:
		return "Counter"
	case KindIdentifier:
		return "Identifier"
	case KindOctet:
		return "Octet"
	case KindTimeMillis:
		return "DateTimeMilliseconds"
	case KindIPv4Address:
		return "IPv4Address"
	case KindIPv6Address:
		return "IPv6Address"
	case KindMACAddress:
		return "MACAddress"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
