package record

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/format"
	"github.com/arloliu/flowrec/ie"
)

// Integer is the set of in-memory types an integer column may read from.
// Signed values are written in two's complement.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Column binds one catalog element to a typed accessor on a record struct R.
type Column[R any] struct {
	elem   ie.Element
	accept func(format.ElementKind) bool
	write  func(w *Writer, r *R) error
	value  func(r *R) any
}

// IPv4 returns a column writing a 4-byte IPv4 address.
// IPv4-mapped IPv6 addresses are unmapped first.
func IPv4[R any](name string, get func(*R) netip.Addr) Column[R] {
	elem := ie.MustLookup(name)

	return Column[R]{
		elem:   elem,
		accept: func(k format.ElementKind) bool { return k == format.KindIPv4Address },
		write: func(w *Writer, r *R) error {
			addr := get(r)
			if addr.Is4In6() {
				addr = addr.Unmap()
			}
			if !addr.Is4() {
				return fmt.Errorf("%w: %v", errs.ErrInvalidIPv4Address, addr)
			}
			b := addr.As4()

			return w.PutBytes(b[:], elem.Width)
		},
		value: func(r *R) any { return get(r) },
	}
}

// IPv6 returns a column writing a 16-byte IPv6 address.
func IPv6[R any](name string, get func(*R) netip.Addr) Column[R] {
	elem := ie.MustLookup(name)

	return Column[R]{
		elem:   elem,
		accept: func(k format.ElementKind) bool { return k == format.KindIPv6Address },
		write: func(w *Writer, r *R) error {
			addr := get(r)
			if !addr.Is6() {
				return fmt.Errorf("%w: %v", errs.ErrInvalidIPv6Address, addr)
			}
			b := addr.As16()

			return w.PutBytes(b[:], elem.Width)
		},
		value: func(r *R) any { return get(r) },
	}
}

// MAC returns a column writing a 6-byte MAC address.
func MAC[R any](name string, get func(*R) net.HardwareAddr) Column[R] {
	elem := ie.MustLookup(name)

	return Column[R]{
		elem:   elem,
		accept: func(k format.ElementKind) bool { return k == format.KindMACAddress },
		write: func(w *Writer, r *R) error {
			mac := get(r)
			if len(mac) != 6 {
				return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidMACAddress, len(mac))
			}

			return w.PutBytes(mac, elem.Width)
		},
		value: func(r *R) any { return get(r) },
	}
}

// Unsigned returns a column writing an integer in network byte order, narrowed
// to the element width. Bytes above the width are discarded.
func Unsigned[R any, T Integer](name string, get func(*R) T) Column[R] {
	elem := ie.MustLookup(name)

	return Column[R]{
		elem:   elem,
		accept: format.ElementKind.IsInteger,
		write: func(w *Writer, r *R) error {
			return w.PutUint(uint64(get(r)), elem.Width) //nolint: gosec
		},
		value: func(r *R) any { return get(r) },
	}
}

// Octet returns a column writing a single byte as is.
func Octet[R any](name string, get func(*R) uint8) Column[R] {
	elem := ie.MustLookup(name)

	return Column[R]{
		elem:   elem,
		accept: func(k format.ElementKind) bool { return k == format.KindOctet },
		write: func(w *Writer, r *R) error {
			return w.PutByte(get(r))
		},
		value: func(r *R) any { return get(r) },
	}
}
