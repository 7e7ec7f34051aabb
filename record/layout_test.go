package record

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/ie"
)

type probe struct {
	Src   netip.Addr
	Proto uint8
	Port  uint32
}

func probeColumns() []Column[probe] {
	return []Column[probe]{
		IPv4(ie.SourceIPv4Address, func(p *probe) netip.Addr { return p.Src }),
		Octet(ie.ProtocolIdentifier, func(p *probe) uint8 { return p.Proto }),
		Unsigned(ie.SourceTransportPort, func(p *probe) uint32 { return p.Port }),
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(500, 3, 7, probeColumns()...)

	require.Equal(t, uint16(500), l.TemplateID())
	require.Equal(t, 3, l.FieldCount())
	require.Equal(t, 7, l.Length())
	require.Equal(t, []string{ie.SourceIPv4Address, ie.ProtocolIdentifier, ie.SourceTransportPort}, l.Template().Names())

	p := probe{Src: netip.MustParseAddr("198.51.100.7"), Proto: 17, Port: 65536 + 53}
	data, err := l.Encode(&p)
	require.NoError(t, err)
	require.Equal(t, []byte{198, 51, 100, 7, 17, 0x00, 0x35}, data)

	require.Equal(t, []Field{
		{Name: ie.SourceIPv4Address, Value: p.Src},
		{Name: ie.ProtocolIdentifier, Value: uint8(17)},
		{Name: ie.SourceTransportPort, Value: uint32(65536 + 53)},
	}, l.Fields(&p))
}

func TestNewLayout_SchemaBugsPanic(t *testing.T) {
	t.Run("wrong declared length", func(t *testing.T) {
		require.Panics(t, func() { NewLayout(500, 3, 8, probeColumns()...) })
	})

	t.Run("wrong field count", func(t *testing.T) {
		require.Panics(t, func() { NewLayout(500, 4, 7, probeColumns()...) })
	})

	t.Run("reserved template id", func(t *testing.T) {
		require.Panics(t, func() { NewLayout(3, 3, 7, probeColumns()...) })
	})

	t.Run("accessor kind mismatch", func(t *testing.T) {
		require.Panics(t, func() {
			NewLayout(500, 1, 16,
				IPv4(ie.SourceIPv6Address, func(p *probe) netip.Addr { return p.Src }),
			)
		})
		require.Panics(t, func() {
			NewLayout(500, 1, 4,
				Unsigned(ie.SourceIPv4Address, func(p *probe) uint32 { return p.Port }),
			)
		})
	})

	t.Run("unknown element", func(t *testing.T) {
		require.Panics(t, func() {
			Octet("bogus", func(p *probe) uint8 { return p.Proto })
		})
	})
}

func TestLayout_TemplateIsACopy(t *testing.T) {
	l := NewLayout(500, 3, 7, probeColumns()...)

	tmpl := l.Template()
	tmpl.Fields[0] = ie.MustLookup(ie.VlanID)

	require.Equal(t, ie.SourceIPv4Address, l.Template().Fields[0].Name)
}

func TestLayout_EncodeError(t *testing.T) {
	l := NewLayout(500, 3, 7, probeColumns()...)

	data, err := l.Encode(&probe{})
	require.Nil(t, data)
	require.ErrorIs(t, err, errs.ErrEncodeFailure)
	require.ErrorIs(t, err, errs.ErrInvalidIPv4Address)
	require.EqualError(t, err,
		"error while generating the bytes of template 500, field sourceIPv4Address: value is not a valid IPv4 address: invalid IP")
}

func TestEncodeError_WithoutField(t *testing.T) {
	err := &EncodeError{TemplateID: 333, Err: errs.ErrShortWrite}

	require.ErrorIs(t, err, errs.ErrEncodeFailure)
	require.ErrorIs(t, err, errs.ErrShortWrite)
	require.EqualError(t, err,
		"error while generating the bytes of template 333: encoded length does not match declared record length")
}
