package record

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/ie"
)

func TestRfwdIPv4_Encode(t *testing.T) {
	rec := sampleIPv4()

	require.Equal(t, uint16(332), rec.TemplateID())
	require.Equal(t, 90, rec.Length())
	require.Equal(t, 18, rec.Template().FieldCount)

	data, err := rec.Encode()
	require.NoError(t, err)
	require.Len(t, data, 90)

	common, err := RfwdMAC{Common: rec.Common}.Encode()
	require.NoError(t, err)
	require.Equal(t, common, data[:76], "shared prefix must encode identically")

	require.Equal(t, []byte{0x08, 0x00}, data[72:74])
	require.Equal(t, []byte{10, 0, 0, 1}, data[76:80])
	require.Equal(t, []byte{10, 0, 0, 2}, data[80:84])
	require.Equal(t, byte(17), data[84])
	require.Equal(t, byte(0xB8), data[85])
	require.Equal(t, []byte{0x00, 0x35, 0x14, 0xE9}, data[86:90])
}

func TestRfwdIPv4_TemplateTail(t *testing.T) {
	names := RfwdIPv4Template().Names()

	require.Equal(t, []string{
		ie.SourceIPv4Address,
		ie.DestinationIPv4Address,
		ie.ProtocolIdentifier,
		ie.IPClassOfService,
		ie.SourceTransportPort,
		ie.DestinationTransportPort,
	}, names[12:])
}

func TestRfwdIPv4_RejectsIPv6Source(t *testing.T) {
	rec := sampleIPv4()
	rec.SrcIP = netip.MustParseAddr("2001:db8::1")

	data, err := rec.Encode()
	require.Nil(t, data)
	require.ErrorIs(t, err, errs.ErrInvalidIPv4Address)
}
