package template

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/ie"
)

var ipv4Tuple = []string{
	ie.SourceIPv4Address,
	ie.DestinationIPv4Address,
	ie.ProtocolIdentifier,
	ie.SourceTransportPort,
	ie.DestinationTransportPort,
}

func TestNew(t *testing.T) {
	r, err := New(400, len(ipv4Tuple), ipv4Tuple...)

	require.NoError(t, err)
	require.Equal(t, uint16(400), r.ID)
	require.Equal(t, 5, r.FieldCount)
	require.Len(t, r.Fields, 5)
	require.Equal(t, ipv4Tuple, r.Names())
	require.Equal(t, 4+4+1+2+2, r.Length())
	require.Equal(t, []int{0, 4, 8, 9, 11}, r.Offsets())
}

func TestNew_Errors(t *testing.T) {
	t.Run("reserved id", func(t *testing.T) {
		_, err := New(255, 1, ie.VlanID)
		require.ErrorIs(t, err, errs.ErrInvalidTemplateID)
	})

	t.Run("field count mismatch", func(t *testing.T) {
		_, err := New(400, 4, ipv4Tuple...)
		require.ErrorIs(t, err, errs.ErrFieldCountMismatch)
	})

	t.Run("unknown element", func(t *testing.T) {
		_, err := New(400, 2, ie.VlanID, "bogus")
		require.ErrorIs(t, err, errs.ErrUnknownElement)
		require.Contains(t, err.Error(), `"bogus"`)
	})
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { MustNew(400, 2, ie.VlanID) })
	require.NotPanics(t, func() { MustNew(400, 1, ie.VlanID) })
}

func TestRecord_Bytes(t *testing.T) {
	r := MustNew(333, 3, ie.ExporterIPv4Address, ie.SourceIPv6Address, ie.EthernetType)

	want := []byte{
		0x01, 0x4D, 0x00, 0x03, // id 333, 3 fields
		0x00, 0x82, 0x00, 0x04, // exporterIPv4Address(130), 4
		0x00, 0x1B, 0x00, 0x10, // sourceIPv6Address(27), 16
		0x01, 0x00, 0x00, 0x02, // ethernetType(256), 2
	}

	require.Equal(t, want, r.Bytes())
	require.Equal(t, len(want), r.Size())

	prefix := []byte{0xFF}
	require.Equal(t, append([]byte{0xFF}, want...), r.AppendTo(prefix))
}

func TestRecord_SignatureAndEqual(t *testing.T) {
	a := MustNew(400, len(ipv4Tuple), ipv4Tuple...)
	b := MustNew(400, len(ipv4Tuple), ipv4Tuple...)
	c := MustNew(401, len(ipv4Tuple), ipv4Tuple...)
	d := MustNew(400, 4, ipv4Tuple[:4]...)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Signature(), b.Signature())

	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Signature(), c.Signature())

	require.False(t, a.Equal(d))
	require.NotEqual(t, a.Signature(), d.Signature())

	var nilRec *Record
	require.False(t, a.Equal(nil))
	require.True(t, nilRec.Equal(nil))
}

func TestRecord_String(t *testing.T) {
	r := MustNew(400, len(ipv4Tuple), ipv4Tuple...)
	require.Equal(t, "template 400 (5 fields, 13 bytes)", r.String())
}

func TestRecord_Clone(t *testing.T) {
	r := MustNew(400, len(ipv4Tuple), ipv4Tuple...)
	c := r.Clone()

	require.True(t, r.Equal(c))

	c.Fields[0] = ie.MustLookup(ie.VlanID)
	require.False(t, r.Equal(c))
	require.Equal(t, ie.SourceIPv4Address, r.Fields[0].Name)
}
