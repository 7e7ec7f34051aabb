package ie

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowrec/format"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup(SourceIPv6Address)
	require.True(t, ok)
	require.Equal(t, uint16(27), e.ID)
	require.Equal(t, 16, e.Width)
	require.Equal(t, format.KindIPv6Address, e.Kind)

	_, ok = Lookup("noSuchElement")
	require.False(t, ok)
}

func TestByID(t *testing.T) {
	e, ok := ByID(256)
	require.True(t, ok)
	require.Equal(t, EthernetType, e.Name)

	_, ok = ByID(9999)
	require.False(t, ok)
}

func TestWidthAndKind(t *testing.T) {
	tests := []struct {
		name  string
		width int
		kind  format.ElementKind
	}{
		{ExporterIPv4Address, 4, format.KindIPv4Address},
		{ExporterIPv6Address, 16, format.KindIPv6Address},
		{FlowStartMilliseconds, 8, format.KindTimeMillis},
		{OctetDeltaCount, 8, format.KindCounter},
		{IngressInterface, 4, format.KindIdentifier},
		{SourceMacAddress, 6, format.KindMACAddress},
		{VlanID, 2, format.KindIdentifier},
		{FlowLabelIPv6, 4, format.KindUnsigned},
		{ProtocolIdentifier, 1, format.KindOctet},
		{SourceTransportPort, 2, format.KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.width, WidthOf(tt.name))
			require.Equal(t, tt.kind, KindOf(tt.name))
		})
	}
}

func TestMustLookup_PanicsOnUnknownName(t *testing.T) {
	require.PanicsWithValue(t, `ie: unknown information element "bogus"`, func() {
		MustLookup("bogus")
	})
	require.Panics(t, func() { WidthOf("bogus") })
	require.Panics(t, func() { KindOf("bogus") })
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(builtin))

	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].ID, all[i].ID)
	}

	// mutating the copy must not touch the catalog
	all[0].Width = 99
	require.Equal(t, 8, WidthOf(all[0].Name))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		elem Element
	}{
		{"empty name", Element{ID: 900, Width: 4, Kind: format.KindUnsigned}},
		{"zero width", Element{ID: 900, Name: "x", Width: 0, Kind: format.KindUnsigned}},
		{"too wide", Element{ID: 900, Name: "x", Width: 17, Kind: format.KindUnsigned}},
		{"unknown kind", Element{ID: 900, Name: "x", Width: 4}},
		{"duplicate name", Element{ID: 900, Name: VlanID, Width: 2, Kind: format.KindIdentifier}},
		{"duplicate id", Element{ID: 58, Name: "x", Width: 2, Kind: format.KindIdentifier}},
		{"short ipv6", Element{ID: 900, Name: "x", Width: 4, Kind: format.KindIPv6Address}},
		{"long ipv4", Element{ID: 900, Name: "x", Width: 16, Kind: format.KindIPv4Address}},
		{"short mac", Element{ID: 900, Name: "x", Width: 4, Kind: format.KindMACAddress}},
		{"wide octet", Element{ID: 900, Name: "x", Width: 2, Kind: format.KindOctet}},
		{"wide integer", Element{ID: 900, Name: "x", Width: 12, Kind: format.KindCounter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, check(tt.elem))
		})
	}

	require.NoError(t, check(Element{ID: 900, Name: "x", Width: 3, Kind: format.KindUnsigned}))
	require.NoError(t, check(Element{ID: 900, Name: "x", Width: 6, Kind: format.KindMACAddress}))
}

func TestElement_String(t *testing.T) {
	require.Equal(t, "vlanId(58)[2]", MustLookup(VlanID).String())
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	want := All()

	var wg sync.WaitGroup
	errCh := make(chan error, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, e := range want {
					got, ok := Lookup(e.Name)
					if !ok || got != e {
						errCh <- fmt.Errorf("lookup %s: got %v", e.Name, got)
						return
					}
					if byID, ok := ByID(e.ID); !ok || byID != e {
						errCh <- fmt.Errorf("id %d: got %v", e.ID, byID)
						return
					}
					if WidthOf(e.Name) != e.Width || KindOf(e.Name) != e.Kind {
						errCh <- fmt.Errorf("width or kind of %s changed", e.Name)
						return
					}
				}
				if len(All()) != len(want) {
					errCh <- fmt.Errorf("catalog size changed")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}
