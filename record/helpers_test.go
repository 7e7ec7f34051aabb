package record

import (
	"net"
	"net/netip"
)

func mustMAC(s string) net.HardwareAddr {
	mac, err := net.ParseMAC(s)
	if err != nil {
		panic(err)
	}

	return mac
}

func sampleCommon() Common {
	return Common{
		ExporterIPv4:     netip.MustParseAddr("192.0.2.10"),
		ExporterIPv6:     netip.MustParseAddr("::0000:0000:0001"),
		FlowStartMillis:  1_700_000_000_000,
		FlowEndMillis:    1_700_000_005_000,
		Octets:           123_456,
		Packets:          789,
		IngressInterface: 1,
		EgressInterface:  2,
		SrcMAC:           mustMAC("00:11:22:33:44:55"),
		DstMAC:           mustMAC("66:77:88:99:aa:bb"),
		EtherType:        0x86DD,
		VlanID:           100,
	}
}

func sampleIPv6() RfwdIPv6 {
	c := sampleCommon()
	c.EtherType = 0x86DD

	return RfwdIPv6{
		Common:       c,
		SrcIP:        netip.MustParseAddr("2001:db8::1"),
		DstIP:        netip.MustParseAddr("2001:db8::2"),
		FlowLabel:    0xABCDE,
		Protocol:     6,
		TrafficClass: 0x28,
		SrcPort:      12345,
		DstPort:      443,
	}
}

func sampleIPv4() RfwdIPv4 {
	c := sampleCommon()
	c.EtherType = 0x0800

	return RfwdIPv4{
		Common:   c,
		SrcIP:    netip.MustParseAddr("10.0.0.1"),
		DstIP:    netip.MustParseAddr("10.0.0.2"),
		Protocol: 17,
		ToS:      0xB8,
		SrcPort:  53,
		DstPort:  5353,
	}
}

func sampleMAC() RfwdMAC {
	return RfwdMAC{Common: sampleCommon()}
}

func allSamples() []Record {
	return []Record{sampleMAC(), sampleIPv4(), sampleIPv6()}
}
