package command

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/flowrec/record"
)

type ipv6Flags struct {
	exporterIPv4 string
	exporterIPv6 string
	src          string
	dst          string
	srcMAC       string
	dstMAC       string
	start        int64
	end          int64
	octets       uint64
	packets      uint64
	ingress      uint32
	egress       uint32
	vlan         uint16
	flowLabel    uint32
	protocol     uint8
	class        uint8
	sport        uint32
	dport        uint32
}

func newEncodeIPv6Command(global *globalFlags, logger *logrus.Logger) *cobra.Command {
	f := &ipv6Flags{}

	cmd := &cobra.Command{
		Use:   "encode-ipv6",
		Short: "encode one IPv6 reactive forwarding record and dump its bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := f.build()
			if err != nil {
				return err
			}

			data, err := rec.Encode()
			if err != nil {
				record.LogEntry(logger, rec).WithError(err).Error("encode failed")
				return err
			}
			record.LogEntry(logger, rec).Debug("record encoded")

			palette := newPalette(global.noColor)
			renderFields(cmd, rec, palette)
			fmt.Fprintln(cmd.OutOrStdout())
			hexDump(cmd.OutOrStdout(), data, rec.Template().Offsets(), palette)

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.exporterIPv4, "exporter-ipv4", "127.0.0.1", "exporter IPv4 address")
	fs.StringVar(&f.exporterIPv6, "exporter-ipv6", "::1", "exporter IPv6 address")
	fs.StringVar(&f.src, "src", "", "source IPv6 address")
	fs.StringVar(&f.dst, "dst", "", "destination IPv6 address")
	fs.StringVar(&f.srcMAC, "src-mac", "00:00:00:00:00:00", "source MAC address")
	fs.StringVar(&f.dstMAC, "dst-mac", "00:00:00:00:00:00", "destination MAC address")
	fs.Int64Var(&f.start, "start", 0, "flow start in unix milliseconds")
	fs.Int64Var(&f.end, "end", 0, "flow end in unix milliseconds")
	fs.Uint64Var(&f.octets, "octets", 0, "octet count")
	fs.Uint64Var(&f.packets, "packets", 0, "packet count")
	fs.Uint32Var(&f.ingress, "ingress", 0, "ingress interface index")
	fs.Uint32Var(&f.egress, "egress", 0, "egress interface index")
	fs.Uint16Var(&f.vlan, "vlan", 0, "vlan id")
	fs.Uint32Var(&f.flowLabel, "flow-label", 0, "IPv6 flow label")
	fs.Uint8Var(&f.protocol, "protocol", 6, "next header protocol number")
	fs.Uint8Var(&f.class, "traffic-class", 0, "IPv6 traffic class")
	fs.Uint32Var(&f.sport, "sport", 0, "source transport port")
	fs.Uint32Var(&f.dport, "dport", 0, "destination transport port")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}

// build converts the flags into a record. Only unparsable text fails here;
// address families are checked by the encoder.
func (f *ipv6Flags) build() (record.RfwdIPv6, error) {
	var rec record.RfwdIPv6

	addrs := []struct {
		flag string
		text string
		dst  *netip.Addr
	}{
		{"exporter-ipv4", f.exporterIPv4, &rec.ExporterIPv4},
		{"exporter-ipv6", f.exporterIPv6, &rec.ExporterIPv6},
		{"src", f.src, &rec.SrcIP},
		{"dst", f.dst, &rec.DstIP},
	}
	for _, a := range addrs {
		addr, err := netip.ParseAddr(a.text)
		if err != nil {
			return rec, fmt.Errorf("invalid --%s: %w", a.flag, err)
		}
		*a.dst = addr
	}

	macs := []struct {
		flag string
		text string
		dst  *net.HardwareAddr
	}{
		{"src-mac", f.srcMAC, &rec.SrcMAC},
		{"dst-mac", f.dstMAC, &rec.DstMAC},
	}
	for _, m := range macs {
		mac, err := net.ParseMAC(m.text)
		if err != nil {
			return rec, fmt.Errorf("invalid --%s: %w", m.flag, err)
		}
		*m.dst = mac
	}

	rec.FlowStartMillis = f.start
	rec.FlowEndMillis = f.end
	rec.Octets = f.octets
	rec.Packets = f.packets
	rec.IngressInterface = f.ingress
	rec.EgressInterface = f.egress
	rec.EtherType = 0x86DD
	rec.VlanID = f.vlan
	rec.FlowLabel = f.flowLabel
	rec.Protocol = f.protocol
	rec.TrafficClass = f.class
	rec.SrcPort = f.sport
	rec.DstPort = f.dport

	return rec, nil
}

func renderFields(cmd *cobra.Command, rec record.Record, palette []*color.Color) {
	tmpl := rec.Template()
	offsets := tmpl.Offsets()

	fmt.Fprintln(cmd.OutOrStdout(), tmpl.String())

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Element", "Offset", "Width", "Value"})
	for i, f := range rec.Fields() {
		c := palette[i%len(palette)]
		t.AppendRow(table.Row{i, c.Sprint(f.Name), offsets[i], tmpl.Fields[i].Width, f.Value})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.SetOutputMirror(cmd.OutOrStdout())
	t.Render()
}
