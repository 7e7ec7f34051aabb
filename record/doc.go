// Package record encodes typed flow records into IPFIX data records.
//
// Every record variant is described by a single Layout: an ordered table of
// columns, each binding one catalog element to a typed accessor on the
// variant's struct. The same table produces the template record, drives the
// byte encoder and produces the introspection listing, so the three views of
// a variant cannot drift apart.
//
// # Built-in Variants
//
//   - RfwdMAC (template 331): Ethernet-matched reactive forwarding flow, 76 bytes
//   - RfwdIPv4 (template 332): IPv4-matched reactive forwarding flow, 90 bytes
//   - RfwdIPv6 (template 333): IPv6-matched reactive forwarding flow, 118 bytes
//
// # Encoding Workflow
//
//	rec := record.RfwdIPv6{
//	    Common: record.Common{ExporterIPv4: exp4, ExporterIPv6: exp6},
//	    SrcIP:  netip.MustParseAddr("2001:db8::1"),
//	    DstIP:  netip.MustParseAddr("2001:db8::2"),
//	    SrcPort: 12345,
//	    DstPort: 443,
//	}
//
//	tmpl := rec.Template() // advertise once
//	data, err := rec.Encode()
//	if err != nil {
//	    // errors.Is(err, errs.ErrEncodeFailure) is always true here
//	}
//
// # Integer Narrowing
//
// Integer values are written as the low-order bytes of the catalog width.
// Transport ports are carried as uint32 and written into 2-byte fields, so a
// port of 70000 is encoded as 0x1170 without error.
//
// # Thread Safety
//
// Layouts and records are immutable after construction. Encoding does not
// touch shared state and may run concurrently from any number of goroutines.
package record
