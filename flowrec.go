// Package flowrec encodes typed flow records into IPFIX data records and
// produces the template records collectors need to parse them.
//
// Every record variant is described by one ordered column table. The same
// table yields the template record, the encoded bytes and the field listing,
// so the declared record length, the template and the encoder offsets cannot
// drift apart.
//
// # Core Features
//
//   - Static catalog of IANA information elements (id, width, kind)
//   - Template record bodies with xxHash64 signatures for re-send detection
//   - Byte-exact data record encoding in network byte order
//   - Spooling of same-template records with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding a single record:
//
//	import "github.com/arloliu/flowrec/record"
//
//	rec := record.RfwdIPv6{
//	    Common:  common,
//	    SrcIP:   netip.MustParseAddr("2001:db8::1"),
//	    DstIP:   netip.MustParseAddr("2001:db8::2"),
//	    SrcPort: 12345,
//	    DstPort: 443,
//	}
//	data, err := rec.Encode() // 118 bytes
//
// Sending the template first:
//
//	tmpl, _ := flowrec.TemplateByID(record.RfwdIPv6TemplateID)
//	body := tmpl.Bytes()
//
// Batching records for the transport layer:
//
//	w, _ := flowrec.NewSpool(record.RfwdIPv6TemplateID, spool.WithCompression(format.CompressionS2))
//	defer w.Release()
//	for _, rec := range records {
//	    if err := w.Add(rec); err != nil {
//	        return err
//	    }
//	}
//	payload, _ := w.Finish()
//
// # Package Structure
//
// This package provides top-level wrappers around the record, template, ie and
// spool packages for the most common use cases. Use those packages directly
// for custom variants or finer control.
package flowrec

import (
	"github.com/arloliu/flowrec/ie"
	"github.com/arloliu/flowrec/record"
	"github.com/arloliu/flowrec/spool"
	"github.com/arloliu/flowrec/template"
)

// Templates returns the templates of all built-in record variants, ordered by id.
func Templates() []*template.Record {
	return record.Templates()
}

// TemplateByID returns the built-in template with the given id.
func TemplateByID(id uint16) (*template.Record, error) {
	return record.TemplateByID(id)
}

// Catalog returns every known information element sorted by element id.
func Catalog() []ie.Element {
	return ie.All()
}

// NewSpool creates a spool writer for the built-in template with the given id.
func NewSpool(templateID uint16, opts ...spool.Option) (*spool.Writer, error) {
	tmpl, err := record.TemplateByID(templateID)
	if err != nil {
		return nil, err
	}

	return spool.NewWriter(tmpl, opts...)
}
