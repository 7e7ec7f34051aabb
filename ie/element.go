// Package ie is the information element catalog used by flowrec templates.
//
// Each element is identified by its IANA name and carries a fixed element id,
// a fixed encoded width and a semantic kind. A name maps to the same width and
// kind everywhere it is used, which is what lets a collector parse any record
// once it has seen the template.
//
// The catalog is compiled in and never mutated after package initialization,
// so lookups are safe from any number of goroutines.
package ie

import (
	"fmt"

	"github.com/arloliu/flowrec/format"
)

// MaxWidth is the widest fixed-size element the catalog may hold (an IPv6 address).
const MaxWidth = 16

// Element describes one information element.
type Element struct {
	// ID is the IANA information element identifier.
	ID uint16
	// Name is the IANA symbolic name, e.g. "sourceIPv6Address".
	Name string
	// Width is the encoded width in bytes.
	Width int
	// Kind is the semantic type of the value.
	Kind format.ElementKind
}

func (e Element) String() string {
	return fmt.Sprintf("%s(%d)[%d]", e.Name, e.ID, e.Width)
}
