package spool

import (
	"fmt"

	"github.com/arloliu/flowrec/compress"
	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/format"
)

// Payload is a finished batch of encoded records of one template.
type Payload struct {
	TemplateID   uint16
	RecordLength int
	Count        int
	Compression  format.CompressionType
	// RawSize is the payload size before compression.
	RawSize int
	// Data is the (possibly compressed) concatenation of the records.
	Data []byte
}

// Ratio returns the compressed to raw size ratio.
func (p *Payload) Ratio() float64 {
	return compress.Ratio(p.RawSize, len(p.Data))
}

// Records decompresses the payload and splits it into the individual encoded
// records. The returned slices share one backing array.
func (p *Payload) Records() ([][]byte, error) {
	codec, err := compress.GetCodec(p.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(p.Data)
	if err != nil {
		return nil, fmt.Errorf("decompress template %d payload: %w", p.TemplateID, err)
	}

	if p.RecordLength <= 0 || len(raw) != p.Count*p.RecordLength {
		return nil, fmt.Errorf("%w: %d bytes for %d records of %d bytes",
			errs.ErrCorruptPayload, len(raw), p.Count, p.RecordLength)
	}

	out := make([][]byte, p.Count)
	for i := range out {
		out[i] = raw[i*p.RecordLength : (i+1)*p.RecordLength : (i+1)*p.RecordLength]
	}

	return out, nil
}
