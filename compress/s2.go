package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// maxS2Output bounds the decoded size accepted from a payload header.
const maxS2Output = 64 * 1024 * 1024

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 block compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block using the better matcher.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses a single S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxS2Output {
		return nil, fmt.Errorf("s2: decoded size %d exceeds %d bytes", n, maxS2Output)
	}

	return s2.Decode(make([]byte, n), data)
}
