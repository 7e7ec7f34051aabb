// Package compress provides the compression codecs applied to spooled flow
// record payloads.
//
// Encoded data records are dense binary, but consecutive records of one
// template share long runs of identical bytes (exporter addresses, MAC
// addresses, interface indices), so general-purpose compression works well on
// a spool of them.
//
// Supported algorithms:
//   - None (format.CompressionNone): data is passed through unchanged
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, cgo
//     libzstd when built with the gozstd tag
//   - S2 (format.CompressionS2): fast, moderate ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders that carry internal state are pooled.
package compress
