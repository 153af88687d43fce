// Package compress provides the compression codecs used for sealed SCALE payloads.
//
// SCALE output is compact but not compressed: strings, byte buffers and repeated
// structures pass through verbatim. The envelope package can run the encoded
// payload through one of these codecs before storing or transmitting it.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation by default. Building with
// the gozstd tag switches to the cgo binding of the reference C library:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames, so payloads sealed by one decode with the other.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := codec.Decompress(compressed, len(payload))
//
// Decompress takes the exact decompressed length, which the envelope header records.
// Codecs refuse to produce more than that, so a corrupted or hostile body cannot
// expand beyond the size the caller already accepted.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and decoders
// that benefit from warm-up are pooled internally.
package compress
