// Package envelope frames a SCALE payload for storage or transport.
//
// SCALE carries no type information, version or integrity check. An envelope adds a
// small header in front of the encoded bytes:
//
//	offset 0-1   magic "SC"
//	offset 2     version (1)
//	offset 3     compression type (format.CompressionType)
//	offset 4-11  xxHash64 of the uncompressed payload, little-endian
//	offset 12-   compact integer: uncompressed payload length
//	then         the payload, compressed with the codec named in the header
//
// Open checks every field before returning the payload, and refuses to decompress a
// body whose declared length exceeds the configured maximum.
package envelope
