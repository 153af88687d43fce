// Package endian provides the byte order engine used by the SCALE codec.
//
// SCALE fixes every multi-byte primitive to little-endian, so the codec only ever
// needs one engine. The engine combines binary.ByteOrder and binary.AppendByteOrder so
// encoders can append straight into their scratch space:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, v)
//
// The native byte order probe lets bulk encoders copy []uint32 and friends in one
// memmove when the host already stores integers in wire order.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeLittle = probeNative()

func probeNative() bool {
	// 0x0100 is 256: on a little-endian host the low byte 0x00 is stored first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x00
}

// IsNativeLittleEndian reports whether the host stores integers in SCALE wire order.
func IsNativeLittleEndian() bool {
	return nativeLittle
}

// GetLittleEndianEngine returns the wire byte order of SCALE.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
