// Package codec implements the SCALE (Simple Concatenated Aggregate Little-Endian)
// encoding engine.
//
// SCALE is not self-describing: no type information is written to the output and a
// decoder must be told the shape of every value it reads. The engine therefore never
// walks application data on its own. Application types describe themselves by calling
// typed requests on an Encoder or Decoder, in declaration order:
//
//	type Operator struct {
//	    Name     string
//	    Priority uint8
//	}
//
//	func (o Operator) MarshalSCALE(e *codec.Encoder) error {
//	    return e.EncodeStruct(func(e *codec.Encoder) error {
//	        if err := e.EncodeString(o.Name); err != nil {
//	            return err
//	        }
//	        return e.EncodeU8(o.Priority)
//	    })
//	}
//
//	func (o *Operator) UnmarshalSCALE(d *codec.Decoder) error {
//	    return d.DecodeStruct(func(d *codec.Decoder) (err error) {
//	        if o.Name, err = d.DecodeString(); err != nil {
//	            return err
//	        }
//	        o.Priority, err = d.DecodeU8()
//	        return err
//	    })
//	}
//
// # Wire Format
//
//   - Fixed-width integers: little-endian, no framing
//   - Booleans: one byte, 0 or 1
//   - Characters: UTF-32 code point as a little-endian uint32
//   - Compact integers: 1, 2, 4 or 5-9 bytes selected by magnitude
//   - Strings and byte buffers: compact length followed by the raw bytes
//   - Options: 0 for none, 1 followed by the payload for some; an optional boolean
//     is a single byte (0 none, 1 true, 2 false)
//   - Enum variants: one index byte followed by the payload
//   - Sequences and maps: compact length followed by the elements (keys then values)
//   - Tuples and structs: elements in declared order, no framing
//
// Floating point values have no SCALE representation and always fail.
//
// # Byte Sources
//
// Decoding reads from a ByteSource. SliceSource lends out sub-slices of its input
// (persistent borrows), which lets DecodeBytes and DecodeString return values that
// alias the input without copying. ReaderSource reads from an io.Reader into scratch
// space and can only lend temporary borrows, which the decoder copies.
//
// Values decoded from a SliceSource may therefore share memory with the input. Callers
// that recycle input buffers should decode with WithCopyBorrowed.
//
// # Thread Safety
//
// Encoder, Decoder and the sources in this package keep cursor state without
// synchronization. Each instance must be used by a single goroutine for the duration
// of one top-level call.
package codec
