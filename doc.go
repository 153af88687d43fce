// Package scale encodes and decodes Go values in the SCALE binary format
// (Simple Concatenated Aggregate Little-Endian).
//
// SCALE is not self-describing, so values describe themselves: a type implements
// codec.Marshaler and codec.Unmarshaler by issuing typed requests on the encoder or
// decoder in declaration order. The codec package documents the requests and the
// wire format; this package provides the top-level entry points.
//
// # Basic Usage
//
//	type Transfer struct {
//	    To     string
//	    Amount uint64
//	}
//
//	func (t Transfer) MarshalSCALE(e *codec.Encoder) error {
//	    return e.EncodeStruct(func(e *codec.Encoder) error {
//	        if err := e.EncodeString(t.To); err != nil {
//	            return err
//	        }
//	        return e.EncodeU64(t.Amount)
//	    })
//	}
//
//	func (t *Transfer) UnmarshalSCALE(d *codec.Decoder) error {
//	    return d.DecodeStruct(func(d *codec.Decoder) (err error) {
//	        if t.To, err = d.DecodeString(); err != nil {
//	            return err
//	        }
//	        t.Amount, err = d.DecodeU64()
//	        return err
//	    })
//	}
//
//	data, err := scale.Marshal(Transfer{To: "alice", Amount: 10})
//	...
//	var t Transfer
//	err = scale.Unmarshal(data, &t, codec.WithStrict())
//
// Values decoded by Unmarshal may share memory with data. Pass codec.WithCopyBorrowed
// when data is recycled after decoding.
//
// # Package Structure
//
//   - codec: the encoding engine, byte sources and sinks, generic helpers
//   - errs: the error taxonomy shared by every failure
//   - envelope: optional framing with checksum and compression
//   - compress: compression codecs used by envelopes
//   - log: the logger interface used by envelopes and Codec
package scale
