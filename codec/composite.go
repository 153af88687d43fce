package codec

// EncodeSeq writes a compact length prefix and then lets fn write the elements in
// order. UnknownLength fails with errs.ErrLengthNeeded.
func (e *Encoder) EncodeSeq(length int, fn func(e *Encoder) error) error {
	if err := e.EncodeLen(length); err != nil {
		return err
	}

	return fn(e)
}

// EncodeMap writes a compact entry count and then lets fn write the entries, each a
// key followed by its value, with EncodeMapEntry.
func (e *Encoder) EncodeMap(length int, fn func(e *Encoder) error) error {
	return e.EncodeSeq(length, fn)
}

// EncodeMapEntry writes one key and its value. There is no per-entry marker.
func (e *Encoder) EncodeMapEntry(key, value func(e *Encoder) error) error {
	if err := key(e); err != nil {
		return err
	}

	return value(e)
}

// EncodeTuple lets fn write a fixed number of elements with no framing.
func (e *Encoder) EncodeTuple(fn func(e *Encoder) error) error {
	return fn(e)
}

// EncodeStruct lets fn write the fields in declaration order. Field names are not
// encoded.
func (e *Encoder) EncodeStruct(fn func(e *Encoder) error) error {
	return fn(e)
}

// EncodeNewtype lets fn write the single wrapped value.
func (e *Encoder) EncodeNewtype(fn func(e *Encoder) error) error {
	return fn(e)
}

// DecodeSeqLen reads the length prefix of a sequence. The caller then decodes that
// many elements.
func (d *Decoder) DecodeSeqLen() (int, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	return d.readLen()
}

// DecodeMapLen reads the entry count of a map. The caller then decodes that many
// key and value pairs.
func (d *Decoder) DecodeMapLen() (int, error) {
	return d.DecodeSeqLen()
}

// DecodeTuple lets fn decode a fixed number of elements.
func (d *Decoder) DecodeTuple(fn func(d *Decoder) error) error {
	if err := d.resolve(); err != nil {
		return err
	}

	return fn(d)
}

// DecodeStruct lets fn decode the fields in declaration order.
func (d *Decoder) DecodeStruct(fn func(d *Decoder) error) error {
	return d.DecodeTuple(fn)
}

// DecodeNewtype lets fn decode the single wrapped value.
func (d *Decoder) DecodeNewtype(fn func(d *Decoder) error) error {
	return d.DecodeTuple(fn)
}
