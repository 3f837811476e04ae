package ir

// Decoder is the bounds-checked byte-stream reader used for
// verification and diagnostics. It owns a borrowed byte slice and a
// cursor; every read is checked against the remaining length before
// it is honored.
//
// Decoder is the trust boundary for this package: a
// stream that decodes end to end through a Decoder without error is
// safe to hand to an UnsafeDecoder afterwards.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps buf in a bounds-checked decoder starting at
// position 0.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Pos returns the decoder's current cursor position.
func (d *Decoder) Pos() int { return d.pos }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

func (d *Decoder) take(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, &EndOfStream{Pos: d.pos}
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// ReadN consumes exactly n bytes and returns them as a borrowed
// slice, or fails with *EndOfStream.
func (d *Decoder) ReadN(n int) ([]byte, error) {
	return d.take(n)
}

// ReadSlice consumes n bytes and returns a borrowed reference
// covering them, or fails with *EndOfStream. It is identical to ReadN
// and exists as a distinct name to match the external read-slice
// contract used by inline-slice decoding.
func (d *Decoder) ReadSlice(n int) ([]byte, error) {
	return d.take(n)
}

func (d *Decoder) checkOpCode(v uint16) (OpCode, error) {
	op := OpCode(v)
	if op > maxOp {
		return 0, &InvalidOpCode{Pos: d.pos - 2, Value: v}
	}
	return op, nil
}

func (d *Decoder) invalidTrapCode(v uint8) error {
	return &InvalidTrapCode{Pos: d.pos - 1, Value: v}
}

func (d *Decoder) invalidBool(v uint8) error {
	return &InvalidBool{Pos: d.pos - 1, Value: v}
}

func (d *Decoder) invalidSign(v uint8) error {
	return &InvalidSign{Pos: d.pos - 1, Value: v}
}

func (d *Decoder) invalidNonZero(width int) error {
	return &InvalidNonZeroValue{Pos: d.pos - width}
}

// DecodeBool reads the next byte as a Boolean field.
func (d *Decoder) DecodeBool() (bool, error) { return decodeBool(d) }

// DecodeSign reads the next byte as a Sign field.
func (d *Decoder) DecodeSign() (Sign, error) { return decodeSign(d) }

// DecodeTrapCode reads the next byte as a TrapCode field.
func (d *Decoder) DecodeTrapCode() (TrapCode, error) { return decodeTrapCode(d) }

// DecodeRegister reads the next two bytes as a Register.
func (d *Decoder) DecodeRegister() (Register, error) { return decodeRegister(d) }

// Dispatch reads the opcode tag at the cursor and returns it together
// with a VariantDecoder positioned to decode that opcode's operand
// record. Out-of-range tags are rejected with *InvalidOpCode.
func (d *Decoder) Dispatch() (OpCode, VariantDecoder[*Decoder], error) {
	return dispatch[*Decoder](d)
}
