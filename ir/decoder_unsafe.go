package ir

import "unsafe"

// UnsafeDecoder is the pointer-only decoder used inside the executor's
// hot dispatch loop. It performs no bounds checking: every read trusts
// that the bytes at and beyond the current pointer belong to a stream
// already verified end to end by a Decoder (or emitted by a trusted,
// schema-correct-by-construction translator).
//
// Feeding unverified bytes to UnsafeDecoder is a memory-safety
// violation, not a checked error. All five error-constructor methods
// exist only to satisfy the byteSource interface shared with Decoder;
// reaching any of them is undefined behavior.
type UnsafeDecoder struct {
	ptr unsafe.Pointer
}

// NewUnsafeDecoder wraps a raw pointer to the start of a verified
// stream.
func NewUnsafeDecoder(ptr unsafe.Pointer) *UnsafeDecoder {
	return &UnsafeDecoder{ptr: ptr}
}

// NewUnsafeDecoderFromBytes is a convenience constructor for callers
// that already hold the verified stream as a slice. The returned
// decoder does not retain any bound on the slice's length; the caller
// is solely responsible for not reading past its end.
func NewUnsafeDecoderFromBytes(buf []byte) *UnsafeDecoder {
	if len(buf) == 0 {
		return &UnsafeDecoder{}
	}
	return &UnsafeDecoder{ptr: unsafe.Pointer(&buf[0])}
}

// AsPtr returns the decoder's current cursor as a raw pointer.
func (u *UnsafeDecoder) AsPtr() unsafe.Pointer { return u.ptr }

// Offset returns the address i bytes ahead of the current cursor
// without advancing it, for handlers that need to peek a later slot
// (the parameter-instruction protocol following a wide store).
func (u *UnsafeDecoder) Offset(i int) unsafe.Pointer {
	return unsafe.Add(u.ptr, i)
}

// Advance moves the cursor forward n bytes without reading through it,
// for handlers that decode a field manually via Offset and then skip
// past it.
func (u *UnsafeDecoder) Advance(n int) {
	u.ptr = unsafe.Add(u.ptr, n)
}

func (u *UnsafeDecoder) take(n int) ([]byte, error) {
	b := unsafe.Slice((*byte)(u.ptr), n)
	u.ptr = unsafe.Add(u.ptr, n)
	return b, nil
}

func (u *UnsafeDecoder) checkOpCode(v uint16) (OpCode, error) {
	return OpCode(v), nil
}

func (u *UnsafeDecoder) invalidTrapCode(uint8) error {
	panic("ir: invalidTrapCode reached on UnsafeDecoder: unverified stream")
}

func (u *UnsafeDecoder) invalidBool(uint8) error {
	panic("ir: invalidBool reached on UnsafeDecoder: unverified stream")
}

func (u *UnsafeDecoder) invalidSign(uint8) error {
	panic("ir: invalidSign reached on UnsafeDecoder: unverified stream")
}

func (u *UnsafeDecoder) invalidNonZero(int) error {
	panic("ir: invalidNonZero reached on UnsafeDecoder: unverified stream")
}

// DecodeRegister reads the next two bytes as a Register, trusting the
// stream without a bounds check.
func (u *UnsafeDecoder) DecodeRegister() (Register, error) { return decodeRegister(u) }

// Dispatch reads the opcode tag at the cursor and returns it together
// with a VariantDecoder positioned to decode that opcode's operand
// record, trusting the tag without a range check.
func (u *UnsafeDecoder) Dispatch() (OpCode, VariantDecoder[*UnsafeDecoder], error) {
	return dispatch[*UnsafeDecoder](u)
}
