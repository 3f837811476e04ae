package ir

import (
	"encoding/binary"
	"errors"
	"testing"
	"unsafe"
)

func putOp(buf []byte, op OpCode) []byte {
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, uint16(op))
	return append(buf, b...)
}

func putU16(buf []byte, v uint16) []byte {
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, v)
	return append(buf, b...)
}

func putI16(buf []byte, v int16) []byte { return putU16(buf, uint16(v)) }

func putU32(buf []byte, v uint32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, v)
	return append(buf, b...)
}

func putI32(buf []byte, v int32) []byte { return putU32(buf, uint32(v)) }

// encodeCopy builds the wire bytes for an OpCopy instruction.
func encodeCopy(result, src Register) []byte {
	buf := putOp(nil, OpCopy)
	buf = putI16(buf, int16(result))
	buf = putI16(buf, int16(src))
	return buf
}

// encodeI32Store16Offset16Imm16 builds a fully inline store, requiring
// no trailing parameter slot.
func encodeI32Store16Offset16Imm16(ptr Register, offset, value int16) []byte {
	buf := putOp(nil, OpI32Store16Offset16Imm16)
	buf = putI16(buf, int16(ptr))
	buf = putI16(buf, offset)
	buf = putI16(buf, value)
	return buf
}

// encodeRegisterStore builds a two-slot wide store: the primary
// StoreFull record (pointer only) followed by a RegisterAndImm32
// parameter slot carrying the value register and the static offset.
func encodeRegisterStore(ptr Register, offset int32, valueReg Register) []byte {
	buf := putOp(nil, OpI32Store)
	buf = putI16(buf, int16(ptr))
	buf = putOp(buf, OpRegisterAndImm32)
	buf = putI16(buf, int16(valueReg))
	buf = putI32(buf, offset)
	return buf
}

func TestDecoderRoundTripCopy(t *testing.T) {
	buf := encodeCopy(Register(3), Register(5))
	d := NewDecoder(buf)
	op, vd, err := d.Dispatch()
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if op != OpCopy {
		t.Fatalf("op = %v, want OpCopy", op)
	}
	c, err := vd.Copy()
	if err != nil {
		t.Fatalf("decode copy: %v", err)
	}
	if c.Result != 3 || c.Src != 5 {
		t.Fatalf("got %+v", c)
	}
	if d.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", d.Remaining())
	}
}

func TestDecoderStreamRoundTrip(t *testing.T) {
	var stream []byte
	stream = append(stream, encodeCopy(1, 2)...)
	stream = append(stream, encodeI32Store16Offset16Imm16(0, 4, 7)...)
	stream = append(stream, putOp(nil, OpReturn)...)

	d := NewDecoder(stream)
	var ops []OpCode
	for d.Remaining() > 0 {
		op, vd, err := d.Dispatch()
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		ops = append(ops, op)
		if err := decodeDiscard(op, vd); err != nil {
			t.Fatalf("decode %v: %v", op, err)
		}
	}
	want := []OpCode{OpCopy, OpI32Store16Offset16Imm16, OpReturn}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops[%d] = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestSafeAndUnsafeAgree(t *testing.T) {
	buf := encodeRegisterStore(Register(2), 16, Register(9))

	d := NewDecoder(buf)
	op, vd, err := d.Dispatch()
	if err != nil {
		t.Fatalf("safe dispatch: %v", err)
	}
	store, err := vd.StoreFull()
	if err != nil {
		t.Fatalf("safe decode: %v", err)
	}
	param, err := expectParam(d, OpRegisterAndImm32)
	if err != nil {
		t.Fatalf("safe param: %v", err)
	}
	value, err := param.RegisterAndImm32()
	if err != nil {
		t.Fatalf("safe param decode: %v", err)
	}

	u := NewUnsafeDecoderFromBytes(buf)
	uop, uvd, err := u.Dispatch()
	if err != nil {
		t.Fatalf("unsafe dispatch: %v", err)
	}
	ustore, err := uvd.StoreFull()
	if err != nil {
		t.Fatalf("unsafe decode: %v", err)
	}
	uparam, err := expectParam(u, OpRegisterAndImm32)
	if err != nil {
		t.Fatalf("unsafe param: %v", err)
	}
	uvalue, err := uparam.RegisterAndImm32()
	if err != nil {
		t.Fatalf("unsafe param decode: %v", err)
	}

	if op != uop || store != ustore || value != uvalue {
		t.Fatalf("safe/unsafe mismatch: (%v,%+v,%+v) vs (%v,%+v,%+v)",
			op, store, value, uop, ustore, uvalue)
	}
}

func TestCursorMonotonic(t *testing.T) {
	buf := encodeCopy(1, 2)
	buf = append(buf, encodeCopy(3, 4)...)
	d := NewDecoder(buf)
	last := d.Pos()
	for d.Remaining() > 0 {
		op, vd, err := d.Dispatch()
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		if _, err := vd.Copy(); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if d.Pos() <= last {
			t.Fatalf("cursor did not advance: %d <= %d", d.Pos(), last)
		}
		if op != OpCopy {
			t.Fatalf("unexpected op %v", op)
		}
		last = d.Pos()
	}
}

func TestOpCodeDenseness(t *testing.T) {
	for op := OpCode(0); op <= maxOp; op++ {
		if op.String() == "InvalidOpCode" {
			t.Fatalf("opcode %d within [0, maxOp] has no name", op)
		}
	}
	if (maxOp + 1).String() != "InvalidOpCode" {
		t.Fatalf("opcode maxOp+1 should be invalid")
	}
}

func TestInvalidOpCodeRejected(t *testing.T) {
	buf := putU16(nil, uint16(maxOp)+1)
	d := NewDecoder(buf)
	_, _, err := d.Dispatch()
	var target *InvalidOpCode
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *InvalidOpCode", err)
	}
	if target.Pos != 0 {
		t.Fatalf("pos = %d, want 0", target.Pos)
	}
}

func TestInvalidBoolRejected(t *testing.T) {
	d := NewDecoder([]byte{2})
	_, err := d.DecodeBool()
	var target *InvalidBool
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *InvalidBool", err)
	}
}

func TestInvalidSignRejected(t *testing.T) {
	d := NewDecoder([]byte{7})
	_, err := d.DecodeSign()
	var target *InvalidSign
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *InvalidSign", err)
	}
}

func TestInvalidNonZeroRejected(t *testing.T) {
	buf := putU16(nil, 0)
	d := NewDecoder(buf)
	_, err := decodeNonZeroU16(d)
	var target *InvalidNonZeroValue
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *InvalidNonZeroValue", err)
	}
	if target.Pos != 0 {
		t.Fatalf("pos = %d, want 0", target.Pos)
	}
}

func TestTruncatedStreamRejected(t *testing.T) {
	buf := encodeCopy(1, 2)
	d := NewDecoder(buf[:len(buf)-1])
	_, vd, err := d.Dispatch()
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	_, err = vd.Copy()
	var target *EndOfStream
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *EndOfStream", err)
	}
}

func TestParameterMismatchRejected(t *testing.T) {
	buf := putOp(nil, OpCopy)
	buf = putI16(buf, 0)
	buf = putI16(buf, 0)
	d := NewDecoder(buf)
	if _, _, err := d.Dispatch(); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	_, err := expectParam(d, OpRegisterAndImm32)
	var target *ParameterMismatch
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want *ParameterMismatch", err)
	}
}

func TestInlineSliceRoundTrip(t *testing.T) {
	buf := putU16(nil, 3)
	buf = putU16(buf, 10)
	buf = putU16(buf, 20)
	buf = putU16(buf, 30)
	d := NewDecoder(buf)
	sl, err := decodeInlineSlice[uint16](d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sl.Len() != 3 {
		t.Fatalf("len = %d, want 3", sl.Len())
	}
	for i, want := range []uint16{10, 20, 30} {
		if got := sl.At(i); got != want {
			t.Fatalf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestUnsafeDecoderMatchesPointerArithmetic(t *testing.T) {
	buf := encodeCopy(1, 2)
	u := NewUnsafeDecoderFromBytes(buf)
	start := u.AsPtr()
	if start != unsafe.Pointer(&buf[0]) {
		t.Fatalf("unexpected start pointer")
	}
	if _, _, err := u.Dispatch(); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := u.DecodeRegister(); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	if got, want := u.AsPtr(), unsafe.Add(start, 4); got != want {
		t.Fatalf("cursor after tag and one register = %p, want %p", got, want)
	}
}
