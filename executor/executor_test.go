package executor

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/tinywasm/ir"
)

func putOp(buf []byte, op ir.OpCode) []byte {
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, uint16(op))
	return append(buf, b...)
}

func putI16(buf []byte, v int16) []byte {
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, uint16(v))
	return append(buf, b...)
}

func putI32(buf []byte, v int32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, uint32(v))
	return append(buf, b...)
}

func newTestMemory(t *testing.T, pages int) *Memory {
	t.Helper()
	mem, err := NewMemory(pages, 0)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	t.Cleanup(func() { mem.Close() })
	return mem
}

func TestExecutorRegisterStore(t *testing.T) {
	mem := newTestMemory(t, 1)
	ex := NewExecutor(mem, nil, 4)
	ex.Frame().Set(ir.Register(0), 0)  // ptr register: address 0
	ex.Frame().Set(ir.Register(1), 42) // value register

	var buf []byte
	buf = putOp(buf, ir.OpI32Store)
	buf = putI16(buf, 0) // ptr reg 0
	buf = putOp(buf, ir.OpRegisterAndImm32)
	buf = putI16(buf, 1) // value reg 1
	buf = putI32(buf, 8) // static offset
	buf = putOp(buf, ir.OpReturn)

	if err := ex.Run(firstByte(buf)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := binary.NativeEndian.Uint32(mem.Bytes()[8:12])
	if got != 42 {
		t.Fatalf("stored value = %d, want 42", got)
	}
}

func TestExecutorImmediateStoreThenLoad(t *testing.T) {
	mem := newTestMemory(t, 1)
	ex := NewExecutor(mem, nil, 4)
	ex.Frame().Set(ir.Register(0), 0)

	var buf []byte
	buf = putOp(buf, ir.OpI32StoreOffset16Imm16)
	buf = putI16(buf, 0)  // ptr reg
	buf = putI16(buf, 4)  // offset16
	buf = putI16(buf, 99) // inline value
	buf = putOp(buf, ir.OpI32Load)
	buf = putI16(buf, 1) // result reg 1
	buf = putI16(buf, 0) // ptr reg
	buf = putI32(buf, 4) // offset
	buf = putOp(buf, ir.OpReturn)

	if err := ex.Run(firstByte(buf)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v := ex.Frame().GetI32(ir.Register(1)); v != 99 {
		t.Fatalf("loaded value = %d, want 99", v)
	}
}

func TestExecutorParameterMismatchPanics(t *testing.T) {
	mem := newTestMemory(t, 1)
	ex := NewExecutor(mem, nil, 4)
	ex.Frame().Set(ir.Register(0), 0)

	var buf []byte
	buf = putOp(buf, ir.OpI32Store)
	buf = putI16(buf, 0)
	buf = putOp(buf, ir.OpReturn) // wrong: not a parameter slot

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on parameter mismatch")
		}
		if _, ok := r.(*ContractViolation); !ok {
			t.Fatalf("panic value = %T, want *ContractViolation", r)
		}
	}()
	_ = ex.Run(firstByte(buf))
}

func TestExecutorBranchLoop(t *testing.T) {
	mem := newTestMemory(t, 1)
	ex := NewExecutor(mem, nil, 4)
	ex.Frame().Set(ir.Register(0), 3) // counter

	// loop: counter -= 1; branch_if_non_zero counter, -offset; return
	// offset is relative to the cursor position right after the branch
	// instruction's own operand record is decoded, so it must equal the
	// total byte length from the loop's start through the end of the
	// branch instruction for the jump to land back on OpI32SubImm.
	var loop []byte
	loop = putOp(loop, ir.OpI32SubImm)
	loop = putI16(loop, 0)
	loop = putI16(loop, 0)
	loop = putI32(loop, 1)
	loop = putOp(loop, ir.OpBranchIfNonZero)
	loop = putI16(loop, 0)
	backOffset := len(loop) + 4 // +4 for the offset field about to be appended
	loop = putI32(loop, -int32(backOffset))
	loop = putOp(loop, ir.OpReturn)

	if err := ex.Run(firstByte(loop)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v := ex.Frame().GetI32(ir.Register(0)); v != 0 {
		t.Fatalf("counter = %d, want 0", v)
	}
}

func TestExecutorTrap(t *testing.T) {
	mem := newTestMemory(t, 1)
	ex := NewExecutor(mem, nil, 1)

	var buf []byte
	buf = putOp(buf, ir.OpTrap)
	buf = append(buf, byte(0)) // TrapUnreachable

	err := ex.Run(firstByte(buf))
	trap, ok := err.(*Trap)
	if !ok {
		t.Fatalf("err = %v (%T), want *Trap", err, err)
	}
	if trap.Code != "Unreachable" {
		t.Fatalf("trap code = %q, want Unreachable", trap.Code)
	}
}

func firstByte(buf []byte) unsafe.Pointer {
	return unsafe.Pointer(&buf[0])
}
