package executor

import "github.com/tinywasm/ir"

// Frame is the flat register file backing one activation of the
// executor. Registers hold raw 64-bit lanes; callers reinterpret the
// bits as i32/i64 per the instruction that produced them, an untyped
// value convention.
type Frame struct {
	regs []uint64
}

// NewFrame allocates a frame with n addressable registers.
func NewFrame(n int) *Frame {
	return &Frame{regs: make([]uint64, n)}
}

// Get returns the raw bits held in r.
func (f *Frame) Get(r ir.Register) uint64 {
	return f.regs[r]
}

// Set stores v's raw bits into r.
func (f *Frame) Set(r ir.Register, v uint64) {
	f.regs[r] = v
}

// SetI32 stores a sign-agnostic 32-bit lane into r, zero-extending.
func (f *Frame) SetI32(r ir.Register, v int32) {
	f.regs[r] = uint64(uint32(v))
}

// GetI32 reads the low 32 bits of r.
func (f *Frame) GetI32(r ir.Register) int32 {
	return int32(uint32(f.regs[r]))
}
