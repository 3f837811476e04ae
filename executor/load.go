package executor

import "github.com/tinywasm/ir"

// loadShape groups the load family's three decode layouts, mirroring
// storeShape; carried in loadSpecs (tables_gen.go).
type loadShape uint8

const (
	loadShapeFull loadShape = iota
	loadShapeOffset16
	loadShapeAt
)

// execLoad applies one load-family instruction: it decodes the
// primary operand record, reads spec.Width bytes from the resolved
// memory at ptr-register-address + static offset (or at the immediate
// address, for the At form), sign- or
// zero-extends per spec.Signed, and writes the result register.
func (e *Executor) execLoad(op ir.OpCode) error {
	spec, ok := loadSpecs[op]
	if !ok {
		return e.violation("unimplemented load opcode " + op.String())
	}

	var result ir.Register
	var addr, offset uint32

	switch spec.Shape {
	case loadShapeFull:
		rec, err := e.vd.LoadFull()
		if err != nil {
			return err
		}
		result, addr, offset = rec.Result, uint32(e.frame.Get(rec.Ptr)), uint32(rec.Offset)
	case loadShapeOffset16:
		rec, err := e.vd.LoadOffset16()
		if err != nil {
			return err
		}
		result, addr, offset = rec.Result, uint32(e.frame.Get(rec.Ptr)), uint32(rec.Offset)
	case loadShapeAt:
		rec, err := e.vd.LoadAt()
		if err != nil {
			return err
		}
		result, offset = rec.Result, uint32(rec.Address)
	}

	mem, err := e.resolveMemory(DefaultMemory)
	if err != nil {
		return err
	}
	raw, err := loadWidth(mem, addr, offset, spec.Width)
	if err != nil {
		return err
	}

	value := signExtend(raw, spec.Width, spec.Signed)
	e.frame.Set(result, value)
	return nil
}

// signExtend widens a zero-extended width-byte value to a full 64-bit
// lane, sign-extending from bit width*8-1 when signed is true.
func signExtend(raw uint64, width int, signed bool) uint64 {
	if !signed || width == 8 {
		return raw
	}
	shift := uint(64 - width*8)
	return uint64(int64(raw<<shift) >> shift)
}
