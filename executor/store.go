package executor

import "github.com/tinywasm/ir"

// storeValue resolves the (value, offset) pair a full-width store
// reads from its trailing parameter slot: a RegisterAndImm32{reg,
// imm} for a register-valued store, where reg names the value
// register and imm carries the static offset, or an
// Imm16AndImm32{Lo, Hi} for an immediate-valued store, where Lo is
// the value and Hi is the offset.
func (e *Executor) storeValue(spec storeSpec) (value uint64, offset uint32, err error) {
	if spec.ParamIsImm {
		param, err := ir.ExpectParam(e.decoder, ir.OpImm16AndImm32)
		if err != nil {
			return 0, 0, e.violation(err.Error())
		}
		imm, err := param.Imm16AndImm32()
		if err != nil {
			return 0, 0, err
		}
		return uint64(int64(imm.Lo)), uint32(imm.Hi), nil
	}
	param, err := ir.ExpectParam(e.decoder, ir.OpRegisterAndImm32)
	if err != nil {
		return 0, 0, e.violation(err.Error())
	}
	reg, err := param.RegisterAndImm32()
	if err != nil {
		return 0, 0, err
	}
	return e.frame.Get(reg.Register), uint32(reg.Imm), nil
}

// execStore applies one store-family instruction: it decodes the
// primary operand record for spec.Shape, resolves the address,
// offset, and value (peeking the trailing parameter slot only for the
// full form, per storeValue), resolves the target memory, and writes
// spec.Width bytes, per the typed primitives in memprims.go.
func (e *Executor) execStore(op ir.OpCode) error {
	spec, ok := storeSpecs[op]
	if !ok {
		return e.violation("unimplemented store opcode " + op.String())
	}

	var addr, off uint32
	var value uint64

	switch spec.Shape {
	case storeShapeFull:
		rec, err := e.vd.StoreFull()
		if err != nil {
			return err
		}
		value, off, err = e.storeValue(spec)
		if err != nil {
			return err
		}
		addr = uint32(e.frame.Get(rec.Ptr))
	case storeShapeOffset16:
		rec, err := e.vd.StoreOffset16()
		if err != nil {
			return err
		}
		addr, off, value = uint32(e.frame.Get(rec.Ptr)), uint32(rec.Offset), e.frame.Get(rec.Value)
	case storeShapeOffset16Imm16:
		rec, err := e.vd.StoreOffset16Imm16()
		if err != nil {
			return err
		}
		addr, off, value = uint32(e.frame.Get(rec.Ptr)), uint32(rec.Offset), uint64(int64(rec.Value))
	case storeShapeAt:
		rec, err := e.vd.StoreAt()
		if err != nil {
			return err
		}
		off, value = uint32(rec.Address), e.frame.Get(rec.Value)
	case storeShapeAtImm16:
		rec, err := e.vd.StoreAtImm16()
		if err != nil {
			return err
		}
		off, value = uint32(rec.Address), uint64(int64(rec.Value))
	}

	mem, err := e.resolveMemory(DefaultMemory)
	if err != nil {
		return err
	}
	switch spec.Width {
	case 1:
		return i32Store8(mem, addr, off, uint32(value))
	case 2:
		return i32Store16(mem, addr, off, uint32(value))
	case 4:
		return store32(mem, addr, off, uint32(value))
	default:
		return store64(mem, addr, off, value)
	}
}

// storeShape groups the store family's five decode layouts. It is
// carried in storeSpecs (tables_gen.go) rather than derived at
// dispatch time, since ir keeps its own shape table (shapeOf in
// schema.go) private.
type storeShape uint8

const (
	storeShapeFull storeShape = iota
	storeShapeOffset16
	storeShapeOffset16Imm16
	storeShapeAt
	storeShapeAtImm16
)
