package ir

import "fmt"

// Disassemble walks buf through a Decoder and renders one line per
// instruction as "<pos> <opcode> <operand record>", the bounds-checked
// mirror of vm/bytecode.go's cursor-walking String method in the
// teacher. It stops at the first decode error, returning the lines
// produced so far alongside the error so a caller (cmd/irdump) can
// still show a partial disassembly of a malformed stream.
func Disassemble(buf []byte) ([]string, error) {
	d := NewDecoder(buf)
	var lines []string
	for d.Remaining() > 0 {
		pos := d.Pos()
		op, vd, err := d.Dispatch()
		if err != nil {
			return lines, err
		}
		rec, err := formatOperand(op, vd)
		if err != nil {
			return lines, err
		}
		lines = append(lines, fmt.Sprintf("%6d  %-28s %s", pos, op, rec))
	}
	return lines, nil
}

// formatOperand decodes op's operand record and renders it with %+v.
// shapeNone opcodes (Return) have no record to show.
func formatOperand(op OpCode, vd VariantDecoder[*Decoder]) (string, error) {
	switch shapeOf(op) {
	case shapeNone:
		return "", nil
	case shapeTrap:
		v, err := vd.Trap()
		return fmt.Sprintf("%+v", v), err
	case shapeCopy:
		v, err := vd.Copy()
		return fmt.Sprintf("%+v", v), err
	case shapeBranchOffset:
		v, err := vd.Branch()
		return fmt.Sprintf("%+v", v), err
	case shapeBranchIfNonZero:
		v, err := vd.BranchIfNonZero()
		return fmt.Sprintf("%+v", v), err
	case shapeRegisterAndImm32:
		v, err := vd.RegisterAndImm32()
		return fmt.Sprintf("%+v", v), err
	case shapeImm16AndImm32:
		v, err := vd.Imm16AndImm32()
		return fmt.Sprintf("%+v", v), err
	case shapeBinOpRegs:
		v, err := vd.BinOpRegs()
		return fmt.Sprintf("%+v", v), err
	case shapeBinOpImm:
		v, err := vd.BinOpImm()
		return fmt.Sprintf("%+v", v), err
	case shapeStoreFull:
		v, err := vd.StoreFull()
		return fmt.Sprintf("%+v", v), err
	case shapeStoreOffset16:
		v, err := vd.StoreOffset16()
		return fmt.Sprintf("%+v", v), err
	case shapeStoreOffset16Imm16:
		v, err := vd.StoreOffset16Imm16()
		return fmt.Sprintf("%+v", v), err
	case shapeStoreAt:
		v, err := vd.StoreAt()
		return fmt.Sprintf("%+v", v), err
	case shapeStoreAtImm16:
		v, err := vd.StoreAtImm16()
		return fmt.Sprintf("%+v", v), err
	case shapeLoadFull:
		v, err := vd.LoadFull()
		return fmt.Sprintf("%+v", v), err
	case shapeLoadOffset16:
		v, err := vd.LoadOffset16()
		return fmt.Sprintf("%+v", v), err
	case shapeLoadAt:
		v, err := vd.LoadAt()
		return fmt.Sprintf("%+v", v), err
	default:
		return "", nil
	}
}
