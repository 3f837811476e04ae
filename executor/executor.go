package executor

import (
	"fmt"
	"unsafe"

	"github.com/google/uuid"

	"github.com/tinywasm/ir"
)

// Executor runs a verified instruction stream against a Memory and an
// optional host Store. It decodes through ir.UnsafeDecoder, so the
// stream passed to Run must already have round-tripped through
// ir.Decoder without error.
type Executor struct {
	InstanceID string

	// Trace, if set, is called once per dispatched instruction before
	// it executes. A host uses this to record an execution trace
	// (cmd/irdump's -trace flag) without the hot loop itself knowing
	// anything about trace formatting or compression.
	Trace func(op ir.OpCode)

	mem   *Memory
	store Store
	frame *Frame

	decoder *ir.UnsafeDecoder
	vd      ir.VariantDecoder[*ir.UnsafeDecoder]
}

// NewExecutor builds an executor over mem with numRegisters addressable
// registers. store may be nil if the program never addresses a
// non-default memory; doing so then is a contract violation.
func NewExecutor(mem *Memory, store Store, numRegisters int) *Executor {
	return &Executor{
		InstanceID: uuid.NewString(),
		mem:        mem,
		store:      store,
		frame:      NewFrame(numRegisters),
	}
}

// Frame exposes the executor's register file, for tests and for a
// host seeding arguments before Run.
func (e *Executor) Frame() *Frame { return e.frame }

func (e *Executor) resolveMemory(ref MemoryRef) ([]byte, error) {
	if ref == DefaultMemory {
		if e.mem == nil {
			return nil, e.violation("default memory access with no Memory attached")
		}
		return e.mem.Bytes(), nil
	}
	if e.store == nil {
		return nil, e.violation(fmt.Sprintf("non-default memory %d accessed with no Store attached", ref))
	}
	return e.store.ResolveMemoryMut(ref)
}

func (e *Executor) violation(reason string) error {
	err := &ContractViolation{InstanceID: e.InstanceID, Reason: reason}
	errorf("%s", err.Error())
	panic(err)
}

// Run decodes and executes instructions from ptr until the program
// returns or traps. It never bounds-checks reads through ptr: this is
// the executor's unsafe hot path.
func (e *Executor) Run(ptr unsafe.Pointer) error {
	e.decoder = ir.NewUnsafeDecoder(ptr)
	for {
		op, vd, err := e.decoder.Dispatch()
		if err != nil {
			return err
		}
		e.vd = vd
		if e.Trace != nil {
			e.Trace(op)
		}

		switch {
		case op == ir.OpTrap:
			t, err := vd.Trap()
			if err != nil {
				return err
			}
			return &Trap{Code: t.Code.String()}
		case op == ir.OpReturn:
			return nil
		case op == ir.OpCopy:
			c, err := vd.Copy()
			if err != nil {
				return err
			}
			e.frame.Set(c.Result, e.frame.Get(c.Src))
		case op == ir.OpBranch:
			b, err := vd.Branch()
			if err != nil {
				return err
			}
			e.decoder.Advance(int(b.Offset))
		case op == ir.OpBranchIfNonZero, op == ir.OpBranchIfZero:
			b, err := vd.BranchIfNonZero()
			if err != nil {
				return err
			}
			zero := e.frame.Get(b.Condition) == 0
			if (op == ir.OpBranchIfNonZero) == !zero {
				e.decoder.Advance(int(b.Offset))
			}
		case op == ir.OpI32Add || op == ir.OpI32Sub:
			b, err := vd.BinOpRegs()
			if err != nil {
				return err
			}
			e.frame.SetI32(b.Result, applyI32(op, e.frame.GetI32(b.Lhs), e.frame.GetI32(b.Rhs)))
		case op == ir.OpI32AddImm || op == ir.OpI32SubImm:
			b, err := vd.BinOpImm()
			if err != nil {
				return err
			}
			e.frame.SetI32(b.Result, applyI32(op, e.frame.GetI32(b.Lhs), int32(b.Rhs)))
		case isStoreOp(op):
			if err := e.execStore(op); err != nil {
				return err
			}
		case isLoadOp(op):
			if err := e.execLoad(op); err != nil {
				return err
			}
		default:
			return e.violation("unimplemented opcode " + op.String())
		}
	}
}

func applyI32(op ir.OpCode, lhs, rhs int32) int32 {
	switch op {
	case ir.OpI32Add, ir.OpI32AddImm:
		return lhs + rhs
	default:
		return lhs - rhs
	}
}

func isStoreOp(op ir.OpCode) bool {
	_, ok := storeSpecs[op]
	return ok
}

func isLoadOp(op ir.OpCode) bool {
	_, ok := loadSpecs[op]
	return ok
}
