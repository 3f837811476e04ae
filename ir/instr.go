package ir

// instrShape names the operand-record layout a schema row decodes
// into. It is the link between the declarative schema (schema.go) and
// the generic decode functions below: shapeOf(op) tells a safe-decoder
// walk (verifyStream, Disassemble) which decode function to run without
// re-deriving it from the opcode's name.
type instrShape uint8

const (
	shapeNone instrShape = iota
	shapeTrap
	shapeCopy
	shapeBranchOffset
	shapeBranchIfNonZero
	shapeRegisterAndImm32
	shapeImm16AndImm32
	shapeBinOpRegs
	shapeBinOpImm
	shapeStoreFull
	shapeStoreOffset16
	shapeStoreOffset16Imm16
	shapeStoreAt
	shapeStoreAtImm16
	shapeLoadFull
	shapeLoadOffset16
	shapeLoadAt
)

// Trap carries the failure kind for OpTrap.
type Trap struct {
	Code TrapCode
}

func decodeTrapOperand[S byteSource](s S) (Trap, error) {
	code, err := decodeTrapCode(s)
	return Trap{Code: code}, err
}

// Copy moves the value in Src into Result.
type Copy struct {
	Result Register
	Src    Register
}

func decodeCopy[S byteSource](s S) (Copy, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return Copy{}, err
	}
	src, err := decodeRegister(s)
	if err != nil {
		return Copy{}, err
	}
	return Copy{Result: result, Src: src}, nil
}

// Branch unconditionally displaces the instruction pointer by Offset.
type Branch struct {
	Offset BranchOffset
}

func decodeBranch[S byteSource](s S) (Branch, error) {
	off, err := decodeBranchOffset(s)
	return Branch{Offset: off}, err
}

// BranchIfNonZero displaces the instruction pointer by Offset when the
// value in Condition is non-zero. The same record shape, with the
// opposite test, decodes OpBranchIfZero.
type BranchIfNonZero struct {
	Condition Register
	Offset    BranchOffset
}

func decodeBranchIfNonZero[S byteSource](s S) (BranchIfNonZero, error) {
	cond, err := decodeRegister(s)
	if err != nil {
		return BranchIfNonZero{}, err
	}
	off, err := decodeBranchOffset(s)
	if err != nil {
		return BranchIfNonZero{}, err
	}
	return BranchIfNonZero{Condition: cond, Offset: off}, nil
}

// RegisterAndImm32 pairs a register operand with a 32-bit immediate.
// It is both a standalone opcode (OpRegisterAndImm32) and the
// parameter-slot encoding that follows a wide register-valued store
// in the instruction stream: the executor decodes the primary store record
// from one slot, then decodes this shape from the next slot to obtain
// the value register the store writes.
type RegisterAndImm32 struct {
	Register Register
	Imm      AnyConst32
}

func decodeRegisterAndImm32[S byteSource](s S) (RegisterAndImm32, error) {
	reg, err := decodeRegister(s)
	if err != nil {
		return RegisterAndImm32{}, err
	}
	imm, err := decodeAnyConst32(s)
	if err != nil {
		return RegisterAndImm32{}, err
	}
	return RegisterAndImm32{Register: reg, Imm: imm}, nil
}

// Imm16AndImm32 pairs a 16-bit and a 32-bit immediate. Like
// RegisterAndImm32, it serves both as the standalone OpImm16AndImm32
// opcode and as the parameter-slot encoding following an
// immediate-valued wide store.
type Imm16AndImm32 struct {
	Lo AnyConst16
	Hi AnyConst32
}

func decodeImm16AndImm32[S byteSource](s S) (Imm16AndImm32, error) {
	lo, err := decodeAnyConst16(s)
	if err != nil {
		return Imm16AndImm32{}, err
	}
	hi, err := decodeAnyConst32(s)
	if err != nil {
		return Imm16AndImm32{}, err
	}
	return Imm16AndImm32{Lo: lo, Hi: hi}, nil
}

// BinOpRegs is the register-register form of a binary arithmetic
// opcode: Result gets Lhs op Rhs.
type BinOpRegs struct {
	Result Register
	Lhs    Register
	Rhs    Register
}

func decodeBinOpRegs[S byteSource](s S) (BinOpRegs, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return BinOpRegs{}, err
	}
	lhs, err := decodeRegister(s)
	if err != nil {
		return BinOpRegs{}, err
	}
	rhs, err := decodeRegister(s)
	if err != nil {
		return BinOpRegs{}, err
	}
	return BinOpRegs{Result: result, Lhs: lhs, Rhs: rhs}, nil
}

// BinOpImm is the register-immediate form of a binary arithmetic
// opcode: Result gets Lhs op Rhs, where Rhs is a constant baked into
// the instruction stream.
type BinOpImm struct {
	Result Register
	Lhs    Register
	Rhs    AnyConst32
}

func decodeBinOpImm[S byteSource](s S) (BinOpImm, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return BinOpImm{}, err
	}
	lhs, err := decodeRegister(s)
	if err != nil {
		return BinOpImm{}, err
	}
	rhs, err := decodeAnyConst32(s)
	if err != nil {
		return BinOpImm{}, err
	}
	return BinOpImm{Result: result, Lhs: lhs, Rhs: rhs}, nil
}

// StoreFull is the primary record of a full-width store: only the
// memory pointer register. Both the value and the 32-bit static
// offset are decoded from the instruction slot that immediately
// follows, as a RegisterAndImm32 (register-valued store: Register is
// the value register, Imm is the offset) or an Imm16AndImm32
// (immediate-valued store: Lo is the value, Hi is the offset) — see
// executor.Executor.storeValue.
type StoreFull struct {
	Ptr Register
}

func decodeStoreFull[S byteSource](s S) (StoreFull, error) {
	ptr, err := decodeRegister(s)
	return StoreFull{Ptr: ptr}, err
}

// StoreOffset16 is StoreFull's compact form: pointer, a 16-bit static
// offset, and the value register, all inline. No parameter slot
// follows.
type StoreOffset16 struct {
	Ptr    Register
	Offset AnyConst16
	Value  Register
}

func decodeStoreOffset16[S byteSource](s S) (StoreOffset16, error) {
	ptr, err := decodeRegister(s)
	if err != nil {
		return StoreOffset16{}, err
	}
	off, err := decodeAnyConst16(s)
	if err != nil {
		return StoreOffset16{}, err
	}
	val, err := decodeRegister(s)
	if err != nil {
		return StoreOffset16{}, err
	}
	return StoreOffset16{Ptr: ptr, Offset: off, Value: val}, nil
}

// StoreOffset16Imm16 is the fully inline store form: pointer, offset,
// and value all fit within this single record, so no parameter slot
// follows.
type StoreOffset16Imm16 struct {
	Ptr    Register
	Offset AnyConst16
	Value  AnyConst16
}

func decodeStoreOffset16Imm16[S byteSource](s S) (StoreOffset16Imm16, error) {
	ptr, err := decodeRegister(s)
	if err != nil {
		return StoreOffset16Imm16{}, err
	}
	off, err := decodeAnyConst16(s)
	if err != nil {
		return StoreOffset16Imm16{}, err
	}
	val, err := decodeAnyConst16(s)
	if err != nil {
		return StoreOffset16Imm16{}, err
	}
	return StoreOffset16Imm16{Ptr: ptr, Offset: off, Value: val}, nil
}

// StoreAt is the absolute-address store form: an immediate 32-bit
// address rather than a pointer register, plus the value register,
// both inline. No parameter slot follows.
type StoreAt struct {
	Address AnyConst32
	Value   Register
}

func decodeStoreAt[S byteSource](s S) (StoreAt, error) {
	addr, err := decodeAnyConst32(s)
	if err != nil {
		return StoreAt{}, err
	}
	val, err := decodeRegister(s)
	if err != nil {
		return StoreAt{}, err
	}
	return StoreAt{Address: addr, Value: val}, nil
}

// StoreAtImm16 is StoreAt with the value inlined, needing no parameter
// slot.
type StoreAtImm16 struct {
	Address AnyConst32
	Value   AnyConst16
}

func decodeStoreAtImm16[S byteSource](s S) (StoreAtImm16, error) {
	addr, err := decodeAnyConst32(s)
	if err != nil {
		return StoreAtImm16{}, err
	}
	val, err := decodeAnyConst16(s)
	if err != nil {
		return StoreAtImm16{}, err
	}
	return StoreAtImm16{Address: addr, Value: val}, nil
}

// LoadFull is the full-width load record: Result gets the value read
// from Ptr+Offset.
type LoadFull struct {
	Result Register
	Ptr    Register
	Offset AnyConst32
}

func decodeLoadFull[S byteSource](s S) (LoadFull, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return LoadFull{}, err
	}
	ptr, err := decodeRegister(s)
	if err != nil {
		return LoadFull{}, err
	}
	off, err := decodeAnyConst32(s)
	if err != nil {
		return LoadFull{}, err
	}
	return LoadFull{Result: result, Ptr: ptr, Offset: off}, nil
}

// LoadOffset16 is LoadFull's compact form.
type LoadOffset16 struct {
	Result Register
	Ptr    Register
	Offset AnyConst16
}

func decodeLoadOffset16[S byteSource](s S) (LoadOffset16, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return LoadOffset16{}, err
	}
	ptr, err := decodeRegister(s)
	if err != nil {
		return LoadOffset16{}, err
	}
	off, err := decodeAnyConst16(s)
	if err != nil {
		return LoadOffset16{}, err
	}
	return LoadOffset16{Result: result, Ptr: ptr, Offset: off}, nil
}

// LoadAt is the absolute-address load form: an immediate 32-bit
// address rather than a pointer register.
type LoadAt struct {
	Result  Register
	Address AnyConst32
}

func decodeLoadAt[S byteSource](s S) (LoadAt, error) {
	result, err := decodeRegister(s)
	if err != nil {
		return LoadAt{}, err
	}
	addr, err := decodeAnyConst32(s)
	if err != nil {
		return LoadAt{}, err
	}
	return LoadAt{Result: result, Address: addr}, nil
}

// VariantDecoder is positioned immediately after an opcode tag,
// returned by dispatch. The caller, already holding the OpCode from
// dispatch, calls the one accessor matching that opcode's schema
// shape; calling the wrong accessor for the dispatched opcode is a
// programming error in the caller; it still decodes, since shape
// determines the accessor's byte layout, not a runtime check.
type VariantDecoder[S byteSource] struct {
	s S
}

func (v VariantDecoder[S]) Trap() (Trap, error)         { return decodeTrapOperand(v.s) }
func (v VariantDecoder[S]) Copy() (Copy, error)         { return decodeCopy(v.s) }
func (v VariantDecoder[S]) Branch() (Branch, error)     { return decodeBranch(v.s) }
func (v VariantDecoder[S]) BranchIfNonZero() (BranchIfNonZero, error) {
	return decodeBranchIfNonZero(v.s)
}
func (v VariantDecoder[S]) RegisterAndImm32() (RegisterAndImm32, error) {
	return decodeRegisterAndImm32(v.s)
}
func (v VariantDecoder[S]) Imm16AndImm32() (Imm16AndImm32, error) {
	return decodeImm16AndImm32(v.s)
}
func (v VariantDecoder[S]) BinOpRegs() (BinOpRegs, error) { return decodeBinOpRegs(v.s) }
func (v VariantDecoder[S]) BinOpImm() (BinOpImm, error)   { return decodeBinOpImm(v.s) }
func (v VariantDecoder[S]) StoreFull() (StoreFull, error) { return decodeStoreFull(v.s) }
func (v VariantDecoder[S]) StoreOffset16() (StoreOffset16, error) {
	return decodeStoreOffset16(v.s)
}
func (v VariantDecoder[S]) StoreOffset16Imm16() (StoreOffset16Imm16, error) {
	return decodeStoreOffset16Imm16(v.s)
}
func (v VariantDecoder[S]) StoreAt() (StoreAt, error) { return decodeStoreAt(v.s) }
func (v VariantDecoder[S]) StoreAtImm16() (StoreAtImm16, error) {
	return decodeStoreAtImm16(v.s)
}
func (v VariantDecoder[S]) LoadFull() (LoadFull, error) { return decodeLoadFull(v.s) }
func (v VariantDecoder[S]) LoadOffset16() (LoadOffset16, error) {
	return decodeLoadOffset16(v.s)
}
func (v VariantDecoder[S]) LoadAt() (LoadAt, error) { return decodeLoadAt(v.s) }

// Source returns the underlying byteSource, for operand shapes that
// need further ad hoc decoding (inline slices, parameter words).
func (v VariantDecoder[S]) Source() S { return v.s }

// dispatch reads the two-byte opcode tag at the current cursor and
// returns it together with a VariantDecoder positioned at the start of
// that opcode's operand record (tag read, then variant decode).
func dispatch[S byteSource](s S) (OpCode, VariantDecoder[S], error) {
	raw, err := decodeU16(s)
	if err != nil {
		return 0, VariantDecoder[S]{}, err
	}
	op, err := s.checkOpCode(raw)
	if err != nil {
		return 0, VariantDecoder[S]{}, err
	}
	return op, VariantDecoder[S]{s: s}, nil
}

// expectParam decodes the instruction slot at the cursor as a
// parameter word and verifies its tag is want, the encoding the
// calling wide instruction committed to when it was assembled.
// Finding anything else means a producer emitted a malformed wide
// instruction: a contract violation, not a recoverable decode error.
func expectParam[S byteSource](s S, want OpCode) (VariantDecoder[S], error) {
	op, vd, err := dispatch(s)
	if err != nil {
		return VariantDecoder[S]{}, err
	}
	if op != want {
		return VariantDecoder[S]{}, &ParameterMismatch{Want: want, Got: op}
	}
	return vd, nil
}

// ExpectParam is expectParam exported for the executor package, which
// lives outside ir and needs to decode a wide instruction's trailing
// parameter slot.
func ExpectParam[S byteSource](s S, want OpCode) (VariantDecoder[S], error) {
	return expectParam(s, want)
}
