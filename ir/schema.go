package ir

//go:generate go run ../cmd/genir -schema schema.go -opcodes opcode_gen.go -tables ../executor/tables_gen.go

// variantDef is one row of the declarative instruction schema: the
// single source of truth cmd/genir projects the opcode enum
// (opcode_gen.go) and the executor's store/load tables
// (executor/tables_gen.go) from; shapeOf reads each row's shape
// directly. cmd/genir parses the snake names but generates no
// executor method stubs from them. Row order is significant: row i is
// assigned OpCode(i).
type variantDef struct {
	camel string // e.g. "I32Store"; also the opcode's tag name
	snake string // e.g. "i32_store"; snake-case name of the variant
	shape instrShape
}

// schema is the closed, ordered list of instruction variants. Adding a
// variant means appending a row here and re-running cmd/genir; rows
// are never reordered or removed once shipped, since row index is the
// wire-format opcode.
var schema = [maxOp + 1]variantDef{
	OpTrap: {camel: "Trap", snake: "trap", shape: shapeTrap},
	OpReturn: {camel: "Return", snake: "return_", shape: shapeNone},
	OpCopy: {camel: "Copy", snake: "copy", shape: shapeCopy},
	OpBranch: {camel: "Branch", snake: "branch", shape: shapeBranchOffset},
	OpBranchIfNonZero: {camel: "BranchIfNonZero", snake: "branch_if_non_zero", shape: shapeBranchIfNonZero},
	OpBranchIfZero: {camel: "BranchIfZero", snake: "branch_if_zero", shape: shapeBranchIfNonZero},
	OpRegisterAndImm32: {camel: "RegisterAndImm32", snake: "register_and_imm32", shape: shapeRegisterAndImm32},
	OpImm16AndImm32: {camel: "Imm16AndImm32", snake: "imm16_and_imm32", shape: shapeImm16AndImm32},
	OpI32Add: {camel: "I32Add", snake: "i32_add", shape: shapeBinOpRegs},
	OpI32AddImm: {camel: "I32AddImm", snake: "i32_add_imm", shape: shapeBinOpImm},
	OpI32Sub: {camel: "I32Sub", snake: "i32_sub", shape: shapeBinOpRegs},
	OpI32SubImm: {camel: "I32SubImm", snake: "i32_sub_imm", shape: shapeBinOpImm},
	OpI32Store: {camel: "I32Store", snake: "i32_store", shape: shapeStoreFull},
	OpI32StoreImm: {camel: "I32StoreImm", snake: "i32_store_imm", shape: shapeStoreFull},
	OpI32StoreOffset16: {camel: "I32StoreOffset16", snake: "i32_store_offset16", shape: shapeStoreOffset16},
	OpI32StoreOffset16Imm16: {camel: "I32StoreOffset16Imm16", snake: "i32_store_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI32StoreAt: {camel: "I32StoreAt", snake: "i32_store_at", shape: shapeStoreAt},
	OpI32StoreAtImm16: {camel: "I32StoreAtImm16", snake: "i32_store_at_imm16", shape: shapeStoreAtImm16},
	OpI64Store: {camel: "I64Store", snake: "i64_store", shape: shapeStoreFull},
	OpI64StoreImm: {camel: "I64StoreImm", snake: "i64_store_imm", shape: shapeStoreFull},
	OpI64StoreOffset16: {camel: "I64StoreOffset16", snake: "i64_store_offset16", shape: shapeStoreOffset16},
	OpI64StoreOffset16Imm16: {camel: "I64StoreOffset16Imm16", snake: "i64_store_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI64StoreAt: {camel: "I64StoreAt", snake: "i64_store_at", shape: shapeStoreAt},
	OpI64StoreAtImm16: {camel: "I64StoreAtImm16", snake: "i64_store_at_imm16", shape: shapeStoreAtImm16},
	OpI32Store8: {camel: "I32Store8", snake: "i32_store8", shape: shapeStoreFull},
	OpI32Store8Imm: {camel: "I32Store8Imm", snake: "i32_store8_imm", shape: shapeStoreFull},
	OpI32Store8Offset16: {camel: "I32Store8Offset16", snake: "i32_store8_offset16", shape: shapeStoreOffset16},
	OpI32Store8Offset16Imm16: {camel: "I32Store8Offset16Imm16", snake: "i32_store8_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI32Store8At: {camel: "I32Store8At", snake: "i32_store8_at", shape: shapeStoreAt},
	OpI32Store8AtImm16: {camel: "I32Store8AtImm16", snake: "i32_store8_at_imm16", shape: shapeStoreAtImm16},
	OpI32Store16: {camel: "I32Store16", snake: "i32_store16", shape: shapeStoreFull},
	OpI32Store16Imm: {camel: "I32Store16Imm", snake: "i32_store16_imm", shape: shapeStoreFull},
	OpI32Store16Offset16: {camel: "I32Store16Offset16", snake: "i32_store16_offset16", shape: shapeStoreOffset16},
	OpI32Store16Offset16Imm16: {camel: "I32Store16Offset16Imm16", snake: "i32_store16_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI32Store16At: {camel: "I32Store16At", snake: "i32_store16_at", shape: shapeStoreAt},
	OpI32Store16AtImm16: {camel: "I32Store16AtImm16", snake: "i32_store16_at_imm16", shape: shapeStoreAtImm16},
	OpI64Store8: {camel: "I64Store8", snake: "i64_store8", shape: shapeStoreFull},
	OpI64Store8Imm: {camel: "I64Store8Imm", snake: "i64_store8_imm", shape: shapeStoreFull},
	OpI64Store8Offset16: {camel: "I64Store8Offset16", snake: "i64_store8_offset16", shape: shapeStoreOffset16},
	OpI64Store8Offset16Imm16: {camel: "I64Store8Offset16Imm16", snake: "i64_store8_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI64Store8At: {camel: "I64Store8At", snake: "i64_store8_at", shape: shapeStoreAt},
	OpI64Store8AtImm16: {camel: "I64Store8AtImm16", snake: "i64_store8_at_imm16", shape: shapeStoreAtImm16},
	OpI64Store16: {camel: "I64Store16", snake: "i64_store16", shape: shapeStoreFull},
	OpI64Store16Imm: {camel: "I64Store16Imm", snake: "i64_store16_imm", shape: shapeStoreFull},
	OpI64Store16Offset16: {camel: "I64Store16Offset16", snake: "i64_store16_offset16", shape: shapeStoreOffset16},
	OpI64Store16Offset16Imm16: {camel: "I64Store16Offset16Imm16", snake: "i64_store16_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI64Store16At: {camel: "I64Store16At", snake: "i64_store16_at", shape: shapeStoreAt},
	OpI64Store16AtImm16: {camel: "I64Store16AtImm16", snake: "i64_store16_at_imm16", shape: shapeStoreAtImm16},
	OpI64Store32: {camel: "I64Store32", snake: "i64_store32", shape: shapeStoreFull},
	OpI64Store32Imm: {camel: "I64Store32Imm", snake: "i64_store32_imm", shape: shapeStoreFull},
	OpI64Store32Offset16: {camel: "I64Store32Offset16", snake: "i64_store32_offset16", shape: shapeStoreOffset16},
	OpI64Store32Offset16Imm16: {camel: "I64Store32Offset16Imm16", snake: "i64_store32_offset16_imm16", shape: shapeStoreOffset16Imm16},
	OpI64Store32At: {camel: "I64Store32At", snake: "i64_store32_at", shape: shapeStoreAt},
	OpI64Store32AtImm16: {camel: "I64Store32AtImm16", snake: "i64_store32_at_imm16", shape: shapeStoreAtImm16},
	OpI32Load: {camel: "I32Load", snake: "i32_load", shape: shapeLoadFull},
	OpI32LoadOffset16: {camel: "I32LoadOffset16", snake: "i32_load_offset16", shape: shapeLoadOffset16},
	OpI32LoadAt: {camel: "I32LoadAt", snake: "i32_load_at", shape: shapeLoadAt},
	OpI64Load: {camel: "I64Load", snake: "i64_load", shape: shapeLoadFull},
	OpI64LoadOffset16: {camel: "I64LoadOffset16", snake: "i64_load_offset16", shape: shapeLoadOffset16},
	OpI64LoadAt: {camel: "I64LoadAt", snake: "i64_load_at", shape: shapeLoadAt},
	OpI32Load8S: {camel: "I32Load8S", snake: "i32_load8_s", shape: shapeLoadFull},
	OpI32Load8SOffset16: {camel: "I32Load8SOffset16", snake: "i32_load8_s_offset16", shape: shapeLoadOffset16},
	OpI32Load8SAt: {camel: "I32Load8SAt", snake: "i32_load8_s_at", shape: shapeLoadAt},
	OpI32Load8U: {camel: "I32Load8U", snake: "i32_load8_u", shape: shapeLoadFull},
	OpI32Load8UOffset16: {camel: "I32Load8UOffset16", snake: "i32_load8_u_offset16", shape: shapeLoadOffset16},
	OpI32Load8UAt: {camel: "I32Load8UAt", snake: "i32_load8_u_at", shape: shapeLoadAt},
	OpI32Load16S: {camel: "I32Load16S", snake: "i32_load16_s", shape: shapeLoadFull},
	OpI32Load16SOffset16: {camel: "I32Load16SOffset16", snake: "i32_load16_s_offset16", shape: shapeLoadOffset16},
	OpI32Load16SAt: {camel: "I32Load16SAt", snake: "i32_load16_s_at", shape: shapeLoadAt},
	OpI32Load16U: {camel: "I32Load16U", snake: "i32_load16_u", shape: shapeLoadFull},
	OpI32Load16UOffset16: {camel: "I32Load16UOffset16", snake: "i32_load16_u_offset16", shape: shapeLoadOffset16},
	OpI32Load16UAt: {camel: "I32Load16UAt", snake: "i32_load16_u_at", shape: shapeLoadAt},
	OpI64Load8S: {camel: "I64Load8S", snake: "i64_load8_s", shape: shapeLoadFull},
	OpI64Load8SOffset16: {camel: "I64Load8SOffset16", snake: "i64_load8_s_offset16", shape: shapeLoadOffset16},
	OpI64Load8SAt: {camel: "I64Load8SAt", snake: "i64_load8_s_at", shape: shapeLoadAt},
	OpI64Load8U: {camel: "I64Load8U", snake: "i64_load8_u", shape: shapeLoadFull},
	OpI64Load8UOffset16: {camel: "I64Load8UOffset16", snake: "i64_load8_u_offset16", shape: shapeLoadOffset16},
	OpI64Load8UAt: {camel: "I64Load8UAt", snake: "i64_load8_u_at", shape: shapeLoadAt},
	OpI64Load16S: {camel: "I64Load16S", snake: "i64_load16_s", shape: shapeLoadFull},
	OpI64Load16SOffset16: {camel: "I64Load16SOffset16", snake: "i64_load16_s_offset16", shape: shapeLoadOffset16},
	OpI64Load16SAt: {camel: "I64Load16SAt", snake: "i64_load16_s_at", shape: shapeLoadAt},
	OpI64Load16U: {camel: "I64Load16U", snake: "i64_load16_u", shape: shapeLoadFull},
	OpI64Load16UOffset16: {camel: "I64Load16UOffset16", snake: "i64_load16_u_offset16", shape: shapeLoadOffset16},
	OpI64Load16UAt: {camel: "I64Load16UAt", snake: "i64_load16_u_at", shape: shapeLoadAt},
	OpI64Load32S: {camel: "I64Load32S", snake: "i64_load32_s", shape: shapeLoadFull},
	OpI64Load32SOffset16: {camel: "I64Load32SOffset16", snake: "i64_load32_s_offset16", shape: shapeLoadOffset16},
	OpI64Load32SAt: {camel: "I64Load32SAt", snake: "i64_load32_s_at", shape: shapeLoadAt},
	OpI64Load32U: {camel: "I64Load32U", snake: "i64_load32_u", shape: shapeLoadFull},
	OpI64Load32UOffset16: {camel: "I64Load32UOffset16", snake: "i64_load32_u_offset16", shape: shapeLoadOffset16},
	OpI64Load32UAt: {camel: "I64Load32UAt", snake: "i64_load32_u_at", shape: shapeLoadAt},
}

// shapeOf returns the operand-record layout used by op's decoder.
// It indexes schema without a range check, so op must already have
// passed the safe Decoder's dispatch; its callers are verifyStream
// (cache.go) and Disassemble (disasm.go).
func shapeOf(op OpCode) instrShape {
	return schema[op].shape
}

