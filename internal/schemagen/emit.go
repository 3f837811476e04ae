package schemagen

import (
	"fmt"
	"io"
)

const autogenerated = "// Code generated automatically by cmd/genir from ir/schema.go; DO NOT EDIT."

// WriteOpcodeConstants writes ir/opcode_gen.go's body: the dense OpCode
// enum, maxOp, and the String method, with plain Fprintf rather than
// text/template.
func WriteOpcodeConstants(w io.Writer, variants []Variant) error {
	write := func(s string, args ...any) { fmt.Fprintf(w, s+"\n", args...) }

	write("package ir")
	write("")
	write(autogenerated)
	write("")
	write("// OpCode is the dense u16 discriminant tagging every instruction variant")
	write("// in the schema. Assignment is positional: OpCode(i) names schema row i.")
	write("type OpCode uint16")
	write("")
	write("const (")
	for i, v := range variants {
		if i == 0 {
			write("\tOp%s OpCode = iota", v.Camel)
		} else {
			write("\tOp%s", v.Camel)
		}
	}
	write(")")
	write("")
	write("// maxOp is the largest valid opcode discriminant. Any u16 greater than")
	write("// this value is rejected by the safe decoder's dispatch.")
	write("const maxOp OpCode = %d", len(variants)-1)
	write("")
	write("var opNames = [...]string{")
	for _, v := range variants {
		write("\t%q,", v.Camel)
	}
	write("}")
	write("")
	write("func (op OpCode) String() string {")
	write("\tif op > maxOp {")
	write("\t\treturn \"InvalidOpCode\"")
	write("\t}")
	write("\treturn opNames[op]")
	write("}")
	return nil
}

// WriteStoreTable writes executor/tables_gen.go's storeSpecs map,
// projected from the store-family rows DeriveStoreForms found.
func WriteStoreTable(w io.Writer, forms []StoreForm) error {
	write := func(s string, args ...any) { fmt.Fprintf(w, s+"\n", args...) }

	write(autogenerated)
	write("")
	write("package executor")
	write("")
	write("import \"github.com/tinywasm/ir\"")
	write("")
	write("// storeSpec describes how to decode and apply one store opcode:")
	write("// the width of the value written, whether a parameter slot follows")
	write("// the primary record, and, if so, which parameter encoding it uses.")
	write("type storeSpec struct {")
	write("\tWidth      int")
	write("\tShape      storeShape")
	write("\tNeedsParam bool")
	write("\tParamIsImm bool")
	write("}")
	write("")
	write("var storeSpecs = map[ir.OpCode]storeSpec{")
	for _, f := range forms {
		write("\tir.Op%s: {Width: %d, Shape: %s, NeedsParam: %t, ParamIsImm: %t},",
			f.Op, f.Width, f.Shape, f.NeedsParam, f.ParamIsImm)
	}
	write("}")
	return nil
}

// WriteLoadTable writes executor/tables_gen.go's loadSpecs map.
func WriteLoadTable(w io.Writer, forms []LoadForm) error {
	write := func(s string, args ...any) { fmt.Fprintf(w, s+"\n", args...) }

	write("")
	write("// loadSpec describes how to decode and apply one load opcode: the")
	write("// width read from memory, whether the result register is 64-bit, and")
	write("// whether a narrower-than-result read is sign-extended.")
	write("type loadSpec struct {")
	write("\tWidth    int")
	write("\tShape    loadShape")
	write("\tResult64 bool")
	write("\tSigned   bool")
	write("}")
	write("")
	write("var loadSpecs = map[ir.OpCode]loadSpec{")
	for _, f := range forms {
		write("\tir.Op%s: {Width: %d, Shape: %s, Result64: %t, Signed: %t},",
			f.Op, f.Width, f.Shape, f.Result64, f.Signed)
	}
	write("}")
	return nil
}
