// Package schemagen projects ir/opcode_gen.go and the executor's
// store/load dispatch tables from the declarative schema in
// ir/schema.go. It is driven by cmd/genir; nothing in this package runs
// at build time for library consumers of ir or executor.
package schemagen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/exp/slices"
)

// Variant is one row of the schema table, in declaration order. Row
// index is the wire-format OpCode.
type Variant struct {
	Camel string // e.g. "I32Store"
	Snake string // e.g. "i32_store"
	Shape string // the instrShape constant name, e.g. "shapeStoreFull"
}

// ParseSchema reads the `schema` variable declared in src (the contents
// of ir/schema.go) and returns its rows in declaration order. It only
// understands the one shape schema.go is written in: a composite
// literal of the form
//
//	var schema = [maxOp + 1]variantDef{
//	    OpFoo: {camel: "...", snake: "...", shape: shapeFoo},
//	    ...
//	}
//
// keyed composite literal elements are read positionally by their Op*
// key name disappearing once resolved — schemagen does not resolve
// OpCode values itself, it trusts row order, matching ir/schema.go's own
// comment that row order is the wire format.
func ParseSchema(src []byte) ([]Variant, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "schema.go", src, 0)
	if err != nil {
		return nil, fmt.Errorf("schemagen: parse: %w", err)
	}

	var lit *ast.CompositeLit
	ast.Inspect(file, func(n ast.Node) bool {
		if lit != nil {
			return false
		}
		spec, ok := n.(*ast.ValueSpec)
		if !ok || len(spec.Names) != 1 || spec.Names[0].Name != "schema" {
			return true
		}
		if len(spec.Values) != 1 {
			return true
		}
		cl, ok := spec.Values[0].(*ast.CompositeLit)
		if ok {
			lit = cl
		}
		return false
	})
	if lit == nil {
		return nil, fmt.Errorf("schemagen: no `schema` composite literal found")
	}

	variants := make([]Variant, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, fmt.Errorf("schemagen: schema row is not a key-value element: %T", elt)
		}
		row, ok := kv.Value.(*ast.CompositeLit)
		if !ok {
			return nil, fmt.Errorf("schemagen: schema row value is not a struct literal: %T", kv.Value)
		}
		v := Variant{}
		for _, f := range row.Elts {
			fkv, ok := f.(*ast.KeyValueExpr)
			if !ok {
				continue
			}
			name, ok := fkv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			switch name.Name {
			case "camel":
				v.Camel = stringLit(fkv.Value)
			case "snake":
				v.Snake = stringLit(fkv.Value)
			case "shape":
				if id, ok := fkv.Value.(*ast.Ident); ok {
					v.Shape = id.Name
				}
			}
		}
		if v.Camel == "" {
			return nil, fmt.Errorf("schemagen: schema row missing camel field")
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func stringLit(e ast.Expr) string {
	bl, ok := e.(*ast.BasicLit)
	if !ok || bl.Kind != token.STRING {
		return ""
	}
	// bl.Value is still quoted; strip the surrounding double quotes.
	if len(bl.Value) >= 2 {
		return bl.Value[1 : len(bl.Value)-1]
	}
	return ""
}

// StoreForm and LoadForm classify a variant's camel name into the
// family the executor's tables_gen.go groups opcodes by, mirroring the
// teacher's genops.go writing multiple derived tables off one parsed
// Opcode list rather than one table per generator pass.
type StoreForm struct {
	Op         string
	Width      int
	Shape      string
	NeedsParam bool
	ParamIsImm bool
}

// storeWidths maps a store mnemonic's type/width infix to its byte
// width, matching executor/memprims.go's typed primitives.
var storeWidths = map[string]int{
	"I32Store":   4,
	"I64Store":   8,
	"I32Store8":  1,
	"I32Store16": 2,
	"I64Store8":  1,
	"I64Store16": 2,
	"I64Store32": 4,
}

// DeriveStoreForms walks variants for every store-family row and
// returns the (opcode, width, shape, parameter) tuple the executor
// needs, sorted by Op for stable generated output.
func DeriveStoreForms(variants []Variant) []StoreForm {
	var out []StoreForm
	for _, v := range variants {
		width, base, ok := splitStoreMnemonic(v.Camel)
		if !ok {
			continue
		}
		_ = base
		form := StoreForm{Op: v.Camel, Width: width}
		switch v.Shape {
		case "shapeStoreFull":
			form.Shape, form.NeedsParam = "storeShapeFull", true
			form.ParamIsImm = storeSuffix(v.Camel) == "Imm"
		case "shapeStoreOffset16":
			form.Shape, form.NeedsParam = "storeShapeOffset16", false
		case "shapeStoreOffset16Imm16":
			form.Shape, form.NeedsParam = "storeShapeOffset16Imm16", false
		case "shapeStoreAt":
			form.Shape, form.NeedsParam = "storeShapeAt", false
		case "shapeStoreAtImm16":
			form.Shape, form.NeedsParam = "storeShapeAtImm16", false
		default:
			continue
		}
		out = append(out, form)
	}
	slices.SortFunc(out, func(a, b StoreForm) int {
		return strings.Compare(a.Op, b.Op)
	})
	return out
}

// storeWidthPrefixes lists storeWidths' keys longest first, so a
// mnemonic like "I32Store8Imm" matches the more specific "I32Store8"
// base before the shorter "I32Store" prefix it also starts with.
var storeWidthPrefixes = func() []string {
	keys := make([]string, 0, len(storeWidths))
	for k := range storeWidths {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return len(b) - len(a) })
	return keys
}()

func splitStoreMnemonic(camel string) (width int, base string, ok bool) {
	for _, prefix := range storeWidthPrefixes {
		if len(camel) >= len(prefix) && camel[:len(prefix)] == prefix {
			return storeWidths[prefix], prefix, true
		}
	}
	return 0, "", false
}

func storeSuffix(camel string) string {
	_, base, ok := splitStoreMnemonic(camel)
	if !ok {
		return ""
	}
	return camel[len(base):]
}

// LoadForm is DeriveStoreForms' counterpart for the load family.
type LoadForm struct {
	Op       string
	Width    int
	Shape    string
	Result64 bool
	Signed   bool
}

// DeriveLoadForms mirrors DeriveStoreForms for load-family rows; loads
// carry no parameter slot, so there is nothing analogous to NeedsParam
// to derive.
func DeriveLoadForms(variants []Variant) []LoadForm {
	var out []LoadForm
	for _, v := range variants {
		switch v.Shape {
		case "shapeLoadFull", "shapeLoadOffset16", "shapeLoadAt":
		default:
			continue
		}
		width, result64, signed, ok := classifyLoadMnemonic(v.Camel)
		if !ok {
			continue
		}
		form := LoadForm{Op: v.Camel, Width: width, Result64: result64, Signed: signed}
		switch v.Shape {
		case "shapeLoadFull":
			form.Shape = "loadShapeFull"
		case "shapeLoadOffset16":
			form.Shape = "loadShapeOffset16"
		case "shapeLoadAt":
			form.Shape = "loadShapeAt"
		}
		out = append(out, form)
	}
	slices.SortFunc(out, func(a, b LoadForm) int {
		return strings.Compare(a.Op, b.Op)
	})
	return out
}

// classifyLoadMnemonic reads width/result-width/signedness off a load
// mnemonic like "I64Load16SOffset16": result type (I32/I64) sets
// Result64, the numeric infix (8/16/32, absent meaning the full
// register width) sets Width, and a trailing S/U before any form
// suffix sets Signed.
func classifyLoadMnemonic(camel string) (width int, result64, signed bool, ok bool) {
	rest := camel
	switch {
	case hasPrefix(rest, "I32Load"):
		result64, rest = false, rest[len("I32Load"):]
		width = 4
	case hasPrefix(rest, "I64Load"):
		result64, rest = true, rest[len("I64Load"):]
		width = 8
	default:
		return 0, false, false, false
	}
	switch {
	case hasPrefix(rest, "8S"):
		width, signed, rest = 1, true, rest[2:]
	case hasPrefix(rest, "8U"):
		width, signed, rest = 1, false, rest[2:]
	case hasPrefix(rest, "16S"):
		width, signed, rest = 2, true, rest[3:]
	case hasPrefix(rest, "16U"):
		width, signed, rest = 2, false, rest[3:]
	case hasPrefix(rest, "32S"):
		width, signed, rest = 4, true, rest[3:]
	case hasPrefix(rest, "32U"):
		width, signed, rest = 4, false, rest[3:]
	}
	_ = rest
	return width, result64, signed, true
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
