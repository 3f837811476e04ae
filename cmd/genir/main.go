// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command genir projects ir/opcode_gen.go and executor/tables_gen.go
// from the declarative schema in ir/schema.go. Run via
//
//	//go:generate go run ./cmd/genir
//
// from the module root.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"

	"github.com/tinywasm/ir/internal/schemagen"
)

var (
	schemaPath = "ir/schema.go"
	opcodeOut  = "ir/opcode_gen.go"
	tablesOut  = "executor/tables_gen.go"
)

func main() {
	flag.StringVar(&schemaPath, "schema", schemaPath, "path to ir/schema.go")
	flag.StringVar(&opcodeOut, "opcodes", opcodeOut, "output path for the generated OpCode enum")
	flag.StringVar(&tablesOut, "tables", tablesOut, "output path for the generated executor dispatch tables")
	flag.Parse()

	src, err := os.ReadFile(schemaPath)
	check(err)

	variants, err := schemagen.ParseSchema(src)
	check(err)

	writeFormatted(opcodeOut, func(buf *bytes.Buffer) error {
		return schemagen.WriteOpcodeConstants(buf, variants)
	})

	stores := schemagen.DeriveStoreForms(variants)
	loads := schemagen.DeriveLoadForms(variants)
	writeFormatted(tablesOut, func(buf *bytes.Buffer) error {
		if err := schemagen.WriteStoreTable(buf, stores); err != nil {
			return err
		}
		return schemagen.WriteLoadTable(buf, loads)
	})
}

func writeFormatted(path string, emit func(*bytes.Buffer) error) {
	buf := bytes.NewBuffer(nil)
	check(emit(buf))
	out, err := format.Source(buf.Bytes())
	check(err)
	check(os.WriteFile(path, out, 0o644))
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
