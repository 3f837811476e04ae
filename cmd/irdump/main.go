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

// Command irdump disassembles a compiled instruction stream and,
// optionally, traces its execution against a scratch linear memory.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unsafe"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v2"

	"github.com/tinywasm/ir"
	"github.com/tinywasm/ir/executor"
)

// config is the optional -config YAML file: the default memory's
// initial and maximum page counts, and the register file size a
// traced run executes with.
type config struct {
	Pages     int `yaml:"pages"`
	MaxPages  int `yaml:"max_pages"`
	Registers int `yaml:"registers"`
}

func defaultConfig() config {
	return config{Pages: 1, MaxPages: 0, Registers: 16}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	tracePath := flag.String("trace", "", "write an execution trace to this path instead of just disassembling")
	gzipTrace := flag.Bool("gzip-trace", false, "compress the trace file with zstd")
	configPath := flag.String("config", "", "optional YAML config (pages, max_pages, registers)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, arg := range args {
		buf, err := readInput(arg)
		if err != nil {
			log.Fatalf("reading %s: %s", arg, err)
		}
		if err := dump(out, buf, cfg, *tracePath, *gzipTrace); err != nil {
			log.Fatalf("%s: %s", arg, err)
		}
	}
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func dump(out io.Writer, buf []byte, cfg config, tracePath string, gzipTrace bool) error {
	lines, disErr := ir.Disassemble(buf)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	if disErr != nil {
		return fmt.Errorf("disassembly stopped: %w", disErr)
	}

	if tracePath == "" {
		return nil
	}
	return traceRun(buf, cfg, tracePath, gzipTrace)
}

// traceRun re-executes buf through a throwaway executor, recording
// every dispatched opcode via Executor.Trace, and writes the trace to
// tracePath, optionally zstd-compressed.
func traceRun(buf []byte, cfg config, tracePath string, compress bool) error {
	if len(buf) == 0 {
		return nil
	}
	mem, err := executor.NewMemory(cfg.Pages, cfg.MaxPages)
	if err != nil {
		return fmt.Errorf("allocating trace memory: %w", err)
	}
	defer mem.Close()

	f, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()

	var w io.WriteCloser = nopCloser{f}
	if compress {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("opening zstd trace writer: %w", err)
		}
		defer zw.Close()
		w = zw
	}

	ex := executor.NewExecutor(mem, nil, cfg.Registers)
	ex.Trace = func(op ir.OpCode) {
		fmt.Fprintln(w, op.String())
	}

	if err := ex.Run(firstByte(buf)); err != nil {
		// A trap or contract violation still produced a partial trace
		// worth keeping; report but don't treat it as a dump failure.
		fmt.Fprintf(os.Stderr, "trace run ended: %s\n", err)
	}
	return nil
}

func firstByte(buf []byte) unsafe.Pointer {
	return unsafe.Pointer(&buf[0])
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
