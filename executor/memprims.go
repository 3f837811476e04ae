package executor

import "encoding/binary"

// The functions below are the typed memory primitives
// (UntypedVal::{store32, store64, i32_store8, i32_store16}), each
// (bytes, address, offset, value) -> error. They bounds-check address
// and offset together against mem and never panic on a bad address;
// that is the one place in the executor where untrusted arithmetic
// (an address computed by the running program) meets memory.
//
// i64_store{8,16,32} are not separate functions: an i64-sourced
// truncating store writes the same low bytes as the matching i32/
// store32 primitive once the value has been narrowed to a plain
// uint64, so execStore dispatches on width alone (see tables_gen.go's
// Width field) rather than on the source opcode's register width.

func checkedRange(mem []byte, address, offset uint32, width int) (int, error) {
	addr := uint64(address) + uint64(offset)
	end := addr + uint64(width)
	if end > uint64(len(mem)) {
		return 0, &MemoryAccessOutOfBounds{Addr: address + offset, Width: width, Pages: len(mem) / wasmPageSize}
	}
	return int(addr), nil
}

func store32(mem []byte, address, offset, value uint32) error {
	at, err := checkedRange(mem, address, offset, 4)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint32(mem[at:at+4], value)
	return nil
}

func store64(mem []byte, address, offset uint32, value uint64) error {
	at, err := checkedRange(mem, address, offset, 8)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint64(mem[at:at+8], value)
	return nil
}

func i32Store8(mem []byte, address, offset, value uint32) error {
	at, err := checkedRange(mem, address, offset, 1)
	if err != nil {
		return err
	}
	mem[at] = byte(value)
	return nil
}

func i32Store16(mem []byte, address, offset, value uint32) error {
	at, err := checkedRange(mem, address, offset, 2)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint16(mem[at:at+2], uint16(value))
	return nil
}

// loadWidth reads width native-endian bytes at address+offset and
// zero-extends into a uint64, leaving sign extension to the caller
// (loadSpec.Signed).
func loadWidth(mem []byte, address, offset uint32, width int) (uint64, error) {
	at, err := checkedRange(mem, address, offset, width)
	if err != nil {
		return 0, err
	}
	switch width {
	case 1:
		return uint64(mem[at]), nil
	case 2:
		return uint64(binary.NativeEndian.Uint16(mem[at : at+2])), nil
	case 4:
		return uint64(binary.NativeEndian.Uint32(mem[at : at+4])), nil
	default:
		return binary.NativeEndian.Uint64(mem[at : at+8]), nil
	}
}
