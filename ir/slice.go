package ir

import (
	"encoding/binary"
	"unsafe"
)

// inlineElem is the constraint satisfied by every type InlineSlice may
// hold. Width is derived from the concrete type via unsafe.Sizeof at
// each call site rather than hard-coded, resolving the open question
// about generalizing a hard-coded 2x-byte multiplier: the
// schema happens to only need 16-bit (Register) and 32-bit
// (BranchOffset) elements today, but nothing here assumes a fixed
// width.
type inlineElem interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// InlineSlice is a length-prefixed run of fixed-width elements stored
// directly in the instruction stream: a 16-bit length followed by
// length*sizeof(T) bytes of unaligned element data. Elements are
// borrowed from the underlying stream and must not outlive it.
type InlineSlice[T inlineElem] struct {
	data   []byte
	length int
}

func elemSize[T inlineElem]() int {
	var zero T
	return elemSizeOf(zero)
}

func elemSizeOf[T inlineElem](zero T) int {
	return int(unsafe.Sizeof(zero))
}

func decodeInlineSlice[T inlineElem, S byteSource](s S) (InlineSlice[T], error) {
	n, err := decodeU16(s)
	if err != nil {
		return InlineSlice[T]{}, err
	}
	width := elemSize[T]()
	data, err := s.take(int(n) * width)
	if err != nil {
		return InlineSlice[T]{}, err
	}
	return InlineSlice[T]{data: data, length: int(n)}, nil
}

// Len returns the number of elements in the slice.
func (sl InlineSlice[T]) Len() int { return sl.length }

// At copies out and returns element i, properly aligned. No reference
// into the backing stream escapes this call.
func (sl InlineSlice[T]) At(i int) T {
	width := elemSize[T]()
	off := i * width
	switch width {
	case 1:
		return T(sl.data[off])
	case 2:
		return T(binary.NativeEndian.Uint16(sl.data[off : off+2]))
	default:
		return T(binary.NativeEndian.Uint32(sl.data[off : off+4]))
	}
}
