package ir

import "encoding/binary"

// Unaligned holds a value read from an arbitrary, possibly-unaligned
// byte offset inside an InlineSlice. The value is copied into this
// aligned local storage at decode time; no reference to the original
// unaligned bytes escapes the decode site.
type Unaligned[T ~uint16 | ~int16] struct {
	value T
}

// Get returns the copied-out, properly aligned value.
func (u Unaligned[T]) Get() T { return u.value }

func unalignedFromBytes[T ~uint16 | ~int16](b []byte) Unaligned[T] {
	return Unaligned[T]{value: T(binary.NativeEndian.Uint16(b))}
}
