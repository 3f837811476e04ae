package ir

import "testing"

// FuzzDecoder exercises the property that the
// bounds-checked Decoder never panics on arbitrary input: every byte
// sequence must end in either a fully decoded instruction or a typed
// decode error, never a crash.
func FuzzDecoder(f *testing.F) {
	f.Add(encodeCopy(1, 2))
	f.Add(encodeI32Store16Offset16Imm16(0, 4, 7))
	f.Add(encodeRegisterStore(2, 16, 9))
	f.Add([]byte{})
	f.Add([]byte{0xff, 0xff})

	f.Fuzz(func(t *testing.T, buf []byte) {
		d := NewDecoder(buf)
		for d.Remaining() > 0 {
			op, vd, err := d.Dispatch()
			if err != nil {
				return
			}
			if err := decodeDiscard(op, vd); err != nil {
				return
			}
		}
	})
}
