// Package ir defines the register-oriented bytecode intermediate
// representation that sits between a Wasm-to-IR translator and the
// executor: the instruction schema, the byte-stream encoding, the safe
// and unsafe decoder pair, and the two-phase opcode dispatcher.
//
// The byte stream is produced once by a translator and never mutated.
// A safe Decoder verifies it; an UnsafeDecoder re-reads verified streams
// at executor-loop speed with no bounds checks. Feeding unverified bytes
// to the unsafe decoder is a memory-safety violation, not a checked
// error — see Decoder and UnsafeDecoder.
package ir
