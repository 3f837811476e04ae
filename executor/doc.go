// Package executor runs a decoded instruction stream against a linear
// memory and a host-provided Store. It decodes each instruction with
// ir.UnsafeDecoder and is therefore only safe to run against a stream
// that has already round-tripped through ir.Decoder (or a
// schema-correct-by-construction translator) without error.
package executor
