// Package encoding provides the low-level primitives of the binary
// container format: LEB128 variable-length integers capped at 32 bits and
// fixed-width packed words in a chosen byte order.
//
// Every function appends to or reads from a caller-supplied byte slice and
// reports malformed input through the sentinel errors of package errs.
package encoding
