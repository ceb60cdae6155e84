// Package wire implements the byte-level primitives used to read and write
// ecoNET frame payloads.
//
// The ecoNET protocol has no self-describing type system: every payload is a
// fixed or semi-fixed layout of little-endian integers, length-prefixed
// strings, IEEE-754 floats, bit-packed booleans, and a handful of
// domain-specific encodings (BCD version triples, 5-bit UIDs, unix
// timestamps). This package provides a seekable Cursor over a byte buffer
// with paired read/write methods for each of those encodings, so that the
// higher-level structures package can describe a payload as a sequence of
// field reads instead of manual offset arithmetic.
//
// All multi-byte integers are little-endian. Reads past the end of the
// buffer return ErrShortBuffer, which callers should surface as a malformed
// frame rather than panicking.
package wire
