// Package frame implements ecoNET envelope framing: the start/end
// delimiters, header layout, XOR checksum, and the static frame-type
// registry that tells the driver what a numeric frame-type code means
// (direction, human name, default recipient address).
//
// The envelope codec is pure: Encode and Decode operate on byte slices and
// do no I/O. FrameReader is the I/O-facing half, scanning a transport.Transport
// byte stream for the next valid envelope the way the teacher's
// length-prefixed FrameReader scans a socket, except ecoNET frames are
// delimited by a start byte and a length field rather than a pure
// length prefix.
package frame
