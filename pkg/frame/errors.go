package frame

import "errors"

// Single-frame faults. None of these are fatal to the connection: the
// reader logs them, discards the offending frame, and keeps reading.
var (
	// ErrMalformedFrame covers structurally invalid frames: a length
	// field outside [MinFrameLength, MaxFrameLength], a missing end
	// delimiter, or a short read.
	ErrMalformedFrame = errors.New("frame: malformed frame")

	// ErrChecksumError indicates the computed XOR checksum did not match
	// the byte carried on the wire.
	ErrChecksumError = errors.New("frame: checksum error")

	// ErrUnsupportedProtocol indicates the sender type or protocol
	// version byte did not match the fixed values this library speaks.
	ErrUnsupportedProtocol = errors.New("frame: unsupported protocol")
)
