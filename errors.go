package pyplumio

import "errors"

var (
	// ErrAlreadyConnected is returned by Connect when called more than
	// once on the same Connection.
	ErrAlreadyConnected = errors.New("pyplumio: already connected")

	// ErrUnknownDevice is returned by Device for a name this library
	// does not recognise. Only "ecomax" (the controller itself) is
	// currently addressable.
	ErrUnknownDevice = errors.New("pyplumio: unknown device")

	// ErrRawMode is returned by Device when the Connection was opened
	// WithRawFrames: raw connections never build a device model.
	ErrRawMode = errors.New("pyplumio: not available in raw frame mode")

	// ErrRawModeRequired is returned by ReadFrame/WriteFrame on a
	// Connection that was not opened WithRawFrames.
	ErrRawModeRequired = errors.New("pyplumio: connection was not opened in raw frame mode")
)
