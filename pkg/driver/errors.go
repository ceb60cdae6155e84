package driver

import "errors"

var (
	// ErrConnectionClosed is returned to every pending waiter when the
	// driver is closed.
	ErrConnectionClosed = errors.New("driver: connection closed")

	// ErrRequestTimeout is returned when a request receives no matching
	// response within its deadline, after exhausting retries.
	ErrRequestTimeout = errors.New("driver: request timed out")

	// ErrUnknownParameter is returned when a caller asks to set a
	// parameter name the codec has no wire encoding for.
	ErrUnknownParameter = errors.New("driver: unknown parameter")

	// ErrNotReady names a request attempted before the handshake has
	// completed. The driver does not check its state before sending, so
	// it does not return this error itself.
	ErrNotReady = errors.New("driver: not ready")

	// ErrNegativeAck is returned when the controller rejects a write that
	// has no separate confirmed/not-confirmed return value of its own.
	ErrNegativeAck = errors.New("driver: request rejected by controller")
)
