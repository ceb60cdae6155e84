package device

import "errors"

var (
	// ErrOutOfRange is returned by Parameter.Set/SetNowait when value
	// falls outside [Min, Max].
	ErrOutOfRange = errors.New("device: value out of range")

	// ErrTimeout is returned by Get/WaitFor when no value arrives within
	// the given timeout.
	ErrTimeout = errors.New("device: timed out waiting for value")

	// ErrUnknownSchedule names a schedule the device has never reported.
	// Schedule lookups in this package report that case through their
	// boolean result and do not return this error.
	ErrUnknownSchedule = errors.New("device: unknown schedule")

	// ErrUnknownParameter names a parameter the device has never
	// reported. Parameter lookups in this package report that case
	// through their boolean result and do not return this error.
	ErrUnknownParameter = errors.New("device: unknown parameter")

	// ErrUnsupportedOperation is returned by TurnOn/TurnOff when the
	// configured sender does not also implement PowerSender.
	ErrUnsupportedOperation = errors.New("device: operation not supported by sender")
)
