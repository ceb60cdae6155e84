package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
)

// defaultSerialReadTimeout bounds how long a single port.Read blocks so
// ReadBytes can still observe context cancellation between reads.
const defaultSerialReadTimeout = 300 * time.Millisecond

// SerialTransport opens a local RS-485/RS-232 serial port to an ecoMAX's
// service connector. ecoNET controllers commonly run at 115200 8N1over a
// USB-serial adapter.
type SerialTransport struct {
	portName string
	baudRate int

	mu   sync.Mutex
	port serial.Port
}

// NewSerialTransport creates a transport bound to a device path (e.g.
// "/dev/ttyUSB0") and baud rate.
func NewSerialTransport(portName string, baudRate int) *SerialTransport {
	return &SerialTransport{
		portName: portName,
		baudRate: baudRate,
	}
}

// Open opens the serial port if it is not already open.
func (t *SerialTransport) Open(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.port != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := &serial.Mode{
		BaudRate: t.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(t.portName, mode)
	if err != nil {
		return fmt.Errorf("transport: open serial port %q: %w", t.portName, err)
	}
	if err := port.SetReadTimeout(defaultSerialReadTimeout); err != nil {
		_ = port.Close()
		return fmt.Errorf("transport: set read timeout: %w", err)
	}

	t.port = port
	return nil
}

// ReadBytes reads from the port, retrying short timeouts until ctx is
// cancelled or data arrives. go.bug.st/serial returns (0, nil) on a read
// timeout rather than an error.
func (t *SerialTransport) ReadBytes(ctx context.Context, buf []byte) (int, error) {
	t.mu.Lock()
	port := t.port
	t.mu.Unlock()

	if port == nil {
		return 0, ErrClosed
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := port.Read(buf)
		if err != nil {
			return n, fmt.Errorf("transport: read: %w", err)
		}
		if n > 0 {
			return n, nil
		}
	}
}

// WriteBytes writes the full buffer to the port.
func (t *SerialTransport) WriteBytes(ctx context.Context, buf []byte) error {
	t.mu.Lock()
	port := t.port
	t.mu.Unlock()

	if port == nil {
		return ErrClosed
	}

	written := 0
	for written < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := port.Write(buf[written:])
		if err != nil {
			return fmt.Errorf("transport: write: %w", err)
		}
		written += n
	}
	return nil
}

// Close closes the serial port.
func (t *SerialTransport) Close() error {
	t.mu.Lock()
	port := t.port
	t.port = nil
	t.mu.Unlock()

	if port == nil {
		return nil
	}
	return port.Close()
}
