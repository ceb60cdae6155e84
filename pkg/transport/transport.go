package transport

import (
	"context"
	"errors"
)

// ErrClosed is returned by ReadBytes/WriteBytes once the transport has
// been closed.
var ErrClosed = errors.New("transport: closed")

// Transport is an opaque bidirectional byte stream. The frame codec reads
// and writes raw bytes against it; Transport itself knows nothing about
// ecoNET framing.
type Transport interface {
	// Open establishes the underlying connection (dials the socket, opens
	// the serial port). Open must be safe to call again after Close.
	Open(ctx context.Context) error

	// ReadBytes reads up to len(buf) bytes, blocking until at least one
	// byte is available, ctx is cancelled, or the transport errors.
	ReadBytes(ctx context.Context, buf []byte) (int, error)

	// WriteBytes writes all of buf or returns an error.
	WriteBytes(ctx context.Context, buf []byte) error

	// Close releases the underlying connection. Close is idempotent.
	Close() error
}
