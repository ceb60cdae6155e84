package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"
)

// DefaultDialTimeout bounds how long TCPTransport.Open waits for the
// socket to come up when ctx carries no deadline of its own.
const DefaultDialTimeout = 30 * time.Second

// TCPTransport dials a plain TCP socket to an ecoMAX's ethernet or wifi
// module. The ecoNET protocol is unencrypted, so there is no TLS layer
// here unlike a transport dialing a modern broker.
type TCPTransport struct {
	addr         string
	dialTimeout  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

// NewTCPTransport creates a transport that will dial addr (host:port) on Open.
func NewTCPTransport(addr string) *TCPTransport {
	return &TCPTransport{
		addr:        addr,
		dialTimeout: DefaultDialTimeout,
	}
}

// SetReadTimeout bounds a single ReadBytes call. Zero disables the deadline.
func (t *TCPTransport) SetReadTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readTimeout = d
}

// SetWriteTimeout bounds a single WriteBytes call. Zero disables the deadline.
func (t *TCPTransport) SetWriteTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeTimeout = d
}

// Open dials the configured address.
func (t *TCPTransport) Open(ctx context.Context) error {
	t.mu.Lock()
	if t.conn != nil {
		t.mu.Unlock()
		return nil
	}
	timeout := t.dialTimeout
	t.mu.Unlock()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", t.addr, err)
	}

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	return nil
}

// ReadBytes reads from the socket, honoring the configured read timeout,
// and returns early with an error once ctx is cancelled.
func (t *TCPTransport) ReadBytes(ctx context.Context, buf []byte) (int, error) {
	t.mu.Lock()
	conn := t.conn
	timeout := t.readTimeout
	t.mu.Unlock()

	if conn == nil {
		return 0, ErrClosed
	}

	deadline, hasDeadline := ctx.Deadline()
	if timeout > 0 {
		byTimeout := time.Now().Add(timeout)
		if !hasDeadline || byTimeout.Before(deadline) {
			deadline = byTimeout
			hasDeadline = true
		}
	}
	if hasDeadline {
		conn.SetReadDeadline(deadline)
	} else {
		conn.SetReadDeadline(time.Time{})
	}
	stop := context.AfterFunc(ctx, func() { conn.SetReadDeadline(time.Now()) })
	defer stop()

	n, err := conn.Read(buf)
	if err != nil {
		return n, fmt.Errorf("transport: read: %w", err)
	}
	return n, nil
}

// WriteBytes writes the full buffer, honoring the configured write timeout.
func (t *TCPTransport) WriteBytes(ctx context.Context, buf []byte) error {
	t.mu.Lock()
	conn := t.conn
	timeout := t.writeTimeout
	t.mu.Unlock()

	if conn == nil {
		return ErrClosed
	}

	deadline, hasDeadline := ctx.Deadline()
	if timeout > 0 {
		byTimeout := time.Now().Add(timeout)
		if !hasDeadline || byTimeout.Before(deadline) {
			deadline = byTimeout
			hasDeadline = true
		}
	}
	if hasDeadline {
		conn.SetWriteDeadline(deadline)
	} else {
		conn.SetWriteDeadline(time.Time{})
	}

	written := 0
	for written < len(buf) {
		n, err := conn.Write(buf[written:])
		if err != nil {
			return fmt.Errorf("transport: write: %w", err)
		}
		written += n
	}
	return nil
}

// Close closes the socket.
func (t *TCPTransport) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}
