package pyplumio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/device"
	"github.com/pyplumio/pyplumio-go/pkg/driver"
	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/log"
	"github.com/pyplumio/pyplumio-go/pkg/transport"
)

// Connection is a managed link to a controller: a transport plus, in the
// default mode, a driver that runs the handshake and keeps the device
// model fresh in the background. Connect starts that background work and
// returns promptly; Close tears it down.
type Connection struct {
	mu sync.RWMutex

	drv    *driver.Driver
	logger log.Logger
	connID string

	rawMode   bool
	transport transport.Transport
	framer    *frame.Framer

	cancel context.CancelFunc
	done   chan struct{}
	runErr error
}

// OpenTCP builds a Connection bound to a TCP transport at host:port. It
// does not dial until Connect is called.
func OpenTCP(host string, port int, opts ...Option) (*Connection, error) {
	return open(transport.NewTCPTransport(fmt.Sprintf("%s:%d", host, port)), opts)
}

// OpenSerial builds a Connection bound to a serial transport. It does not
// open the port until Connect is called.
func OpenSerial(portName string, baudRate int, opts ...Option) (*Connection, error) {
	return open(transport.NewSerialTransport(portName, baudRate), opts)
}

func open(t transport.Transport, opts []Option) (*Connection, error) {
	cfg := newOpenConfig(opts)
	c := &Connection{
		logger:    cfg.logger,
		connID:    cfg.connID,
		rawMode:   cfg.raw,
		transport: t,
		done:      make(chan struct{}),
	}
	if !cfg.raw {
		c.drv = driver.New(t, cfg.networkInfo, cfg.logger, cfg.connID)
	}
	return c, nil
}

// Connect opens the underlying transport and, unless the connection was
// opened WithRawFrames, starts the driver's handshake and reconnect loop
// in the background. With WithRawFrames it returns once the transport is
// open; otherwise the driver opens the transport in the background and
// Connect returns at once, without waiting for the transport or the
// handshake. Use Device to wait for the handshake.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	if c.rawMode {
		if err := c.transport.Open(runCtx); err != nil {
			close(c.done)
			return fmt.Errorf("pyplumio: open: %w", err)
		}
		c.mu.Lock()
		c.framer = frame.NewFramer(c.transport)
		c.framer.SetLogger(c.logger, c.connID)
		c.mu.Unlock()
		close(c.done)
		return nil
	}

	go func() {
		c.runErr = c.drv.Run(runCtx)
		close(c.done)
	}()
	return nil
}

// Close stops the background driver, if any, and closes the transport.
// It blocks until the driver has fully stopped.
func (c *Connection) Close() error {
	c.mu.RLock()
	cancel := c.cancel
	c.mu.RUnlock()

	if cancel == nil {
		// Connect was never called (or never reached the point of
		// arming cancel): there is no background work or open
		// transport to wait on.
		return nil
	}
	cancel()

	if c.rawMode {
		<-c.done
		return c.transport.Close()
	}

	if c.drv != nil {
		c.drv.Close()
	}
	<-c.done
	return c.runErr
}

// Device blocks until the named device's model is populated or timeout
// elapses, then returns it. Only "ecomax" (the controller itself) is
// currently addressable; an empty name is treated as "ecomax".
func (c *Connection) Device(ctx context.Context, name string, timeout time.Duration) (*device.EcoMAX, error) {
	if c.rawMode {
		return nil, ErrRawMode
	}
	switch name {
	case "ecomax", "":
	default:
		return nil, ErrUnknownDevice
	}
	if err := c.drv.Device.WaitFor(ctx, "state", timeout); err != nil {
		return nil, err
	}
	return c.drv.Device, nil
}

// WaitUntilDone blocks until the background driver has stopped, returning
// whatever error it exited with.
func (c *Connection) WaitUntilDone(ctx context.Context) error {
	select {
	case <-c.done:
		return c.runErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Statistics returns a snapshot of the driver's cumulative traffic and
// health counters. It is the zero value in raw frame mode, where no
// driver runs.
func (c *Connection) Statistics() driver.Statistics {
	if c.rawMode || c.drv == nil {
		return driver.Statistics{}
	}
	return c.drv.Stats()
}

// ReadFrame reads the next frame directly off the wire. It is only valid
// on a connection opened WithRawFrames.
func (c *Connection) ReadFrame(ctx context.Context) (frame.Envelope, error) {
	framer := c.currentFramer()
	if framer == nil {
		return frame.Envelope{}, ErrRawModeRequired
	}
	return framer.ReadFrame(ctx)
}

// WriteFrame writes a frame directly to the wire. It is only valid on a
// connection opened WithRawFrames.
func (c *Connection) WriteFrame(ctx context.Context, e frame.Envelope) error {
	framer := c.currentFramer()
	if framer == nil {
		return ErrRawModeRequired
	}
	return framer.WriteFrame(ctx, e)
}

func (c *Connection) currentFramer() *frame.Framer {
	if !c.rawMode {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.framer
}
