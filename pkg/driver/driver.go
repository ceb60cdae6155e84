package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/connection"
	"github.com/pyplumio/pyplumio-go/pkg/device"
	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/log"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/transport"
	"github.com/pyplumio/pyplumio-go/pkg/watchdog"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

const (
	requestTimeout   = 15 * time.Second
	requestRetries   = 3
	handshakeTimeout = 10 * time.Second
	keepAliveIdle    = 60 * time.Second
)

// libraryVersion is reported to the controller during the handshake in
// place of a real firmware version, since this side of the connection is
// a library, not a device.
var libraryVersion = wire.Version{Major: 1, Minor: 0, Patch: 0}

// outboundItem is one entry on the writer queue.
type outboundItem struct {
	envelope frame.Envelope
	writeErr chan error // non-nil when the caller wants to know the write outcome
}

// Driver runs the ecoNET protocol over a single transport connection. It
// implements device.ParameterSender and device.ScheduleSender so a
// device.EcoMAX can send writes back through it.
type Driver struct {
	transport   transport.Transport
	networkInfo structures.NetworkInfo
	logger      log.Logger
	connID      string

	Device *device.EcoMAX

	backoff  *connection.Backoff
	watchdog *watchdog.Watchdog

	mu    sync.RWMutex
	state State

	schemaMu sync.RWMutex
	schema   []structures.SchemaEntry

	framer   *frame.Framer
	corr     *correlator
	outbound chan outboundItem
	stats    statCounters

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// New creates a driver bound to t, ready to Run. networkInfo is the block
// advertised back to the controller during the handshake.
func New(t transport.Transport, networkInfo structures.NetworkInfo, logger log.Logger, connID string) *Driver {
	d := &Driver{
		transport:   t,
		networkInfo: networkInfo,
		logger:      logger,
		connID:      connID,
		backoff:     connection.NewBackoff(),
		corr:        newCorrelator(),
		outbound:    make(chan outboundItem, 32),
		closeCh:     make(chan struct{}),
		state:       StateDisconnected,
	}
	d.Device = device.New(d, d)
	d.watchdog = watchdog.New(keepAliveIdle, d.onIdle)
	return d
}

// State returns the driver's current connection state.
func (d *Driver) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Driver) setState(next State, reason string) {
	d.mu.Lock()
	prev := d.state
	d.state = next
	d.mu.Unlock()

	if prev == next {
		return
	}
	if d.logger != nil {
		d.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: d.connID,
			Category:     log.CategoryState,
			StateChange: &log.StateChangeEvent{
				OldState: prev.String(),
				NewState: next.String(),
				Reason:   reason,
			},
		})
	}
}

// Run drives the connection until ctx is cancelled or Close is called: it
// opens the transport, performs the handshake, serves the connection, and
// reconnects with backoff on transport error.
func (d *Driver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.setState(StateClosed, "context cancelled")
			return ctx.Err()
		case <-d.closeCh:
			d.setState(StateClosed, "closed")
			return nil
		default:
		}

		err := d.runOnce(ctx)
		if err == nil {
			// runOnce only returns nil when Close/ctx ended the connection.
			return nil
		}

		d.stats.reconnects.Add(1)

		delay := d.backoff.Next()
		if d.logger != nil {
			d.logger.Log(log.Event{
				Timestamp:    time.Now(),
				ConnectionID: d.connID,
				Category:     log.CategoryError,
				Error:        &log.ErrorEventData{Message: err.Error(), Context: "connection"},
			})
		}

		select {
		case <-ctx.Done():
			d.setState(StateClosed, "context cancelled")
			return ctx.Err()
		case <-d.closeCh:
			d.setState(StateClosed, "closed")
			return nil
		case <-time.After(delay):
		}
	}
}

// runOnce performs a single connect-handshake-serve cycle. It returns nil
// only when the driver was asked to stop; any transport-level failure is
// returned as an error so Run can apply backoff and retry.
func (d *Driver) runOnce(ctx context.Context) error {
	d.setState(StateConnecting, "connecting")

	if err := d.transport.Open(ctx); err != nil {
		return fmt.Errorf("driver: open: %w", err)
	}

	d.framer = frame.NewFramer(d.transport)
	d.framer.SetLogger(d.logger, d.connID)

	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)

	d.wg.Add(2)
	go d.readLoop(attemptCtx, errCh)
	go d.writeLoop(attemptCtx, errCh)

	d.watchdog.Start()
	defer d.watchdog.Stop()

	d.setState(StateHandshake, "transport open")

	// The transport is closed before waiting for the loops so that a read
	// or write blocked inside it returns.
	select {
	case <-ctx.Done():
		cancel()
		_ = d.transport.Close()
		d.wg.Wait()
		return nil
	case <-d.closeCh:
		cancel()
		_ = d.transport.Close()
		d.wg.Wait()
		return nil
	case err := <-errCh:
		cancel()
		_ = d.transport.Close()
		d.wg.Wait()
		d.corr.closeAll(ErrConnectionClosed)
		return err
	}
}

// Close stops the driver and fails every pending request.
func (d *Driver) Close() {
	d.closeOnce.Do(func() {
		d.setState(StateClosing, "close requested")
		close(d.closeCh)
	})
	d.corr.closeAll(ErrConnectionClosed)
}

func (d *Driver) onIdle() {
	if d.State() == StateReady {
		d.setState(StateConnecting, "keep-alive idle timeout")
		_ = d.transport.Close()
	}
}

func (d *Driver) currentSchema() []structures.SchemaEntry {
	d.schemaMu.RLock()
	defer d.schemaMu.RUnlock()
	return d.schema
}

func (d *Driver) setSchema(schema []structures.SchemaEntry) {
	d.schemaMu.Lock()
	d.schema = schema
	d.schemaMu.Unlock()
}
