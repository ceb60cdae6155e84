package driver

import (
	"context"

	"github.com/pyplumio/pyplumio-go/pkg/frame"
)

// writeLoop is the driver's single-consumer writer goroutine: it drains
// the outbound queue and writes each envelope in enqueue order.
func (d *Driver) writeLoop(ctx context.Context, errCh chan<- error) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case item := <-d.outbound:
			err := d.framer.WriteFrame(ctx, item.envelope)
			if err == nil {
				d.stats.framesSent.Add(1)
			}
			if item.writeErr != nil {
				item.writeErr <- err
			}
			if err != nil && ctx.Err() == nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
		}
	}
}

// enqueue submits an envelope to the writer queue without waiting for a
// response (used for handshake replies and library-initiated re-fetch
// requests, neither of which an application call is blocked on).
func (d *Driver) enqueue(ctx context.Context, e frame.Envelope) {
	select {
	case d.outbound <- outboundItem{envelope: e}:
	case <-ctx.Done():
	case <-d.closeCh:
	}
}

// write submits an envelope and reports whether the write itself
// succeeded, distinct from whether any response ever arrives.
func (d *Driver) write(ctx context.Context, e frame.Envelope) error {
	result := make(chan error, 1)
	select {
	case d.outbound <- outboundItem{envelope: e, writeErr: result}:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.closeCh:
		return ErrConnectionClosed
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.closeCh:
		return ErrConnectionClosed
	}
}
