package driver

import (
	"context"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/frame"
)

// sendRequest writes e and waits for the response matching key, retrying
// up to requestRetries times with a fresh correlation token on each
// attempt. Each attempt gets its own requestTimeout window.
func (d *Driver) sendRequest(ctx context.Context, e frame.Envelope, key correlationKey) (frame.Envelope, error) {
	var lastErr error

	for attempt := 0; attempt <= requestRetries; attempt++ {
		pending := d.corr.register(key)

		if err := d.write(ctx, e); err != nil {
			d.corr.cancel(key, pending, err)
			lastErr = err
			continue
		}

		timer := time.NewTimer(requestTimeout)
		select {
		case <-ctx.Done():
			timer.Stop()
			d.corr.cancel(key, pending, ctx.Err())
			return frame.Envelope{}, ctx.Err()
		case <-d.closeCh:
			timer.Stop()
			d.corr.cancel(key, pending, ErrConnectionClosed)
			return frame.Envelope{}, ErrConnectionClosed
		case <-pending.done:
			timer.Stop()
			if pending.doneErr != nil {
				lastErr = pending.doneErr
				continue
			}
			return <-pending.result, nil
		case <-timer.C:
			d.corr.cancel(key, pending, ErrRequestTimeout)
			d.stats.requestsTimedOut.Add(1)
			lastErr = ErrRequestTimeout
		}
	}

	if lastErr == nil {
		lastErr = ErrRequestTimeout
	}
	return frame.Envelope{}, lastErr
}
