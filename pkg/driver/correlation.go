package driver

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pyplumio/pyplumio-go/pkg/frame"
)

// correlationKey identifies the pending requests a response resolves. It
// has room for a sub-device index, but the driver registers and resolves
// every request by response type alone (hasIndex is never set), so
// requests of the same type are matched in FIFO order whatever mixer or
// thermostat they address.
type correlationKey struct {
	responseType frame.Type
	hasIndex     bool
	index        uint8
}

// pendingRequest is one in-flight request awaiting its correlated
// response. On a match, result receives the whole response envelope and
// done is closed. On cancellation, timeout or shutdown, doneErr is set and
// done is closed; result receives nothing and is never closed.
type pendingRequest struct {
	token   uuid.UUID
	result  chan frame.Envelope
	done    chan struct{}
	doneErr error
}

// correlator tracks pending requests by key. Responses are matched to the
// oldest waiter of their key, mirroring the FIFO ordering the driver's
// single reader/writer pair naturally produces.
type correlator struct {
	mu      sync.Mutex
	waiting map[correlationKey][]*pendingRequest
}

func newCorrelator() *correlator {
	return &correlator{waiting: make(map[correlationKey][]*pendingRequest)}
}

func (c *correlator) register(key correlationKey) *pendingRequest {
	p := &pendingRequest{
		token:  uuid.New(),
		result: make(chan frame.Envelope, 1),
		done:   make(chan struct{}),
	}
	c.mu.Lock()
	c.waiting[key] = append(c.waiting[key], p)
	c.mu.Unlock()
	return p
}

// resolve delivers e to the oldest waiter registered for key, if any. It
// reports whether a waiter was found.
func (c *correlator) resolve(key correlationKey, e frame.Envelope) bool {
	c.mu.Lock()
	queue := c.waiting[key]
	if len(queue) == 0 {
		c.mu.Unlock()
		return false
	}
	p := queue[0]
	c.waiting[key] = queue[1:]
	c.mu.Unlock()

	p.result <- e
	close(p.done)
	return true
}

// cancel removes p from its key's queue so a late response is no longer
// routed to it; the caller's in-flight write, if any, is left to complete.
func (c *correlator) cancel(key correlationKey, p *pendingRequest, err error) {
	c.mu.Lock()
	queue := c.waiting[key]
	for i, q := range queue {
		if q == p {
			c.waiting[key] = append(queue[:i], queue[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	p.doneErr = err
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// closeAll resolves every pending waiter with err, used when the driver
// shuts down.
func (c *correlator) closeAll(err error) {
	c.mu.Lock()
	all := c.waiting
	c.waiting = make(map[correlationKey][]*pendingRequest)
	c.mu.Unlock()

	for _, queue := range all {
		for _, p := range queue {
			p.doneErr = err
			select {
			case <-p.done:
			default:
				close(p.done)
			}
		}
	}
}
