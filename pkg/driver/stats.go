package driver

import "sync/atomic"

// Statistics is a point-in-time snapshot of a driver's cumulative traffic
// and health counters, taken since the driver was created.
type Statistics struct {
	FramesSent       uint64
	FramesReceived   uint64
	MalformedFrames  uint64
	RequestsTimedOut uint64
	NegativeAcks     uint64
	Reconnects       uint64
}

// statCounters holds the live atomics Statistics is copied from. Kept
// separate from Statistics itself so the snapshot type stays a plain,
// copyable value with no atomic fields of its own.
type statCounters struct {
	framesSent       atomic.Uint64
	framesReceived   atomic.Uint64
	malformedFrames  atomic.Uint64
	requestsTimedOut atomic.Uint64
	negativeAcks     atomic.Uint64
	reconnects       atomic.Uint64
}

func (c *statCounters) snapshot() Statistics {
	return Statistics{
		FramesSent:       c.framesSent.Load(),
		FramesReceived:   c.framesReceived.Load(),
		MalformedFrames:  c.malformedFrames.Load(),
		RequestsTimedOut: c.requestsTimedOut.Load(),
		NegativeAcks:     c.negativeAcks.Load(),
		Reconnects:       c.reconnects.Load(),
	}
}

// Stats returns a snapshot of the driver's cumulative counters. Safe to
// call from any goroutine while Run is active.
func (d *Driver) Stats() Statistics {
	return d.stats.snapshot()
}
