package frame

import (
	"context"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/log"
	"github.com/pyplumio/pyplumio-go/pkg/transport"
)

// FrameWriter serialises envelopes and writes them to a transport.
type FrameWriter struct {
	t      transport.Transport
	logger log.Logger
	connID string
}

// NewFrameWriter creates a writer bound to t.
func NewFrameWriter(t transport.Transport) *FrameWriter {
	return &FrameWriter{t: t}
}

// SetLogger configures protocol logging. Pass nil to disable it.
func (w *FrameWriter) SetLogger(logger log.Logger, connID string) {
	w.logger = logger
	w.connID = connID
}

// WriteFrame encodes and writes e.
func (w *FrameWriter) WriteFrame(ctx context.Context, e Envelope) error {
	data := Encode(e)
	if err := w.t.WriteBytes(ctx, data); err != nil {
		return err
	}

	if w.logger != nil {
		w.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: w.connID,
			Direction:    log.DirectionOut,
			Category:     log.CategoryFrame,
			Frame: &log.FrameEvent{
				FrameType: uint8(e.Type),
				Recipient: uint8(e.Recipient),
				Sender:    uint8(e.Sender),
				Size:      len(data),
				Unknown:   !e.Type.IsKnown(),
				Name:      e.Type.Name(),
			},
		})
	}

	return nil
}

// Framer combines a FrameReader and FrameWriter over the same transport.
type Framer struct {
	*FrameReader
	*FrameWriter
}

// NewFramer creates a Framer over t.
func NewFramer(t transport.Transport) *Framer {
	return &Framer{
		FrameReader: NewFrameReader(t),
		FrameWriter: NewFrameWriter(t),
	}
}

// SetLogger configures logging for both halves.
func (f *Framer) SetLogger(logger log.Logger, connID string) {
	f.FrameReader.SetLogger(logger, connID)
	f.FrameWriter.SetLogger(logger, connID)
}
