package frame

import (
	"context"
	"fmt"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/log"
	"github.com/pyplumio/pyplumio-go/pkg/transport"
)

// readFull loops ReadBytes until buf is completely filled or an error
// occurs, since Transport.ReadBytes may return fewer bytes than requested
// the way io.Reader does.
func readFull(ctx context.Context, t transport.Transport, buf []byte) error {
	read := 0
	for read < len(buf) {
		n, err := t.ReadBytes(ctx, buf[read:])
		read += n
		if err != nil {
			return err
		}
	}
	return nil
}

// FrameReader scans a transport byte stream for ecoNET frames.
type FrameReader struct {
	t      transport.Transport
	logger log.Logger
	connID string
}

// NewFrameReader creates a reader bound to t.
func NewFrameReader(t transport.Transport) *FrameReader {
	return &FrameReader{t: t}
}

// SetLogger configures protocol logging. Pass nil to disable it.
func (r *FrameReader) SetLogger(logger log.Logger, connID string) {
	r.logger = logger
	r.connID = connID
}

// ReadFrame locates the next start delimiter, reads one complete frame,
// and decodes it. A malformed or checksum-failing frame is returned as an
// error; the reader has already consumed exactly that frame's bytes, so
// the caller can simply call ReadFrame again to resynchronise on the next
// delimiter.
func (r *FrameReader) ReadFrame(ctx context.Context) (Envelope, error) {
	if err := r.scanForStart(ctx); err != nil {
		return Envelope{}, err
	}

	rest := make([]byte, HeaderSize-1)
	if err := readFull(ctx, r.t, rest); err != nil {
		return Envelope{}, fmt.Errorf("%w: header: %v", ErrMalformedFrame, err)
	}

	header := make([]byte, HeaderSize)
	header[0] = StartDelimiter
	copy(header[1:], rest)

	length := int(header[1]) | int(header[2])<<8
	if length < MinFrameLength || length > MaxFrameLength {
		return Envelope{}, fmt.Errorf("%w: length field %d out of range", ErrMalformedFrame, length)
	}

	remainder := make([]byte, length-HeaderSize)
	if err := readFull(ctx, r.t, remainder); err != nil {
		return Envelope{}, fmt.Errorf("%w: body: %v", ErrMalformedFrame, err)
	}

	full := append(header, remainder...)
	envelope, err := Decode(full)

	r.logFrame(envelope, err, len(full))

	return envelope, err
}

// scanForStart discards bytes until it sees a start delimiter.
func (r *FrameReader) scanForStart(ctx context.Context) error {
	var b [1]byte
	for {
		n, err := r.t.ReadBytes(ctx, b[:])
		if n > 0 && b[0] == StartDelimiter {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *FrameReader) logFrame(e Envelope, decodeErr error, size int) {
	if r.logger == nil {
		return
	}
	if decodeErr != nil {
		r.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: r.connID,
			Direction:    log.DirectionIn,
			Category:     log.CategoryError,
			Error:        &log.ErrorEventData{Message: decodeErr.Error(), Context: "frame decode"},
		})
		return
	}
	r.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: r.connID,
		Direction:    log.DirectionIn,
		Category:     log.CategoryFrame,
		Frame: &log.FrameEvent{
			FrameType: uint8(e.Type),
			Recipient: uint8(e.Recipient),
			Sender:    uint8(e.Sender),
			Size:      size,
			Unknown:   !e.Type.IsKnown(),
			Name:      e.Type.Name(),
		},
	})
}
