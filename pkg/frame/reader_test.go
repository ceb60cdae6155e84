package frame

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is an in-memory transport.Transport backed by byte buffers,
// used so the frame reader/writer can be exercised without a real socket
// or serial port.
type fakeTransport struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func newFakeTransport(preloaded []byte) *fakeTransport {
	return &fakeTransport{in: bytes.NewReader(preloaded)}
}

func (f *fakeTransport) Open(ctx context.Context) error { return nil }

func (f *fakeTransport) ReadBytes(ctx context.Context, buf []byte) (int, error) {
	// Read at most one byte at a time to exercise the reader's partial-read
	// handling the way a slow serial port would.
	n, err := f.in.Read(buf[:1])
	if err == io.EOF {
		return n, io.ErrClosedPipe
	}
	return n, err
}

func (f *fakeTransport) WriteBytes(ctx context.Context, buf []byte) error {
	f.out.Write(buf)
	return nil
}

func (f *fakeTransport) Close() error { return nil }

func TestFrameReaderReadsValidFrame(t *testing.T) {
	e := Envelope{Recipient: Library, Sender: EcoMAX, Type: ProgramVersionReq, Payload: []byte{0x01}}
	encoded := Encode(e)

	transport := newFakeTransport(encoded)
	reader := NewFrameReader(transport)

	got, err := reader.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, e.Type, got.Type)
	assert.Equal(t, e.Payload, got.Payload)
}

func TestFrameReaderSkipsNoiseBeforeStartDelimiter(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)

	noisy := append([]byte{0x00, 0xFF, 0xAB}, encoded...)
	transport := newFakeTransport(noisy)
	reader := NewFrameReader(transport)

	got, err := reader.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, e.Type, got.Type)
}

func TestFrameReaderResyncsAfterMalformedFrame(t *testing.T) {
	bad := Encode(Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq})
	bad[len(bad)-2] ^= 0xFF // corrupt CRC

	good := Encode(Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: CheckDevice})

	transport := newFakeTransport(append(bad, good...))
	reader := NewFrameReader(transport)

	_, err := reader.ReadFrame(context.Background())
	assert.ErrorIs(t, err, ErrChecksumError)

	got, err := reader.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CheckDevice, got.Type)
}

func TestFrameWriterWritesEncodedBytes(t *testing.T) {
	transport := newFakeTransport(nil)
	writer := NewFrameWriter(transport)

	e := Envelope{Recipient: Library, Sender: EcoMAX, Type: ProgramVersionReq, Payload: []byte{0x01}}
	require.NoError(t, writer.WriteFrame(context.Background(), e))

	assert.Equal(t, Encode(e), transport.out.Bytes())
}

func TestFramerRoundTripsThroughSharedTransport(t *testing.T) {
	transport := newFakeTransport(nil)
	framer := NewFramer(transport)

	e := Envelope{Recipient: Library, Sender: EcoMAX, Type: UIDReq, Payload: []byte{0xAA, 0xBB}}
	require.NoError(t, framer.WriteFrame(context.Background(), e))

	// Point a fresh reader at what was written to confirm it decodes back.
	readTransport := newFakeTransport(transport.out.Bytes())
	reader := NewFrameReader(readTransport)

	got, err := reader.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, e.Type, got.Type)
	assert.Equal(t, e.Payload, got.Payload)
}
