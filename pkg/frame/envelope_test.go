package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	e := Envelope{
		Recipient: Library,
		Sender:    EcoMAX,
		Type:      ProgramVersionReq,
		Payload:   []byte{0x01, 0x02, 0x03},
	}

	encoded := Encode(e)
	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, e.Recipient, decoded.Recipient)
	assert.Equal(t, e.Sender, decoded.Sender)
	assert.Equal(t, e.Type, decoded.Type)
	assert.Equal(t, e.Payload, decoded.Payload)
}

func TestEnvelopeRoundTripEmptyPayload(t *testing.T) {
	e := Envelope{
		Recipient: Broadcast,
		Sender:    EcoMAX,
		Type:      ProgramVersionReq,
	}

	encoded := Encode(e)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded.Payload)
	assert.Equal(t, len(encoded), MinFrameLength)
}

func TestEncodeFramingBytes(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)

	assert.Equal(t, StartDelimiter, encoded[0])
	assert.Equal(t, EndDelimiter, encoded[len(encoded)-1])
	assert.Equal(t, SenderType, encoded[5])
	assert.Equal(t, ProtocolVersion, encoded[6])
	assert.Equal(t, byte(ProgramVersionReq), encoded[7])
}

func TestDecodeRejectsBadSenderType(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)
	encoded[5] = 0x99 // corrupt sender type

	_, err := Decode(encoded)
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
}

func TestDecodeRejectsBadProtocolVersion(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)
	encoded[6] = 0x99 // corrupt protocol version

	_, err := Decode(encoded)
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
}

func TestDecodeRejectsMissingStartDelimiter(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)
	encoded[0] = 0x00

	_, err := Decode(encoded)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestDecodeRejectsMissingEndDelimiter(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)
	encoded[len(encoded)-1] = 0x00

	_, err := Decode(encoded)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestDecodeRejectsTooShortBuffer(t *testing.T) {
	_, err := Decode([]byte{0x68, 0x01})
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

// TestCRCIntegrity corresponds to the protocol invariant that inverting any
// single byte between the start delimiter and the checksum (length, header,
// type or payload) must cause decode to fail with a checksum or
// malformed-frame error, never a silent misdecode.
func TestCRCIntegrity(t *testing.T) {
	e := Envelope{
		Recipient: Library,
		Sender:    EcoMAX,
		Type:      ProgramVersionReq,
		Payload:   []byte{0x01, 0x02, 0x03, 0x04},
	}
	encoded := Encode(e)

	for i := 1; i < len(encoded)-2; i++ {
		mutated := make([]byte, len(encoded))
		copy(mutated, encoded)
		mutated[i] ^= 0xFF

		_, err := Decode(mutated)
		assert.Errorf(t, err, "mutating byte %d did not cause a decode error", i)
	}
}

func TestDecodeRejectsLengthMismatch(t *testing.T) {
	e := Envelope{Recipient: Broadcast, Sender: EcoMAX, Type: ProgramVersionReq}
	encoded := Encode(e)
	truncated := encoded[:len(encoded)-1]

	_, err := Decode(truncated)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}
