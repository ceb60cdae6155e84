package frame

import (
	"fmt"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// Envelope is a fully decoded frame: the header fields a caller might care
// about, plus the frame-type code and its still-undecoded payload. Turning
// Payload into a typed structure is the structures package's job.
type Envelope struct {
	Recipient DeviceAddress
	Sender    DeviceAddress
	Type      Type
	Payload   []byte
}

// crc computes the ecoNET checksum: the XOR of every byte in data.
func crc(data []byte) byte {
	var c byte
	for _, b := range data {
		c ^= b
	}
	return c
}

// Encode serialises an envelope to wire bytes.
func Encode(e Envelope) []byte {
	w := wire.NewWriteCursor()
	w.WriteU8(StartDelimiter)

	length := uint16(HeaderSize + 1 + len(e.Payload) + 1 + 1)
	w.WriteU16(length)
	w.WriteU8(byte(e.Recipient))
	w.WriteU8(byte(e.Sender))
	w.WriteU8(SenderType)
	w.WriteU8(ProtocolVersion)
	w.WriteU8(byte(e.Type))
	w.WriteBytes(e.Payload)

	body := w.Bytes()
	w.WriteU8(crc(body))
	w.WriteU8(EndDelimiter)

	return w.Bytes()
}

// Decode parses a single complete frame, buf[0:] through the end
// delimiter. Callers (normally Reader) are responsible for locating the
// start delimiter and assembling exactly `length` bytes before calling
// Decode; Decode itself does not scan for a start byte.
func Decode(buf []byte) (Envelope, error) {
	if len(buf) < MinFrameLength {
		return Envelope{}, fmt.Errorf("%w: frame too short (%d bytes)", ErrMalformedFrame, len(buf))
	}
	if buf[0] != StartDelimiter {
		return Envelope{}, fmt.Errorf("%w: missing start delimiter", ErrMalformedFrame)
	}

	r := wire.NewCursor(buf)
	if _, err := r.ReadU8(); err != nil {
		return Envelope{}, err
	}
	length, err := r.ReadU16()
	if err != nil {
		return Envelope{}, err
	}
	if int(length) < MinFrameLength || int(length) > MaxFrameLength {
		return Envelope{}, fmt.Errorf("%w: length field %d out of range", ErrMalformedFrame, length)
	}
	if int(length) != len(buf) {
		return Envelope{}, fmt.Errorf("%w: length field %d does not match buffer of %d bytes", ErrMalformedFrame, length, len(buf))
	}

	recipient, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	sender, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	senderType, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	version, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	if senderType != SenderType || version != ProtocolVersion {
		return Envelope{}, fmt.Errorf("%w: sender type %#x, version %#x", ErrUnsupportedProtocol, senderType, version)
	}

	frameType, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}

	payloadLen := int(length) - HeaderSize - 1 - 1 - 1
	payload, err := r.ReadBytes(payloadLen)
	if err != nil {
		return Envelope{}, err
	}

	wantCRC, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	end, err := r.ReadU8()
	if err != nil {
		return Envelope{}, err
	}
	if end != EndDelimiter {
		return Envelope{}, fmt.Errorf("%w: missing end delimiter", ErrMalformedFrame)
	}

	gotCRC := crc(buf[:len(buf)-2])
	if gotCRC != wantCRC {
		return Envelope{}, fmt.Errorf("%w: calculated %#x, expected %#x", ErrChecksumError, gotCRC, wantCRC)
	}

	payloadCopy := make([]byte, len(payload))
	copy(payloadCopy, payload)

	return Envelope{
		Recipient: DeviceAddress(recipient),
		Sender:    DeviceAddress(sender),
		Type:      Type(frameType),
		Payload:   payloadCopy,
	}, nil
}
