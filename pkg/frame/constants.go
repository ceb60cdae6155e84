package frame

// Wire-level constants shared by every frame.
const (
	// StartDelimiter marks the beginning of a frame.
	StartDelimiter byte = 0x68

	// EndDelimiter marks the end of a frame.
	EndDelimiter byte = 0x16

	// SenderType is the fixed "ecoNET device class" byte every frame on
	// the wire carries, regardless of which physical device sent it.
	SenderType byte = 0x30

	// ProtocolVersion is the fixed ecoNET protocol version byte.
	ProtocolVersion byte = 0x05

	// HeaderSize is the number of bytes from the start delimiter through
	// the protocol version byte, inclusive: start, length (2 bytes),
	// recipient, sender, sender type, version.
	HeaderSize = 7

	// MinFrameLength is the smallest legal value of the length field:
	// header, frame type, CRC, end delimiter, with an empty payload.
	MinFrameLength = HeaderSize + 3

	// MaxFrameLength bounds how large a single frame may claim to be,
	// guarding the reader against a corrupt length field demanding an
	// unbounded read.
	MaxFrameLength = 4096
)

// DeviceAddress identifies a protocol peer.
type DeviceAddress byte

// Well-known device addresses.
const (
	Broadcast DeviceAddress = 0x00
	EcoMAX    DeviceAddress = 0x45
	EcoSTER   DeviceAddress = 0x51
	Library   DeviceAddress = 0x56
)

func (a DeviceAddress) String() string {
	switch a {
	case Broadcast:
		return "BROADCAST"
	case EcoMAX:
		return "ECOMAX"
	case EcoSTER:
		return "ECOSTER"
	case Library:
		return "LIBRARY"
	default:
		return "UNKNOWN"
	}
}
