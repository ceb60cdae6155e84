package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// ProgramVersion is exchanged during the handshake so each peer can learn
// the other's protocol library version.
type ProgramVersion struct {
	Version     wire.Version
	DeviceIndex uint8
	Processor   uint16
}

// EncodeProgramVersion serialises v for a ProgramVersionResponse.
func EncodeProgramVersion(w *wire.Cursor, v ProgramVersion) {
	w.WriteVersion(v.Version)
	w.WriteU8(v.DeviceIndex)
	w.WriteU16(v.Processor)
}

// DecodeProgramVersion parses a ProgramVersion from a ProgramVersionResponse.
func DecodeProgramVersion(r *wire.Cursor) (ProgramVersion, error) {
	var v ProgramVersion

	ver, err := r.ReadVersion()
	if err != nil {
		return v, err
	}
	v.Version = ver

	idx, err := r.ReadU8()
	if err != nil {
		return v, err
	}
	v.DeviceIndex = idx

	proc, err := r.ReadU16()
	if err != nil {
		return v, err
	}
	v.Processor = proc

	return v, nil
}
