package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// FrameVersions maps a frame-type code to the controller's version counter
// for it. The counter is bumped by the controller whenever the underlying
// data changes; the driver compares this against its own last-requested
// table to decide what to re-fetch.
type FrameVersions map[uint16]uint16

// DecodeFrameVersions parses the embedded frame-versions block that
// precedes SensorData and RegulatorData payloads: a count byte followed by
// that many {type, version} pairs.
func DecodeFrameVersions(r *wire.Cursor) (FrameVersions, error) {
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	versions := make(FrameVersions, count)
	for i := uint8(0); i < count; i++ {
		frameType, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		version, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		versions[frameType] = version
	}

	return versions, nil
}

// EncodeFrameVersions serialises versions in the same layout, used by
// tests and by any frame that reports its own version table outbound.
func EncodeFrameVersions(w *wire.Cursor, versions FrameVersions) {
	w.WriteU8(uint8(len(versions)))
	for frameType, version := range versions {
		w.WriteU16(frameType)
		w.WriteU16(version)
	}
}

// Diverging returns the frame types in current whose version differs from
// (or is absent from) requested, the set the driver must re-fetch.
func (v FrameVersions) Diverging(requested FrameVersions) []uint16 {
	var out []uint16
	for frameType, version := range v {
		if requested[frameType] != version {
			out = append(out, frameType)
		}
	}
	return out
}
