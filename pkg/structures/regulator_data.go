package structures

import (
	"fmt"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// RegulatorData is the decoded form of a RegulatorDataMessage: a version
// tag, the embedded FrameVersions table, and the schema-driven values
// themselves, keyed by the schema's opaque manufacturer-specific key.
type RegulatorData struct {
	Version  string
	Versions FrameVersions
	Values   map[uint16]any
}

// DecodeRegulatorData parses a RegulatorDataMessage payload given the
// schema previously fetched via a RegulatorDataSchemaResponse. schema may
// be nil if no schema has been observed yet, in which case Values is empty.
func DecodeRegulatorData(r *wire.Cursor, schema []SchemaEntry) (RegulatorData, error) {
	var data RegulatorData

	minor, err := r.ReadU8()
	if err != nil {
		return data, err
	}
	major, err := r.ReadU8()
	if err != nil {
		return data, err
	}
	data.Version = fmt.Sprintf("%d.%d", major, minor)

	versions, err := DecodeFrameVersions(r)
	if err != nil {
		return data, err
	}
	data.Versions = versions

	if len(schema) == 0 {
		return data, nil
	}

	values, err := decodeSchemaValues(r, schema)
	if err != nil {
		return data, err
	}
	data.Values = values

	return data, nil
}

func decodeSchemaValues(r *wire.Cursor, schema []SchemaEntry) (map[uint16]any, error) {
	out := make(map[uint16]any, len(schema))
	var bits *wire.BitReader

	for _, entry := range schema {
		if entry.Type == DataTypeBitfield {
			if bits == nil {
				bits = wire.NewBitReader(r)
			}
			bit, err := bits.ReadBit()
			if err != nil {
				return nil, err
			}
			out[entry.Key] = bit
			continue
		}

		// Leaving a run of bitfields: the cursor has already advanced
		// past whichever byte the bit reader last pulled, so any
		// unread bits in it are simply dropped, matching the
		// controller's own byte-aligned bitfield packing.
		bits = nil

		value, err := decodeScalar(r, entry.Type)
		if err != nil {
			return nil, err
		}
		out[entry.Key] = value
	}

	return out, nil
}

func decodeScalar(r *wire.Cursor, t DataType) (any, error) {
	switch t {
	case DataTypeU8:
		return r.ReadU8()
	case DataTypeU16:
		return r.ReadU16()
	case DataTypeU32:
		return r.ReadU32()
	case DataTypeI8:
		return r.ReadI8()
	case DataTypeI16:
		return r.ReadI16()
	case DataTypeI32:
		return r.ReadI32()
	case DataTypeF32:
		return r.ReadF32()
	default:
		return r.ReadU8()
	}
}
