package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// DataType tags the wire representation of one RegulatorData field, as
// declared by the controller's own schema.
type DataType uint8

// Recognised regulator data types.
const (
	DataTypeU8 DataType = iota
	DataTypeU16
	DataTypeU32
	DataTypeI8
	DataTypeI16
	DataTypeI32
	DataTypeF32
	DataTypeBitfield
)

// SchemaEntry names one field in the controller's RegulatorData schema:
// a manufacturer-specific numeric key, opaque to this library, and the
// wire type used to decode its value.
type SchemaEntry struct {
	Key  uint16
	Type DataType
}

// DecodeRegulatorDataSchema parses a RegulatorDataSchemaResponse payload.
func DecodeRegulatorDataSchema(r *wire.Cursor) ([]SchemaEntry, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	schema := make([]SchemaEntry, 0, count)
	for i := uint16(0); i < count; i++ {
		typeTag, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		key, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		schema = append(schema, SchemaEntry{Key: key, Type: DataType(typeTag)})
	}

	return schema, nil
}

// dataTypeSize returns the number of bytes a non-bitfield DataType
// occupies on the wire.
func dataTypeSize(t DataType) int {
	switch t {
	case DataTypeU8, DataTypeI8, DataTypeBitfield:
		return 1
	case DataTypeU16, DataTypeI16:
		return 2
	case DataTypeU32, DataTypeI32, DataTypeF32:
		return 4
	default:
		return 1
	}
}
