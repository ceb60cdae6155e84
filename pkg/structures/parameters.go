package structures

import (
	"fmt"
	"math"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// ParameterValues is the raw {value, minimum, maximum} triple a controller
// reports for one editable parameter. All three share the parameter's
// width (1 or 2 raw bytes); callers apply any scale/offset on top.
type ParameterValues struct {
	Value uint16
	Min   uint16
	Max   uint16
}

// sentinel is the "absent parameter" marker: all bytes of the triple set
// to 0xFF, regardless of the parameter's width.
func (v ParameterValues) isSentinel(width int) bool {
	mask := uint16(0xFF)
	if width == 2 {
		mask = 0xFFFF
	}
	return v.Value == mask && v.Min == mask && v.Max == mask
}

// ParameterDescriptor names one entry in a parameter catalogue: the wire
// width (in bytes) of its value/min/max triple, and the scale/offset pair
// that converts its raw integer to a physical value: rendered = raw*Scale
// + Offset. Scale's zero value is treated as 1 (no scaling), which is why
// the great majority of descriptors below only set Name/Width.
type ParameterDescriptor struct {
	Name   string
	Width  int
	Scale  float64
	Offset float64
}

func (d ParameterDescriptor) scale() float64 {
	if d.Scale == 0 {
		return 1
	}
	return d.Scale
}

// Rendered converts a raw wire value to its physical value.
func (d ParameterDescriptor) Rendered(raw uint16) float64 {
	return float64(raw)*d.scale() + d.Offset
}

// Raw converts a physical value back to its wire representation, rounding
// to the nearest integer.
func (d ParameterDescriptor) Raw(rendered float64) uint16 {
	return uint16(math.Round((rendered - d.Offset) / d.scale()))
}

func catalogueName(catalogue map[uint8]ParameterDescriptor, index uint8) ParameterDescriptor {
	if d, ok := catalogue[index]; ok {
		return d
	}
	return ParameterDescriptor{Name: fmt.Sprintf("parameter_%d", index), Width: 1}
}

// descriptorByName reverse-looks-up a catalogue entry by its reported
// name, used by the device layer to fetch a parameter's scale/offset
// without re-decoding the wire payload that produced it.
func descriptorByName(catalogue map[uint8]ParameterDescriptor, name string) (ParameterDescriptor, bool) {
	for _, d := range catalogue {
		if d.Name == name {
			return d, true
		}
	}
	return ParameterDescriptor{}, false
}

func readTriple(r *wire.Cursor, width int) (ParameterValues, error) {
	if width == 2 {
		value, err := r.ReadU16()
		if err != nil {
			return ParameterValues{}, err
		}
		min, err := r.ReadU16()
		if err != nil {
			return ParameterValues{}, err
		}
		max, err := r.ReadU16()
		if err != nil {
			return ParameterValues{}, err
		}
		return ParameterValues{Value: value, Min: min, Max: max}, nil
	}

	value, err := r.ReadU8()
	if err != nil {
		return ParameterValues{}, err
	}
	min, err := r.ReadU8()
	if err != nil {
		return ParameterValues{}, err
	}
	max, err := r.ReadU8()
	if err != nil {
		return ParameterValues{}, err
	}
	return ParameterValues{Value: uint16(value), Min: uint16(min), Max: uint16(max)}, nil
}

func writeTriple(w *wire.Cursor, width int, v ParameterValues) {
	if width == 2 {
		w.WriteU16(v.Value)
		w.WriteU16(v.Min)
		w.WriteU16(v.Max)
		return
	}
	w.WriteU8(uint8(v.Value))
	w.WriteU8(uint8(v.Min))
	w.WriteU8(uint8(v.Max))
}

// decodeParameterCatalogue parses the common "start index, count, then
// count descriptors" layout shared by ecomax/mixer/thermostat parameter
// responses, filtering out the 0xFF-sentinel "absent parameter" slots.
func decodeParameterCatalogue(r *wire.Cursor, catalogue map[uint8]ParameterDescriptor) (map[string]ParameterValues, error) {
	start, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	out := make(map[string]ParameterValues, count)
	for i := uint8(0); i < count; i++ {
		index := start + i
		desc := catalogueName(catalogue, index)
		values, err := readTriple(r, desc.Width)
		if err != nil {
			return nil, err
		}
		if values.isSentinel(desc.Width) {
			continue
		}
		out[desc.Name] = values
	}

	return out, nil
}

// decodeParameterBlock reads count-many triples starting at parameter index
// start, without reading a start/count header of its own. Used for
// sub-device parameter responses where one shared header precedes several
// consecutive raw triple blocks, one per sub-device.
func decodeParameterBlock(r *wire.Cursor, catalogue map[uint8]ParameterDescriptor, start, count uint8) (map[string]ParameterValues, error) {
	out := make(map[string]ParameterValues, count)
	for i := uint8(0); i < count; i++ {
		index := start + i
		desc := catalogueName(catalogue, index)
		values, err := readTriple(r, desc.Width)
		if err != nil {
			return nil, err
		}
		if values.isSentinel(desc.Width) {
			continue
		}
		out[desc.Name] = values
	}
	return out, nil
}

// encodeParameterWrite serialises a single parameter write
// (SetEcomaxParameter/SetMixerParameter/SetThermostatParameter bodies all
// carry one index and one raw value, not a full catalogue round-trip).
func encodeParameterWrite(w *wire.Cursor, index uint8, value uint16, width int) {
	w.WriteU8(index)
	if width == 2 {
		w.WriteU16(value)
	} else {
		w.WriteU8(uint8(value))
	}
}
