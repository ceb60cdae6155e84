package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

var mixerParameterCatalogue = map[uint8]ParameterDescriptor{
	0: {Name: "mixer_target_temp", Width: 1},
	1: {Name: "min_target_temp", Width: 1},
	2: {Name: "max_target_temp", Width: 1},
	3: {Name: "thermostat_decrease_target_temp", Width: 1},
	4: {Name: "weather_control", Width: 1},
	5: {Name: "heating_curve", Width: 1},
	6: {Name: "heating_curve_shift", Width: 1},
	7: {Name: "weather_factor", Width: 1},
	8: {Name: "mixer_input_dead_zone", Width: 1},
	9: {Name: "thermostat_operation", Width: 1},
}

// DecodeMixerParameters parses a MixerParametersResponse payload for one
// mixer sub-device. The caller is responsible for associating the result
// with the mixer index carried in the frame header/payload wrapper.
func DecodeMixerParameters(r *wire.Cursor) (map[string]ParameterValues, error) {
	return decodeParameterCatalogue(r, mixerParameterCatalogue)
}

// DecodeMixerParametersMessage parses a full MixerParametersResponse frame:
// one leading index byte, a starting catalogue index and a count of
// parameters from there, a mixer count, then that many consecutive raw
// triple blocks, one per mixer.
func DecodeMixerParametersMessage(r *wire.Cursor) (map[uint8]map[string]ParameterValues, error) {
	if _, err := r.ReadU8(); err != nil { // leading index byte, unused
		return nil, err
	}
	start, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	end, err := r.ReadU8() // count of parameters starting at start, not an end index
	if err != nil {
		return nil, err
	}
	mixers, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	out := make(map[uint8]map[string]ParameterValues, mixers)
	for i := uint8(0); i < mixers; i++ {
		params, err := decodeParameterBlock(r, mixerParameterCatalogue, start, end)
		if err != nil {
			return nil, err
		}
		out[i] = params
	}
	return out, nil
}

// MixerParameterDescriptor returns the named mixer-level parameter's
// catalogue entry, including its scale/offset.
func MixerParameterDescriptor(name string) (ParameterDescriptor, bool) {
	return descriptorByName(mixerParameterCatalogue, name)
}

func mixerParameterIndex(name string) (uint8, int, bool) {
	for index, desc := range mixerParameterCatalogue {
		if desc.Name == name {
			return index, desc.Width, true
		}
	}
	return 0, 0, false
}

// EncodeSetMixerParameter serialises a SetMixerParameter request body for
// the named parameter, prefixed with the target mixer index.
func EncodeSetMixerParameter(w *wire.Cursor, mixerIndex uint8, name string, value uint16) bool {
	index, width, ok := mixerParameterIndex(name)
	if !ok {
		return false
	}
	w.WriteU8(mixerIndex)
	encodeParameterWrite(w, index, value, width)
	return true
}
