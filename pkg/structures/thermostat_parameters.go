package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

var thermostatParameterCatalogue = map[uint8]ParameterDescriptor{
	0:  {Name: "mode", Width: 1},
	1:  {Name: "party_target_temp", Width: 2},
	2:  {Name: "holidays_target_temp", Width: 2},
	3:  {Name: "correction", Width: 1},
	4:  {Name: "away_timer", Width: 1},
	5:  {Name: "airing_timer", Width: 1},
	6:  {Name: "party_timer", Width: 1},
	7:  {Name: "holidays_timer", Width: 1},
	8:  {Name: "heating_timer", Width: 1},
	9:  {Name: "off_timer", Width: 1},
	10: {Name: "day_target_temp", Width: 2},
	11: {Name: "night_target_temp", Width: 2},
	12: {Name: "antifreeze_target_temp", Width: 2},
	13: {Name: "heating_target_temp", Width: 2},
	14: {Name: "hysteresis", Width: 1},
}

// DecodeThermostatParameters parses a ThermostatParametersResponse
// payload for one thermostat sub-device.
func DecodeThermostatParameters(r *wire.Cursor) (map[string]ParameterValues, error) {
	return decodeParameterCatalogue(r, thermostatParameterCatalogue)
}

// DecodeThermostatParametersMessage parses a full ThermostatParametersResponse
// frame. Unlike mixers, the thermostat count isn't carried in the payload;
// the caller supplies it from the controller's thermostats_available
// sensor reading. The payload carries a shared start/end parameter range
// (end here is the combined count across all thermostats, not an index),
// a thermostat profile parameter, then that many consecutive raw triple
// blocks, one per thermostat.
func DecodeThermostatParametersMessage(r *wire.Cursor, thermostats uint8) (ParameterValues, map[uint8]map[string]ParameterValues, error) {
	if _, err := r.ReadU8(); err != nil { // leading index byte, unused
		return ParameterValues{}, nil, err
	}
	start, err := r.ReadU8()
	if err != nil {
		return ParameterValues{}, nil, err
	}
	end, err := r.ReadU8()
	if err != nil {
		return ParameterValues{}, nil, err
	}

	profile, err := readTriple(r, 1)
	if err != nil {
		return ParameterValues{}, nil, err
	}

	if thermostats == 0 {
		return profile, map[uint8]map[string]ParameterValues{}, nil
	}

	perThermostat := (uint16(start) + uint16(end)) / uint16(thermostats)
	count := uint8(perThermostat) - start

	out := make(map[uint8]map[string]ParameterValues, thermostats)
	for i := uint8(0); i < thermostats; i++ {
		params, err := decodeParameterBlock(r, thermostatParameterCatalogue, start, count)
		if err != nil {
			return ParameterValues{}, nil, err
		}
		out[i] = params
	}
	return profile, out, nil
}

// ThermostatParameterDescriptor returns the named thermostat-level
// parameter's catalogue entry, including its scale/offset.
func ThermostatParameterDescriptor(name string) (ParameterDescriptor, bool) {
	return descriptorByName(thermostatParameterCatalogue, name)
}

func thermostatParameterIndex(name string) (uint8, int, bool) {
	for index, desc := range thermostatParameterCatalogue {
		if desc.Name == name {
			return index, desc.Width, true
		}
	}
	return 0, 0, false
}

// EncodeSetThermostatParameter serialises a SetThermostatParameter request
// body: thermostat index, parameter index, byte offset within the
// parameter's storage, size, then the raw value.
func EncodeSetThermostatParameter(w *wire.Cursor, thermostatIndex uint8, name string, value uint16) bool {
	index, width, ok := thermostatParameterIndex(name)
	if !ok {
		return false
	}
	w.WriteU8(thermostatIndex)
	w.WriteU8(index)
	w.WriteU8(0) // byte offset within the parameter's storage
	w.WriteU8(uint8(width))
	if width == 2 {
		w.WriteU16(value)
	} else {
		w.WriteU8(uint8(value))
	}
	return true
}
