package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// ecomaxParameterCatalogue names the leading, most commonly populated
// entries of the ecoMAX parameter table. Indices this repo has not named
// still decode correctly: catalogueName falls back to a generic
// "parameter_N" name and a 1-byte width.
var ecomaxParameterCatalogue = map[uint8]ParameterDescriptor{
	0:  {Name: "airflow_power_100", Width: 1},
	1:  {Name: "airflow_power_50", Width: 1},
	2:  {Name: "airflow_power_30", Width: 1},
	3:  {Name: "power_100", Width: 1},
	4:  {Name: "power_50", Width: 1},
	5:  {Name: "power_30", Width: 1},
	6:  {Name: "max_fan_boiler_power", Width: 1},
	7:  {Name: "min_fan_boiler_power", Width: 1},
	8:  {Name: "fuel_feeding_time_100", Width: 2},
	9:  {Name: "fuel_feeding_time_50", Width: 2},
	10: {Name: "fuel_feeding_time_30", Width: 2},
	11: {Name: "fuel_feeding_break_100", Width: 2},
	12: {Name: "fuel_feeding_break_50", Width: 2},
	13: {Name: "fuel_feeding_break_30", Width: 2},
	14: {Name: "cycle_time", Width: 1},
	15: {Name: "h2_hysteresis", Width: 1},
	16: {Name: "h1_hysteresis", Width: 1},
	17: {Name: "heating_hysteresis", Width: 1},
	18: {Name: "fuzzy_logic", Width: 1},
	19: {Name: "min_fuzzy_logic_power", Width: 1},
	20: {Name: "max_fuzzy_logic_power", Width: 1},
	21: {Name: "min_boiler_power", Width: 2},
	22: {Name: "max_boiler_power", Width: 2},
	23: {Name: "min_fan_power", Width: 1},
	24: {Name: "max_fan_power", Width: 1},
	25: {Name: "heating_set_temp", Width: 1},
	26: {Name: "min_heating_set_temp", Width: 1},
	27: {Name: "max_heating_set_temp", Width: 1},
	28: {Name: "water_heater_set_temp", Width: 1},
	29: {Name: "min_water_heater_set_temp", Width: 1},
	30: {Name: "max_water_heater_set_temp", Width: 1},
	31: {Name: "summer_mode", Width: 1},
	32: {Name: "summer_mode_on_temp", Width: 1},
	33: {Name: "summer_mode_off_temp", Width: 1},
}

// DecodeEcomaxParameters parses an EcomaxParametersResponse payload.
func DecodeEcomaxParameters(r *wire.Cursor) (map[string]ParameterValues, error) {
	return decodeParameterCatalogue(r, ecomaxParameterCatalogue)
}

// EcomaxParameterDescriptor returns the named ecomax-level parameter's
// catalogue entry, including its scale/offset, or the zero descriptor
// (scale 1, offset 0) if the name is not in the catalogue.
func EcomaxParameterDescriptor(name string) (ParameterDescriptor, bool) {
	return descriptorByName(ecomaxParameterCatalogue, name)
}

// ecomaxParameterIndex reverse-looks-up a parameter name's catalogue
// index and wire width, used when the device model needs to serialise a
// SetEcomaxParameter request.
func ecomaxParameterIndex(name string) (uint8, int, bool) {
	for index, desc := range ecomaxParameterCatalogue {
		if desc.Name == name {
			return index, desc.Width, true
		}
	}
	return 0, 0, false
}

// EncodeSetEcomaxParameter serialises a SetEcomaxParameter request body
// for the named parameter.
func EncodeSetEcomaxParameter(w *wire.Cursor, name string, value uint16) bool {
	index, width, ok := ecomaxParameterIndex(name)
	if !ok {
		return false
	}
	encodeParameterWrite(w, index, value, width)
	return true
}
