package structures

import (
	"fmt"
	"math"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// Outputs names the boiler's digital output relays, in bit order within
// the packed outputs word reported by a CurrentDataResponse.
var Outputs = []string{
	"fan", "feeder", "heating_pump", "water_heater_pump",
	"circulation_pump", "lighter", "alarm", "outer_boiler",
	"fan2_exhaust", "feeder2", "outer_feeder", "solar_pump",
	"fireplace_pump", "gcz_contact", "blow_fan1", "blow_fan2",
}

// Temperatures names the known temperature sensor slots; a CurrentDataResponse
// only reports the subset actually wired up on a given controller.
var Temperatures = []string{
	"heating_temp", "feeder_temp", "water_heater_temp", "outside_temp",
	"return_temp", "exhaust_temp", "optical_temp", "upper_buffer_temp",
	"lower_buffer_temp", "upper_solar_temp", "lower_solar_temp",
	"fireplace_temp", "total_gain", "hydraulic_coupler_temp",
	"exchanger_temp", "air_in_temp", "air_out_temp",
}

// Statuses names the target/status byte pairs reported after temperatures.
var Statuses = []string{
	"heating_target", "heating_status", "water_heater_target", "water_heater_status",
}

// Modules names the connected firmware sub-modules reported in ConnectedModules.
var Modules = []string{"module_a", "module_b", "module_c", "ecolambda", "ecoster", "panel"}

const (
	byteUndefined   = 0xFF
	fuelLevelOffset = 101
)

// LambdaState mirrors the controller's lambda sensor operating mode.
type LambdaState uint8

const (
	LambdaStateStop LambdaState = iota
	LambdaStateStart
	LambdaStateWorking
)

// ConnectedModules reports the firmware version of each connected sub-module,
// empty string meaning not connected.
type ConnectedModules struct {
	ModuleA   string
	ModuleB   string
	ModuleC   string
	Ecolambda string
	Ecoster   string
	Panel     string
}

// ThermostatSensors reports one connected ecoSTER thermostat's readings.
type ThermostatSensors struct {
	State       uint8
	CurrentTemp float32
	TargetTemp  float32
	Contacts    bool
	Schedule    bool
}

// MixerSensors reports one mixer's readings.
type MixerSensors struct {
	CurrentTemp float32
	TargetTemp  uint8
	Pump        bool
}

// SensorData is the full decoded body of a CurrentDataResponse.
type SensorData struct {
	State                uint8
	Outputs              map[string]bool
	HeatingPumpFlag      bool
	WaterHeaterPumpFlag  bool
	CirculationPumpFlag  bool
	SolarPumpFlag        bool
	Temperatures         map[string]float32
	Statuses             map[string]uint8
	PendingAlerts        uint8
	FuelLevel            *uint8
	Transmission         uint8
	FanPower             *float32
	BoilerLoad           *uint8
	BoilerPower          *float32
	FuelConsumption      *float32
	ThermostatCount      uint8
	Modules              ConnectedModules
	LambdaState          *LambdaState
	LambdaTarget         uint8
	LambdaLevel          float32
	ThermostatSensors    map[int]ThermostatSensors
	ThermostatsConnected int
	ThermostatsAvailable uint8
	MixerSensors         map[int]MixerSensors
	MixersConnected      int
	MixersAvailable      uint8
}

// DecodeSensorData parses a CurrentDataResponse payload in full.
func DecodeSensorData(r *wire.Cursor) (SensorData, error) {
	var data SensorData

	state, err := r.ReadU8()
	if err != nil {
		return data, err
	}
	data.State = state

	if err := decodeOutputs(r, &data); err != nil {
		return data, err
	}
	if err := decodeOutputFlags(r, &data); err != nil {
		return data, err
	}
	if err := decodeTemperatures(r, &data); err != nil {
		return data, err
	}
	if err := decodeStatuses(r, &data); err != nil {
		return data, err
	}
	if err := decodePendingAlerts(r, &data); err != nil {
		return data, err
	}
	if err := decodeFuelLevel(r, &data); err != nil {
		return data, err
	}

	transmission, err := r.ReadU8()
	if err != nil {
		return data, err
	}
	data.Transmission = transmission

	if err := decodeOptionalFloat(r, &data.FanPower); err != nil {
		return data, err
	}
	if err := decodeBoilerLoad(r, &data); err != nil {
		return data, err
	}
	if err := decodeOptionalFloat(r, &data.BoilerPower); err != nil {
		return data, err
	}
	if err := decodeOptionalFloat(r, &data.FuelConsumption); err != nil {
		return data, err
	}

	thermostatCount, err := r.ReadU8()
	if err != nil {
		return data, err
	}
	data.ThermostatCount = thermostatCount

	if err := decodeModules(r, &data); err != nil {
		return data, err
	}
	if err := decodeLambdaSensor(r, &data); err != nil {
		return data, err
	}
	if err := decodeThermostatSensors(r, &data); err != nil {
		return data, err
	}
	if err := decodeMixerSensors(r, &data); err != nil {
		return data, err
	}

	return data, nil
}

func decodeOutputs(r *wire.Cursor, data *SensorData) error {
	word, err := r.ReadU32()
	if err != nil {
		return err
	}
	data.Outputs = make(map[string]bool, len(Outputs))
	for i, name := range Outputs {
		data.Outputs[name] = word&(1<<uint(i)) != 0
	}
	return nil
}

func decodeOutputFlags(r *wire.Cursor, data *SensorData) error {
	flags, err := r.ReadU32()
	if err != nil {
		return err
	}
	data.HeatingPumpFlag = flags&0x04 != 0
	data.WaterHeaterPumpFlag = flags&0x08 != 0
	data.CirculationPumpFlag = flags&0x10 != 0
	data.SolarPumpFlag = flags&0x800 != 0
	return nil
}

func decodeTemperatures(r *wire.Cursor, data *SensorData) error {
	count, err := r.ReadU8()
	if err != nil {
		return err
	}
	data.Temperatures = make(map[string]float32, count)
	for i := uint8(0); i < count; i++ {
		index, err := r.ReadU8()
		if err != nil {
			return err
		}
		temp, err := r.ReadF32()
		if err != nil {
			return err
		}
		if !math.IsNaN(float64(temp)) && int(index) < len(Temperatures) {
			data.Temperatures[Temperatures[index]] = temp
		}
	}
	return nil
}

func decodeStatuses(r *wire.Cursor, data *SensorData) error {
	data.Statuses = make(map[string]uint8, len(Statuses))
	for _, name := range Statuses {
		b, err := r.ReadU8()
		if err != nil {
			return err
		}
		data.Statuses[name] = b
	}
	return nil
}

func decodePendingAlerts(r *wire.Cursor, data *SensorData) error {
	count, err := r.ReadU8()
	if err != nil {
		return err
	}
	data.PendingAlerts = count
	// The pending alert codes that follow the count are skipped; only the
	// count is kept.
	if _, err := r.ReadBytes(int(count)); err != nil {
		return err
	}
	return nil
}

func decodeFuelLevel(r *wire.Cursor, data *SensorData) error {
	level, err := r.ReadU8()
	if err != nil {
		return err
	}
	if level == byteUndefined {
		return nil
	}
	// Fuel offset requirement observed on at least ecoMAX 860P6-O.
	if level >= fuelLevelOffset {
		level -= fuelLevelOffset
	}
	data.FuelLevel = &level
	return nil
}

func decodeBoilerLoad(r *wire.Cursor, data *SensorData) error {
	load, err := r.ReadU8()
	if err != nil {
		return err
	}
	if load != byteUndefined {
		data.BoilerLoad = &load
	}
	return nil
}

func decodeOptionalFloat(r *wire.Cursor, out **float32) error {
	v, err := r.ReadF32()
	if err != nil {
		return err
	}
	if !math.IsNaN(float64(v)) {
		*out = &v
	}
	return nil
}

func decodeModules(r *wire.Cursor, data *SensorData) error {
	versions := make([]*string, len(Modules))
	for i, name := range Modules {
		major, err := r.ReadU8()
		if err != nil {
			return err
		}
		if major == byteUndefined {
			continue
		}
		minor, err := r.ReadU8()
		if err != nil {
			return err
		}
		patch, err := r.ReadU8()
		if err != nil {
			return err
		}
		version := fmt.Sprintf("%d.%d.%d", major, minor, patch)

		if name == "module_a" {
			vendorCode, err := r.ReadU8()
			if err != nil {
				return err
			}
			vendorVersion, err := r.ReadU8()
			if err != nil {
				return err
			}
			version += fmt.Sprintf(".%c%d", vendorCode, vendorVersion)
		}
		versions[i] = &version
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	data.Modules = ConnectedModules{
		ModuleA:   deref(versions[0]),
		ModuleB:   deref(versions[1]),
		ModuleC:   deref(versions[2]),
		Ecolambda: deref(versions[3]),
		Ecoster:   deref(versions[4]),
		Panel:     deref(versions[5]),
	}
	return nil
}

func decodeLambdaSensor(r *wire.Cursor, data *SensorData) error {
	state, err := r.ReadU8()
	if err != nil {
		return err
	}
	if state == byteUndefined {
		return nil
	}
	target, err := r.ReadU8()
	if err != nil {
		return err
	}
	level, err := r.ReadU16()
	if err != nil {
		return err
	}
	ls := LambdaState(state)
	data.LambdaState = &ls
	data.LambdaTarget = target
	data.LambdaLevel = float32(level) / 10
	return nil
}

func decodeThermostatSensors(r *wire.Cursor, data *SensorData) error {
	contacts, err := r.ReadU8()
	if err != nil {
		return err
	}
	if contacts == byteUndefined {
		return nil
	}
	available, err := r.ReadU8()
	if err != nil {
		return err
	}
	data.ThermostatsAvailable = available
	data.ThermostatSensors = make(map[int]ThermostatSensors)

	contactMask := uint8(1)
	scheduleMask := uint8(1 << 3)
	for i := uint8(0); i < available; i++ {
		state, err := r.ReadU8()
		if err != nil {
			return err
		}
		current, err := r.ReadF32()
		if err != nil {
			return err
		}
		target, err := r.ReadF32()
		if err != nil {
			return err
		}
		contactState := contacts&contactMask != 0
		contactMask <<= 1
		scheduleState := contacts&scheduleMask != 0
		scheduleMask <<= 1

		if math.IsNaN(float64(current)) || target <= 0 {
			continue
		}
		data.ThermostatSensors[int(i)] = ThermostatSensors{
			State:       state,
			CurrentTemp: current,
			TargetTemp:  target,
			Contacts:    contactState,
			Schedule:    scheduleState,
		}
	}
	data.ThermostatsConnected = len(data.ThermostatSensors)
	return nil
}

func decodeMixerSensors(r *wire.Cursor, data *SensorData) error {
	mixers, err := r.ReadU8()
	if err != nil {
		return err
	}
	data.MixersAvailable = mixers
	data.MixerSensors = make(map[int]MixerSensors)

	for i := uint8(0); i < mixers; i++ {
		current, err := r.ReadF32()
		if err != nil {
			return err
		}
		rest, err := r.ReadBytes(4)
		if err != nil {
			return err
		}
		if !math.IsNaN(float64(current)) {
			data.MixerSensors[int(i)] = MixerSensors{
				CurrentTemp: current,
				TargetTemp:  rest[0],
				Pump:        rest[2]&0x01 != 0,
			}
		}
	}
	data.MixersConnected = len(data.MixerSensors)
	return nil
}
