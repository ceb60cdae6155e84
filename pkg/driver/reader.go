package driver

import (
	"context"
	"errors"

	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// readLoop is the driver's single long-lived reader goroutine: it reads
// one frame at a time, decodes it, and dispatches it, until the context is
// cancelled or the transport errors.
func (d *Driver) readLoop(ctx context.Context, errCh chan<- error) {
	defer d.wg.Done()

	for {
		envelope, err := d.framer.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, frame.ErrMalformedFrame) || errors.Is(err, frame.ErrChecksumError) || errors.Is(err, frame.ErrUnsupportedProtocol) {
				// A single bad frame never poisons the stream; the reader
				// has already resynchronised on the next start delimiter.
				d.stats.malformedFrames.Add(1)
				continue
			}
			select {
			case errCh <- err:
			default:
			}
			return
		}

		d.stats.framesReceived.Add(1)
		d.watchdog.Feed()
		d.dispatch(ctx, envelope)
	}
}

// dispatch applies one decoded frame: handshake requests get an immediate
// reply, responses are routed to a pending waiter and folded into the
// device model, and messages are folded into the model directly.
func (d *Driver) dispatch(ctx context.Context, e frame.Envelope) {
	r := wire.NewCursor(e.Payload)

	switch e.Type {
	case frame.ProgramVersionReq:
		d.handleProgramVersionRequest(ctx)
	case frame.CheckDevice:
		d.handleCheckDeviceRequest(ctx)
	case frame.SensorDataMessage:
		d.handleSensorData(ctx, r)
	case frame.RegulatorDataMessage:
		d.handleRegulatorData(ctx, r)
	case frame.EcomaxParametersResponse:
		d.handleEcomaxParameters(r, e)
	case frame.MixerParametersResponse:
		d.handleMixerParameters(r, e)
	case frame.ThermostatParametersResponse:
		d.handleThermostatParameters(r, e)
	case frame.SchedulesResponse:
		d.handleSchedules(r, e)
	case frame.AlertsResponse:
		d.handleAlerts(r, e)
	case frame.RegulatorDataSchemaResponse:
		d.handleRegulatorDataSchema(r, e)
	case frame.UIDResponse:
		d.handleUID(r, e)
	case frame.PasswordResponse:
		d.handlePassword(r, e)
	case frame.SetEcomaxParameterResponse, frame.SetMixerParameterResponse,
		frame.SetThermostatParameterResponse, frame.SetScheduleResponse:
		d.corr.resolve(correlationKey{responseType: e.Type}, e)
	default:
		// Unrecognised frame types are not an error; a caller can still
		// observe them via the raw log. Nothing to fold into the model.
	}
}

func (d *Driver) handleSensorData(ctx context.Context, r *wire.Cursor) {
	versions, err := structures.DecodeFrameVersions(r)
	if err != nil {
		return
	}
	data, err := structures.DecodeSensorData(r)
	if err != nil {
		return
	}

	d.applySensorData(data)
	d.Device.SetVersionsSeen(versions)
	d.reconcileVersions(ctx, versions)

	if d.State() == StateHandshake {
		d.backoff.Reset()
		d.setState(StateReady, "first sensor data message")
	}
}

func (d *Driver) applySensorData(data structures.SensorData) {
	values := map[string]any{
		"state":                 data.State,
		"heating_pump_flag":     data.HeatingPumpFlag,
		"water_heater_pump_flag": data.WaterHeaterPumpFlag,
		"circulation_pump_flag": data.CirculationPumpFlag,
		"solar_pump_flag":       data.SolarPumpFlag,
		"pending_alerts":        data.PendingAlerts,
		"transmission":          data.Transmission,
		"thermostat_count":      data.ThermostatCount,
		"modules":               data.Modules,
		"lambda_target":         data.LambdaTarget,
		"lambda_level":          data.LambdaLevel,
		"thermostat_sensors":    data.ThermostatSensors,
		"thermostats_connected": data.ThermostatsConnected,
		"thermostats_available": data.ThermostatsAvailable,
		"mixer_sensors":         data.MixerSensors,
		"mixers_connected":      data.MixersConnected,
		"mixers_available":      data.MixersAvailable,
	}
	for name, on := range data.Outputs {
		values[name] = on
	}
	for name, temp := range data.Temperatures {
		values[name] = temp
	}
	for name, status := range data.Statuses {
		values[name] = status
	}
	if data.FuelLevel != nil {
		values["fuel_level"] = *data.FuelLevel
	}
	if data.FanPower != nil {
		values["fan_power"] = *data.FanPower
	}
	if data.BoilerLoad != nil {
		values["boiler_load"] = *data.BoilerLoad
	}
	if data.BoilerPower != nil {
		values["boiler_power"] = *data.BoilerPower
	}
	if data.FuelConsumption != nil {
		values["fuel_consumption"] = *data.FuelConsumption
	}
	if data.LambdaState != nil {
		values["lambda_state"] = *data.LambdaState
	}
	d.Device.SetDataBulk(values)
}

func (d *Driver) handleRegulatorData(ctx context.Context, r *wire.Cursor) {
	data, err := structures.DecodeRegulatorData(r, d.currentSchema())
	if err != nil {
		return
	}
	d.Device.SetData("regulator_version", data.Version)
	for key, value := range data.Values {
		d.Device.SetData(regulatorKeyName(key), value)
	}
	d.Device.SetVersionsSeen(data.Versions)
	d.reconcileVersions(ctx, data.Versions)
}

func regulatorKeyName(key uint16) string {
	return "regulator_" + fmtUint16(key)
}

func fmtUint16(v uint16) string {
	const digits = "0123456789"
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v%10]
		v /= 10
	}
	return string(buf[i:])
}

func (d *Driver) handleEcomaxParameters(r *wire.Cursor, e frame.Envelope) {
	params, err := structures.DecodeEcomaxParameters(r)
	if err == nil {
		for name, values := range params {
			d.Device.UpdateParameter(name, values)
		}
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleMixerParameters(r *wire.Cursor, e frame.Envelope) {
	byMixer, err := structures.DecodeMixerParametersMessage(r)
	if err == nil {
		for index, params := range byMixer {
			mixer := d.Device.Mixer(index)
			for name, values := range params {
				mixer.UpdateParameter(name, values)
			}
		}
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleThermostatParameters(r *wire.Cursor, e frame.Envelope) {
	thermostats, _ := d.Device.GetNowait("thermostats_available", uint8(0)).(uint8)
	profile, byThermostat, err := structures.DecodeThermostatParametersMessage(r, thermostats)
	if err == nil {
		d.Device.SetData("thermostat_profile", profile)
		for index, params := range byThermostat {
			thermostat := d.Device.Thermostat(index)
			for name, values := range params {
				thermostat.UpdateParameter(name, values)
			}
		}
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleSchedules(r *wire.Cursor, e frame.Envelope) {
	entries, err := structures.DecodeSchedules(r)
	if err == nil {
		for _, entry := range entries {
			d.Device.UpdateSchedule(entry)
		}
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleAlerts(r *wire.Cursor, e frame.Envelope) {
	alerts, total, err := structures.DecodeAlerts(r)
	if err == nil {
		d.Device.SetData("alerts", alerts)
		d.Device.SetData("alerts_total", total)
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleRegulatorDataSchema(r *wire.Cursor, e frame.Envelope) {
	schema, err := structures.DecodeRegulatorDataSchema(r)
	if err == nil {
		d.setSchema(schema)
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handleUID(r *wire.Cursor, e frame.Envelope) {
	info, err := structures.DecodeProductInfo(r)
	if err == nil {
		d.Device.SetData("product", info)
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}

func (d *Driver) handlePassword(r *wire.Cursor, e frame.Envelope) {
	password, err := r.ReadString()
	if err == nil {
		d.Device.SetData("password", password)
	}
	d.corr.resolve(correlationKey{responseType: e.Type}, e)
}
