package structures_test

import (
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSensorDataPayload(t *testing.T) *wire.Cursor {
	t.Helper()
	w := wire.NewWriteCursor()

	w.WriteU8(3) // state
	w.WriteU32(0b101) // outputs: fan + heating_pump
	w.WriteU32(0x04)  // output flags: heating_pump_flag

	w.WriteU8(2) // temperature count
	w.WriteU8(0) // index 0: heating_temp
	w.WriteF32(45.5)
	w.WriteU8(3) // index 3: outside_temp
	w.WriteF32(-2.0)

	w.WriteU8(20) // heating_target
	w.WriteU8(1)  // heating_status
	w.WriteU8(50) // water_heater_target
	w.WriteU8(0)  // water_heater_status

	w.WriteU8(0) // pending alerts count

	w.WriteU8(30) // fuel level

	w.WriteU8(0) // transmission

	w.WriteF32(75.0) // fan power
	w.WriteU8(40)    // boiler load
	w.WriteF32(30.0) // boiler power
	w.WriteF32(1.2)  // fuel consumption

	w.WriteU8(1) // thermostat count (reported, not available-per-module)

	for range structures.Modules {
		w.WriteU8(0xFF)
	}

	w.WriteU8(0xFF) // lambda state undefined

	w.WriteU8(0xFF) // thermostat contacts undefined

	w.WriteU8(0) // mixers available

	return wire.NewCursor(w.Bytes())
}

func TestDecodeSensorDataBasics(t *testing.T) {
	r := buildSensorDataPayload(t)
	data, err := structures.DecodeSensorData(r)
	require.NoError(t, err)

	assert.Equal(t, uint8(3), data.State)
	assert.True(t, data.Outputs["fan"])
	assert.True(t, data.Outputs["heating_pump"])
	assert.False(t, data.Outputs["feeder"])
	assert.True(t, data.HeatingPumpFlag)

	assert.InDelta(t, 45.5, data.Temperatures["heating_temp"], 0.0001)
	assert.InDelta(t, -2.0, data.Temperatures["outside_temp"], 0.0001)

	assert.Equal(t, uint8(20), data.Statuses["heating_target"])
	assert.Equal(t, uint8(1), data.Statuses["heating_status"])

	require.NotNil(t, data.FuelLevel)
	assert.Equal(t, uint8(30), *data.FuelLevel)

	require.NotNil(t, data.FanPower)
	assert.InDelta(t, 75.0, *data.FanPower, 0.0001)

	require.NotNil(t, data.BoilerLoad)
	assert.Equal(t, uint8(40), *data.BoilerLoad)

	assert.Nil(t, data.LambdaState)
	assert.Empty(t, data.ThermostatSensors)
	assert.Equal(t, uint8(0), data.MixersAvailable)
}

func TestDecodeSensorDataAppliesFuelLevelOffset(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteU8(0)
	w.WriteU32(0)
	w.WriteU32(0)
	w.WriteU8(0)
	w.WriteU8(0)
	w.WriteU8(0)
	w.WriteU8(0)
	w.WriteU8(0)
	w.WriteU8(0) // pending alerts
	w.WriteU8(150)
	w.WriteU8(0)
	w.WriteF32(0)
	w.WriteU8(0xFF)
	w.WriteF32(0)
	w.WriteF32(0)
	w.WriteU8(0)
	for range structures.Modules {
		w.WriteU8(0xFF)
	}
	w.WriteU8(0xFF)
	w.WriteU8(0xFF)
	w.WriteU8(0)

	data, err := structures.DecodeSensorData(wire.NewCursor(w.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, data.FuelLevel)
	assert.Equal(t, uint8(49), *data.FuelLevel)
	assert.Nil(t, data.BoilerLoad)
}
