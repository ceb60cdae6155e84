package structures_test

import (
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEcomaxParameters(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteU8(0) // start index
	w.WriteU8(2) // count
	w.WriteU8(80)
	w.WriteU8(0)
	w.WriteU8(100)
	w.WriteU8(60)
	w.WriteU8(0)
	w.WriteU8(100)

	r := wire.NewCursor(w.Bytes())
	params, err := structures.DecodeEcomaxParameters(r)
	require.NoError(t, err)

	assert.Equal(t, uint16(80), params["airflow_power_100"].Value)
	assert.Equal(t, uint16(60), params["airflow_power_50"].Value)
}

func TestDecodeEcomaxParametersSkipsSentinel(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteU8(0)
	w.WriteU8(1)
	w.WriteU8(0xFF)
	w.WriteU8(0xFF)
	w.WriteU8(0xFF)

	r := wire.NewCursor(w.Bytes())
	params, err := structures.DecodeEcomaxParameters(r)
	require.NoError(t, err)
	assert.NotContains(t, params, "airflow_power_100")
}

func TestEncodeSetEcomaxParameterUnknownName(t *testing.T) {
	w := wire.NewWriteCursor()
	ok := structures.EncodeSetEcomaxParameter(w, "does_not_exist", 5)
	assert.False(t, ok)
}

func TestEncodeSetEcomaxParameterWideValue(t *testing.T) {
	w := wire.NewWriteCursor()
	ok := structures.EncodeSetEcomaxParameter(w, "fuel_feeding_time_100", 300)
	require.True(t, ok)

	r := wire.NewCursor(w.Bytes())
	index, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(8), index)

	value, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(300), value)
}
