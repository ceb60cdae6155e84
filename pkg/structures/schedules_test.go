package structures_test

import (
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSetScheduleThenDecodeRoundTrip(t *testing.T) {
	var sched structures.WeeklySchedule
	sched[0][0] = true
	sched[0][1] = true
	sched[6][47] = true

	switchVal := structures.ParameterValues{Value: 1}
	paramVal := structures.ParameterValues{Value: 45}

	w := wire.NewWriteCursor()
	ok := structures.EncodeSetSchedule(w, "heating", switchVal, paramVal, sched)
	require.True(t, ok)

	r := wire.NewCursor(w.Bytes())
	index, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), index)

	// Rebuild a SchedulesResponse-shaped payload to exercise DecodeSchedules.
	w2 := wire.NewWriteCursor()
	w2.WriteU8(0) // start
	w2.WriteU8(1) // count
	w2.WriteU8(uint8(switchVal.Value))
	w2.WriteU8(uint8(paramVal.Value))
	for day := 0; day < 7; day++ {
		for slot := 0; slot < 48; slot += 8 {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if sched[day][slot+bit] {
					b |= 1 << uint(bit)
				}
			}
			w2.WriteU8(b)
		}
	}

	entries, err := structures.DecodeSchedules(wire.NewCursor(w2.Bytes()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "heating", entries[0].Name)
	assert.True(t, entries[0].Schedule[0][0])
	assert.True(t, entries[0].Schedule[0][1])
	assert.True(t, entries[0].Schedule[6][47])
	assert.False(t, entries[0].Schedule[1][0])
}

func TestEncodeSetScheduleUnknownName(t *testing.T) {
	w := wire.NewWriteCursor()
	var sched structures.WeeklySchedule
	ok := structures.EncodeSetSchedule(w, "does_not_exist", structures.ParameterValues{}, structures.ParameterValues{}, sched)
	assert.False(t, ok)
}

func TestScheduleNamesCoversKnownSlots(t *testing.T) {
	assert.Contains(t, structures.ScheduleNames, "heating")
	assert.Contains(t, structures.ScheduleNames, "thermostat_3")
}
