package device_test

import (
	"context"
	"testing"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/device"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNowaitReturnsDefaultWhenUnset(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	assert.Equal(t, "fallback", d.GetNowait("heating_temp", "fallback"))
}

func TestGetNowaitReturnsAssignedValue(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	d.SetData("heating_temp", 45.5)
	assert.Equal(t, 45.5, d.GetNowait("heating_temp", nil))
}

func TestGetReturnsImmediatelyWhenPresent(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	d.SetData("heating_temp", 45.5)

	v, err := d.Get(context.Background(), "heating_temp", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 45.5, v)
}

func TestGetWaitsForNextAssignment(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})

	done := make(chan struct{})
	var got any
	go func() {
		v, err := d.Get(context.Background(), "heating_temp", time.Second)
		require.NoError(t, err)
		got = v
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	d.SetData("heating_temp", 45.5)

	select {
	case <-done:
		assert.Equal(t, 45.5, got)
	case <-time.After(time.Second):
		t.Fatal("Get did not observe the assignment")
	}
}

func TestGetTimesOutWithoutAssignment(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	_, err := d.Get(context.Background(), "heating_temp", 10*time.Millisecond)
	assert.ErrorIs(t, err, device.ErrTimeout)
}

func TestWaitForReturnsOnceCellExists(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	d.SetData("state", uint8(3))
	assert.NoError(t, d.WaitFor(context.Background(), "state", time.Millisecond))
}

func TestSubscribeReceivesPublishedValues(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})
	var got []any
	d.Subscribe("heating_temp", func(v any) { got = append(got, v) })

	d.SetData("heating_temp", 40.0)
	d.SetData("heating_temp", 41.0)

	assert.Equal(t, []any{40.0, 41.0}, got)
}

func TestMixerAndThermostatAreLazilyCreatedAndStable(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})

	m1 := d.Mixer(1)
	m2 := d.Mixer(1)
	assert.Same(t, m1, m2, "repeated access must return the same sub-device")

	th := d.Thermostat(0)
	assert.Equal(t, uint8(0), th.Index())

	assert.Len(t, d.Mixers(), 1)
	assert.Len(t, d.Thermostats(), 1)
}

func TestVersionsSeenAndDivergingDriveReFetch(t *testing.T) {
	d := device.New(&fakeSender{}, &fakeScheduleSender{})

	d.SetVersionsSeen(structures.FrameVersions{0x55: 1, 0x31: 2})
	d.MarkRequested(0x55, 1)

	diverging := d.VersionsSeen().Diverging(d.VersionsRequested())
	assert.ElementsMatch(t, []uint16{0x31}, diverging)
}
