package device_test

import (
	"context"
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/device"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleSetOnMarksHalfHourSlotsOnEveryDay(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, ok := d.Schedule("heating")
	require.True(t, ok)

	require.NoError(t, sched.SetOn("06:00", "22:00"))
	assert.True(t, sched.Dirty())

	grid := sched.Grid()
	// 06:00 is slot 12, 22:00 is slot 44.
	for day := 0; day < 7; day++ {
		assert.False(t, grid[day][11], "slot before the window must stay off")
		assert.True(t, grid[day][12], "window start slot must be on")
		assert.True(t, grid[day][43], "slot just before window end must be on")
		assert.False(t, grid[day][44], "window end slot is exclusive")
	}
}

func TestScheduleDaySetOnLeavesOtherDaysUnchanged(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, ok := d.Schedule("heating")
	require.True(t, ok)

	// Start from a known baseline: every day on all day.
	require.NoError(t, sched.SetOn(nil, nil))

	// Monday 00:00-07:00 off, 07:00-24:00 on; every other day unchanged.
	monday := sched.Day(structures.Monday)
	require.NoError(t, monday.SetOff("00:00", "07:00"))
	require.NoError(t, monday.SetOn("07:00", "00:00"))
	assert.True(t, sched.Dirty())

	grid := sched.Grid()
	for slot := 0; slot < 14; slot++ {
		assert.False(t, grid[structures.Monday][slot], "monday slot %d must be off", slot)
	}
	for slot := 14; slot < 48; slot++ {
		assert.True(t, grid[structures.Monday][slot], "monday slot %d must be on", slot)
	}

	for day := 0; day < 7; day++ {
		if structures.Weekday(day) == structures.Monday {
			continue
		}
		for slot := 0; slot < 48; slot++ {
			assert.True(t, grid[day][slot], "day %d slot %d must remain unchanged from the baseline", day, slot)
		}
	}
}

func TestScheduleSetOnDefaultsCoverFullDay(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, _ := d.Schedule("heating")
	require.NoError(t, sched.SetOn(nil, nil))

	grid := sched.Grid()
	for slot := 0; slot < 48; slot++ {
		assert.True(t, grid[0][slot], "default start==end must wrap to the whole day")
	}
}

func TestScheduleSetOffClearsSlots(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, _ := d.Schedule("heating")
	require.NoError(t, sched.SetOn(nil, nil))
	require.NoError(t, sched.SetOff("00:00", "06:00"))

	grid := sched.Grid()
	assert.False(t, grid[3][0])
	assert.False(t, grid[3][11])
	assert.True(t, grid[3][12])
}

func TestScheduleSetOnAcceptsMinuteCounts(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, _ := d.Schedule("heating")
	require.NoError(t, sched.SetOn(360, 1320)) // 06:00, 22:00 in minutes

	grid := sched.Grid()
	assert.True(t, grid[0][12])
	assert.False(t, grid[0][44])
}

func TestScheduleSetStateRejectsMalformedTime(t *testing.T) {
	d := device.New(&fakeSender{confirm: true}, &fakeScheduleSender{})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})

	sched, _ := d.Schedule("heating")
	assert.Error(t, sched.SetOn("not-a-time", "22:00"))
}

func TestCommitResendsEverySchedule(t *testing.T) {
	sender := &fakeScheduleSender{}
	d := device.New(&fakeSender{confirm: true}, sender)
	d.UpdateSchedule(structures.ScheduleEntry{Name: "heating"})
	d.UpdateSchedule(structures.ScheduleEntry{Name: "water_heater"})

	heating, _ := d.Schedule("heating")
	require.NoError(t, heating.SetOn("06:00", "22:00"))

	require.NoError(t, heating.Commit(context.Background()))

	assert.ElementsMatch(t, []string{"heating", "water_heater"}, sender.sent)
	assert.False(t, heating.Dirty())
}
