package device

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

const slotsPerDay = 48 // half-hour slots in a day, matching structures.WeeklySchedule

// ScheduleSender issues a SetSchedule request for one named schedule and
// blocks until the controller acknowledges it.
type ScheduleSender interface {
	SendSetSchedule(ctx context.Context, name string, switchVal, paramVal structures.ParameterValues, grid structures.WeeklySchedule) error
}

// Schedule is a named weekly on/off program. Edits accumulate locally and
// mark the schedule dirty; Commit resends every schedule the owning device
// holds, since the protocol has no way to push a single day's diff.
type Schedule struct {
	mu     sync.RWMutex
	name   string
	entry  structures.ScheduleEntry
	dirty  bool
	parent *Schedules
}

func newSchedule(entry structures.ScheduleEntry, parent *Schedules) *Schedule {
	return &Schedule{name: entry.Name, entry: entry, parent: parent}
}

// Name returns the schedule's name.
func (s *Schedule) Name() string {
	return s.name
}

// Grid returns a copy of the current weekly on/off bitfield.
func (s *Schedule) Grid() structures.WeeklySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entry.Schedule
}

// Dirty reports whether the schedule has local edits not yet committed.
func (s *Schedule) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *Schedule) update(entry structures.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = entry
	s.dirty = false
}

// SetOn turns the schedule on for every day of the week, for the half-hour
// slots between start (default "00:00") and end (default "00:00", which
// wraps to cover the entire day). start/end accept either an "HH:MM"
// string or an int count of minutes since midnight. To edit a single
// weekday and leave the rest as last reported, use Day instead.
func (s *Schedule) SetOn(start, end any) error {
	return s.SetState(true, start, end)
}

// SetOff is SetOn's complement.
func (s *Schedule) SetOff(start, end any) error {
	return s.SetState(false, start, end)
}

// SetState sets every day's bits between start and end (wrapping past
// midnight if end is earlier than start) to state, and marks the schedule
// dirty. See ScheduleDay.SetState for a single-weekday equivalent.
func (s *Schedule) SetState(state bool, start, end any) error {
	startSlot, count, err := parseWindow(start, end)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for day := 0; day < len(s.entry.Schedule); day++ {
		for k := 0; k < count; k++ {
			slot := (startSlot + k) % slotsPerDay
			s.entry.Schedule[day][slot] = state
		}
	}
	s.dirty = true
	return nil
}

// Day returns a handle onto a single weekday of the schedule, letting it be
// edited in isolation while the controller's last-known state for every
// other day is preserved.
func (s *Schedule) Day(weekday structures.Weekday) *ScheduleDay {
	return &ScheduleDay{schedule: s, weekday: weekday}
}

// Commit resends every schedule the owning device holds, clearing dirty
// flags on success.
func (s *Schedule) Commit(ctx context.Context) error {
	return s.parent.Commit(ctx)
}

// ScheduleDay addresses one weekday row of a Schedule's grid. It shares the
// owning Schedule's lock and dirty flag; Commit still resends the entire
// weekly grid, since the protocol has no way to push a single day's diff.
type ScheduleDay struct {
	schedule *Schedule
	weekday  structures.Weekday
}

// SetOn turns this weekday on for the half-hour slots between start and
// end, per the same rules as Schedule.SetOn, leaving every other day
// untouched.
func (d *ScheduleDay) SetOn(start, end any) error {
	return d.SetState(true, start, end)
}

// SetOff is SetOn's complement.
func (d *ScheduleDay) SetOff(start, end any) error {
	return d.SetState(false, start, end)
}

// SetState sets this weekday's bits between start and end (wrapping past
// midnight if end is earlier than start) to state, and marks the owning
// schedule dirty. Every other weekday is left as last reported.
func (d *ScheduleDay) SetState(state bool, start, end any) error {
	startSlot, count, err := parseWindow(start, end)
	if err != nil {
		return err
	}

	s := d.schedule
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := 0; k < count; k++ {
		slot := (startSlot + k) % slotsPerDay
		s.entry.Schedule[d.weekday][slot] = state
	}
	s.dirty = true
	return nil
}

// parseWindow resolves a start/end pair to a starting slot and a slot
// count, wrapping past midnight when end is not after start.
func parseWindow(start, end any) (startSlot, count int, err error) {
	startSlot, err = toSlot(start)
	if err != nil {
		return 0, 0, fmt.Errorf("device: schedule start: %w", err)
	}
	endSlot, err := toSlot(end)
	if err != nil {
		return 0, 0, fmt.Errorf("device: schedule end: %w", err)
	}

	count = endSlot - startSlot
	if count <= 0 {
		count += slotsPerDay
	}
	return startSlot, count, nil
}

// toSlot converts an "HH:MM" string or an int minute count to a half-hour
// slot index. nil defaults to slot 0 (00:00).
func toSlot(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return (t / 30) % slotsPerDay, nil
	case string:
		return parseHHMM(t)
	default:
		return 0, fmt.Errorf("unsupported time value %v (%T)", v, v)
	}
}

func parseHHMM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return ((hour*60 + minute) / 30) % slotsPerDay, nil
}

// Schedules is the per-device catalogue of named Schedules, and the only
// thing that knows how to resend all of them together.
type Schedules struct {
	mu     sync.RWMutex
	byName map[string]*Schedule
	sender ScheduleSender
}

func newSchedules(sender ScheduleSender) *Schedules {
	return &Schedules{byName: make(map[string]*Schedule), sender: sender}
}

// Get returns the named schedule, if the device has reported it.
func (s *Schedules) Get(name string) (*Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.byName[name]
	return sched, ok
}

// Update applies a freshly decoded ScheduleEntry, creating the Schedule on
// first sight.
func (s *Schedules) Update(entry structures.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sched, ok := s.byName[entry.Name]; ok {
		sched.update(entry)
		return
	}
	s.byName[entry.Name] = newSchedule(entry, s)
}

// Commit sends a SetSchedule request for every schedule currently held,
// clearing each one's dirty flag once all have been acknowledged.
func (s *Schedules) Commit(ctx context.Context) error {
	s.mu.RLock()
	list := make([]*Schedule, 0, len(s.byName))
	for _, sched := range s.byName {
		list = append(list, sched)
	}
	s.mu.RUnlock()

	for _, sched := range list {
		sched.mu.RLock()
		entry := sched.entry
		sched.mu.RUnlock()

		if err := s.sender.SendSetSchedule(ctx, entry.Name, entry.Switch, entry.Param, entry.Schedule); err != nil {
			return err
		}
	}

	for _, sched := range list {
		sched.mu.Lock()
		sched.dirty = false
		sched.mu.Unlock()
	}
	return nil
}
