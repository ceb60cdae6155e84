package device

import (
	"context"
	"sync"
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/event"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// EcoMAX is the in-memory model of a single ecoMAX controller: its sensor
// and regulator data cells, its editable Parameters, its weekly Schedules,
// and its lazily-created Mixer/Thermostat sub-devices.
type EcoMAX struct {
	mu sync.RWMutex

	data        map[string]any
	parameters  map[string]*Parameter
	schedules   *Schedules
	mixers      map[uint8]*Mixer
	thermostats map[uint8]*Thermostat

	versionsSeen      structures.FrameVersions
	versionsRequested structures.FrameVersions

	bus    *event.Bus
	sender ParameterSender
}

// New creates an EcoMAX model that issues writes through sender and
// scheduleSender.
func New(sender ParameterSender, scheduleSender ScheduleSender) *EcoMAX {
	return &EcoMAX{
		data:              make(map[string]any),
		parameters:        make(map[string]*Parameter),
		schedules:         newSchedules(scheduleSender),
		mixers:            make(map[uint8]*Mixer),
		thermostats:       make(map[uint8]*Thermostat),
		versionsSeen:      make(structures.FrameVersions),
		versionsRequested: make(structures.FrameVersions),
		bus:               event.NewBus(),
		sender:            sender,
	}
}

// SetData assigns value to the named cell, overwriting any previous value,
// and publishes it on the event bus.
func (d *EcoMAX) SetData(name string, value any) {
	d.mu.Lock()
	d.data[name] = value
	d.mu.Unlock()
	d.bus.Publish(name, value)
}

// SetDataBulk assigns every entry of values as though by repeated SetData
// calls. Used by the reader task after decoding a SensorData/RegulatorData
// payload, which produces many cells at once.
func (d *EcoMAX) SetDataBulk(values map[string]any) {
	for name, value := range values {
		d.SetData(name, value)
	}
}

// GetNowait returns the current value of name, or def if no value has
// ever been assigned.
func (d *EcoMAX) GetNowait(name string, def any) any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v, ok := d.data[name]; ok {
		return v
	}
	return def
}

// Get returns the current value of name if present, otherwise blocks for
// the next assignment to name or until timeout elapses.
func (d *EcoMAX) Get(ctx context.Context, name string, timeout time.Duration) (any, error) {
	d.mu.RLock()
	v, ok := d.data[name]
	d.mu.RUnlock()
	if ok {
		return v, nil
	}
	return d.awaitNext(ctx, name, timeout)
}

// WaitFor blocks until name has been assigned a value at least once, or
// until timeout elapses.
func (d *EcoMAX) WaitFor(ctx context.Context, name string, timeout time.Duration) error {
	d.mu.RLock()
	_, ok := d.data[name]
	d.mu.RUnlock()
	if ok {
		return nil
	}
	_, err := d.awaitNext(ctx, name, timeout)
	return err
}

func (d *EcoMAX) awaitNext(ctx context.Context, name string, timeout time.Duration) (any, error) {
	ch := make(chan any, 1)
	id := d.bus.SubscribeOnce(name, func(v any) {
		select {
		case ch <- v:
		default:
		}
	})
	defer d.bus.Unsubscribe(name, id)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case v := <-ch:
		return v, nil
	case <-timer.C:
		return nil, ErrTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Subscribe registers fn to be called with every future value assigned to
// name, through filters in order. See event.Bus.Subscribe.
func (d *EcoMAX) Subscribe(name string, fn event.Subscriber, filters ...event.Filter) uint64 {
	return d.bus.Subscribe(name, fn, filters...)
}

// SubscribeOnce is Subscribe, auto-unsubscribing after the first delivery.
func (d *EcoMAX) SubscribeOnce(name string, fn event.Subscriber, filters ...event.Filter) uint64 {
	return d.bus.SubscribeOnce(name, fn, filters...)
}

// Unsubscribe removes a subscription previously returned by Subscribe or
// SubscribeOnce.
func (d *EcoMAX) Unsubscribe(name string, id uint64) bool {
	return d.bus.Unsubscribe(name, id)
}

// Parameter returns the named ecomax-level parameter, if reported.
func (d *EcoMAX) Parameter(name string) (*Parameter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.parameters[name]
	return p, ok
}

// Parameters returns every ecomax-level parameter reported so far.
func (d *EcoMAX) Parameters() map[string]*Parameter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]*Parameter, len(d.parameters))
	for name, p := range d.parameters {
		out[name] = p
	}
	return out
}

// UpdateParameter applies a freshly decoded value/min/max triple for an
// ecomax-level parameter, creating it on first sight.
func (d *EcoMAX) UpdateParameter(name string, values structures.ParameterValues) {
	d.mu.Lock()
	p, ok := d.parameters[name]
	if !ok {
		desc, _ := structures.EcomaxParameterDescriptor(name)
		p = newParameter(name, KindEcomax, 0, values, desc, d.sender)
		d.parameters[name] = p
	} else {
		p.update(values)
	}
	d.mu.Unlock()
	d.bus.Publish("parameter:"+name, p.Value())
}

// Mixer returns the mixer at index, creating it on first access.
func (d *EcoMAX) Mixer(index uint8) *Mixer {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.mixers[index]
	if !ok {
		m = newMixer(index, d.sender)
		d.mixers[index] = m
	}
	return m
}

// Mixers returns every mixer sub-device created so far.
func (d *EcoMAX) Mixers() map[uint8]*Mixer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[uint8]*Mixer, len(d.mixers))
	for idx, m := range d.mixers {
		out[idx] = m
	}
	return out
}

// Thermostat returns the thermostat at index, creating it on first access.
func (d *EcoMAX) Thermostat(index uint8) *Thermostat {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.thermostats[index]
	if !ok {
		t = newThermostat(index, d.sender)
		d.thermostats[index] = t
	}
	return t
}

// Thermostats returns every thermostat sub-device created so far.
func (d *EcoMAX) Thermostats() map[uint8]*Thermostat {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[uint8]*Thermostat, len(d.thermostats))
	for idx, t := range d.thermostats {
		out[idx] = t
	}
	return out
}

// Schedule returns the named schedule, if reported.
func (d *EcoMAX) Schedule(name string) (*Schedule, bool) {
	return d.schedules.Get(name)
}

// UpdateSchedule applies a freshly decoded ScheduleEntry, creating the
// Schedule on first sight.
func (d *EcoMAX) UpdateSchedule(entry structures.ScheduleEntry) {
	d.schedules.Update(entry)
}

// CommitSchedules resends every schedule the device holds. Equivalent to
// calling Commit on any one Schedule, since the protocol always pushes the
// full set.
func (d *EcoMAX) CommitSchedules(ctx context.Context) error {
	return d.schedules.Commit(ctx)
}

// VersionsSeen returns the most recently embedded FrameVersions table, the
// controller's own record of what has changed.
func (d *EcoMAX) VersionsSeen() structures.FrameVersions {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneVersions(d.versionsSeen)
}

// SetVersionsSeen replaces the most recently embedded FrameVersions table.
func (d *EcoMAX) SetVersionsSeen(v structures.FrameVersions) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.versionsSeen = v
}

// VersionsRequested returns the table of versions last acted on by a
// re-fetch request.
func (d *EcoMAX) VersionsRequested() structures.FrameVersions {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneVersions(d.versionsRequested)
}

// MarkRequested records that frameType has been re-fetched as of version.
func (d *EcoMAX) MarkRequested(frameType uint16, version uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.versionsRequested[frameType] = version
}

func cloneVersions(v structures.FrameVersions) structures.FrameVersions {
	out := make(structures.FrameVersions, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
