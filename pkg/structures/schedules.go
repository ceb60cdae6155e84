package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// ScheduleNames catalogues the well-known schedule slots a SchedulesResponse
// enumerates, in the order the controller reports them.
var ScheduleNames = []string{
	"heating",
	"water_heater",
	"circulation_pump",
	"boiler_work",
	"boiler_clean",
	"heat_exchanger_clean",
	"mixer_1", "mixer_2", "mixer_3", "mixer_4", "mixer_5",
	"thermostat_1", "thermostat_2", "thermostat_3",
}

const (
	daysPerWeek   = 7
	slotsPerDay   = 48
	scheduleBits  = daysPerWeek * slotsPerDay
	scheduleBytes = scheduleBits / 8
)

// WeeklySchedule is a 7x48 half-hour on/off bitfield, one row per weekday
// starting with Sunday, matching the controller's own day ordering.
type WeeklySchedule [daysPerWeek][slotsPerDay]bool

// Weekday indexes a single row of a WeeklySchedule. Sunday is zero to match
// the controller's own day ordering.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// ScheduleEntry is one named schedule as reported by a SchedulesResponse:
// its on/off bitfield plus the switch flag and numeric parameter that ride
// alongside it on the wire.
type ScheduleEntry struct {
	Name     string
	Schedule WeeklySchedule
	Switch   ParameterValues
	Param    ParameterValues
}

// DecodeSchedules parses a SchedulesResponse payload: a start index and a
// count of schedule entries, each preceded by a switch/parameter triple
// pair and followed by its packed bitfield.
func DecodeSchedules(r *wire.Cursor) ([]ScheduleEntry, error) {
	start, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	entries := make([]ScheduleEntry, 0, count)
	for i := uint8(0); i < count; i++ {
		index := start + i
		switchVal, err := readTriple(r, 1)
		if err != nil {
			return nil, err
		}
		paramVal, err := readTriple(r, 1)
		if err != nil {
			return nil, err
		}

		sched, err := decodeWeeklySchedule(r)
		if err != nil {
			return nil, err
		}

		name := scheduleNameForIndex(index)
		entries = append(entries, ScheduleEntry{
			Name:     name,
			Schedule: sched,
			Switch:   switchVal,
			Param:    paramVal,
		})
	}

	return entries, nil
}

func scheduleNameForIndex(index uint8) string {
	if int(index) < len(ScheduleNames) {
		return ScheduleNames[index]
	}
	return "schedule_unknown"
}

func decodeWeeklySchedule(r *wire.Cursor) (WeeklySchedule, error) {
	var sched WeeklySchedule
	bits := wire.NewBitReader(r)
	for day := 0; day < daysPerWeek; day++ {
		for slot := 0; slot < slotsPerDay; slot++ {
			bit, err := bits.ReadBit()
			if err != nil {
				return sched, err
			}
			sched[day][slot] = bit
		}
	}
	return sched, nil
}

func encodeWeeklySchedule(w *wire.Cursor, sched WeeklySchedule) {
	bits := wire.NewBitWriter(w)
	for day := 0; day < daysPerWeek; day++ {
		for slot := 0; slot < slotsPerDay; slot++ {
			bits.WriteBit(sched[day][slot])
		}
	}
	bits.Flush()
}

// EncodeSetSchedule serialises a SetSchedule request body for one named
// schedule. The protocol requires the full weekly bitfield on every
// write, even for days that did not change.
func EncodeSetSchedule(w *wire.Cursor, name string, switchVal, paramVal ParameterValues, sched WeeklySchedule) bool {
	index := -1
	for i, n := range ScheduleNames {
		if n == name {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	w.WriteU8(uint8(index))
	writeTriple(w, 1, switchVal)
	writeTriple(w, 1, paramVal)
	encodeWeeklySchedule(w, sched)
	return true
}
