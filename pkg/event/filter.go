package event

import (
	"fmt"
	"reflect"
	"time"
)

// Filter inspects or transforms a value on its way to a subscriber. It
// returns the (possibly rewritten) value and whether delivery should
// continue; returning false drops the value for this subscriber only.
type Filter func(value any) (any, bool)

// Custom wraps predicate as a Filter: the value passes through unchanged
// whenever predicate returns true.
func Custom(predicate func(value any) bool) Filter {
	return func(value any) (any, bool) {
		return value, predicate(value)
	}
}

// OnChange passes a value through only when it differs, by value equality,
// from the last value that passed. The first value always passes.
func OnChange() Filter {
	var last any
	seen := false
	return func(value any) (any, bool) {
		if seen && valuesEqual(last, value) {
			return value, false
		}
		last = value
		seen = true
		return value, true
	}
}

// Throttle passes the first call in a window, then suppresses further
// calls until d has elapsed since the last one that passed.
func Throttle(d time.Duration) Filter {
	var lastEmit time.Time
	return func(value any) (any, bool) {
		now := time.Now()
		if !lastEmit.IsZero() && now.Sub(lastEmit) < d {
			return value, false
		}
		lastEmit = now
		return value, true
	}
}

// Debounce passes a value only once the same value (by value equality) has
// been presented minCalls consecutive times; a differing value resets the
// count. Once the threshold is reached, every further call with that same
// value also passes, since it is still the stable value.
func Debounce(minCalls int) Filter {
	if minCalls < 1 {
		minCalls = 1
	}
	var last any
	seen := false
	count := 0
	return func(value any) (any, bool) {
		if seen && valuesEqual(last, value) {
			count++
		} else {
			last = value
			seen = true
			count = 1
		}
		return value, count >= minCalls
	}
}

// Delta forwards the difference between the new value and the previous
// one. Numeric values yield a numeric delta; maps yield a per-key delta
// map; slices yield an element-wise difference slice. The first value has
// no predecessor to diff against and is suppressed.
func Delta() Filter {
	var last any
	seen := false
	return func(value any) (any, bool) {
		if !seen {
			last = value
			seen = true
			return value, false
		}
		delta, ok := computeDelta(last, value)
		last = value
		if !ok {
			return value, false
		}
		return delta, true
	}
}

// Aggregate accumulates a running sum of numeric values and forwards the
// sum once every d, resetting the window afterward. Non-numeric values are
// dropped without contributing to the sum.
func Aggregate(d time.Duration) Filter {
	var sum float64
	var windowStart time.Time
	return func(value any) (any, bool) {
		f, ok := toFloat64(value)
		if !ok {
			return value, false
		}
		now := time.Now()
		if windowStart.IsZero() {
			windowStart = now
		}
		sum += f
		if now.Sub(windowStart) >= d {
			result := sum
			sum = 0
			windowStart = time.Time{}
			return result, true
		}
		return value, false
	}
}

func computeDelta(oldV, newV any) (any, bool) {
	if of, ok := toFloat64(oldV); ok {
		if nf, ok2 := toFloat64(newV); ok2 {
			return nf - of, true
		}
	}

	ov := reflect.ValueOf(oldV)
	nv := reflect.ValueOf(newV)
	if !nv.IsValid() {
		return nil, false
	}

	switch nv.Kind() {
	case reflect.Map:
		if ov.Kind() != reflect.Map {
			ov = reflect.ValueOf(map[string]any{})
		}
		return mapDelta(ov, nv), true
	case reflect.Slice, reflect.Array:
		if ov.Kind() != reflect.Slice && ov.Kind() != reflect.Array {
			ov = reflect.ValueOf([]any{})
		}
		return sliceDelta(ov, nv), true
	default:
		return nil, false
	}
}

func mapDelta(ov, nv reflect.Value) map[string]float64 {
	out := make(map[string]float64, nv.Len())
	iter := nv.MapRange()
	for iter.Next() {
		key := iter.Key()
		newVal, ok := toFloat64(iter.Value().Interface())
		if !ok {
			continue
		}
		var oldVal float64
		if item := ov.MapIndex(key); item.IsValid() {
			oldVal, _ = toFloat64(item.Interface())
		}
		out[fmt.Sprint(key.Interface())] = newVal - oldVal
	}
	return out
}

func sliceDelta(ov, nv reflect.Value) []float64 {
	out := make([]float64, nv.Len())
	for i := 0; i < nv.Len(); i++ {
		newVal, _ := toFloat64(nv.Index(i).Interface())
		var oldVal float64
		if i < ov.Len() {
			oldVal, _ = toFloat64(ov.Index(i).Interface())
		}
		out[i] = newVal - oldVal
	}
	return out
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// valuesEqual compares two values for equality. Device cells occasionally
// carry maps or slices (SensorData's Outputs, Temperatures); those are not
// == comparable, so this falls back to reflect.DeepEqual for anything
// whose dynamic type isn't safely comparable.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.TypeOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
