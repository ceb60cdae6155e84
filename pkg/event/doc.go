// Package event implements the per-device value bus: an ordered subscriber
// registry keyed by cell name, with a composable filter chain in front of
// each subscriber.
//
// The ecoMAX device publishes its data cells (sensor readings and other
// decoded values) and its parameters (under "parameter:" plus the
// parameter name) through the same bus by name; schedules and mixer or
// thermostat parameters are not published on it. Subscribers register with an optional
// chain of Filter functions; a filter can transform a value, suppress it
// entirely, or both. Delivery to a name's subscribers happens in
// registration order, on the goroutine that calls Publish, so a slow
// subscriber blocks the rest — callers wanting a background delivery
// deadline should do the enqueueing themselves inside their subscriber
// function.
//
// Unlike a full pub/sub broker, there are no minimum/maximum intervals or
// bounce-back suppression tracked centrally: that behavior is expressed
// as ordinary Filter values (Throttle, Debounce, OnChange) a caller
// attaches when it subscribes, rather than as manager-wide configuration.
package event
