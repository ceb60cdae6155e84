// Package device holds the in-memory model of an ecoMAX controller and its
// sub-devices: a name-keyed cell store for sensor/regulator readings, a
// name-keyed catalogue of editable Parameters, a name-keyed catalogue of
// weekly Schedules, and lazily-created Mixer/Thermostat sub-devices.
//
// Nothing in this package talks to a transport directly. Reads and writes
// that need to leave the process go through the narrow ParameterSender and
// ScheduleSender interfaces, which the driver package implements by
// enqueueing a request on its writer queue and waiting for the matching
// response. This keeps the device model usable (and testable) without a
// live connection: callers can construct an EcoMAX with a fake sender and
// drive it exactly as the driver would.
package device
