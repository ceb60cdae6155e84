// Package driver runs the ecoNET protocol state machine over a
// transport.Transport: it drives the handshake, owns the single reader and
// single writer goroutines, correlates outbound requests with their
// responses, feeds decoded payloads into a device.EcoMAX model, and
// re-fetches frame types whose embedded version counter has diverged from
// what was last requested.
package driver
