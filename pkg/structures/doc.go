// Package structures implements the payload sub-codecs carried inside
// ecoNET frame bodies: network configuration, product/version identity,
// parameter catalogues for the ecoMAX, its mixers and thermostats, weekly
// schedules, alerts, the schema-driven regulator data block, and the
// always-on sensor data block.
//
// Every sub-codec here is pure: it reads from or writes to a
// *wire.Cursor and does no I/O of its own. Frame dispatch in pkg/driver
// picks the right decoder for an incoming frame.Envelope.Payload and the
// right encoder for an outbound one.
package structures
