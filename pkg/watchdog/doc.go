// Package watchdog implements the idle-timeout timer used to detect a dead
// connection.
//
// ecoNET has no active ping/pong: liveness is inferred from ordinary frame
// traffic. The driver arms a Watchdog for the keep-alive interval once the
// transport is open, before the handshake, and feeds it on every inbound
// frame; if the interval elapses without a feed, the watchdog fires once
// and, if the driver is READY at that moment, the driver treats the
// connection as lost.
package watchdog
