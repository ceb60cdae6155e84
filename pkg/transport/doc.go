// Package transport provides the byte-stream abstraction the protocol
// driver runs over.
//
// ecoNET itself has no transport-layer framing of its own: the frame codec
// in pkg/frame reads and writes raw bytes directly against whatever stream
// is underneath, whether that is a serial port or a raw TCP socket. This
// package supplies the two concrete stream implementations the driver
// dials out to, plus the Transport interface both satisfy so the driver
// never has to know which one it is talking to.
//
// # Transports
//
//	TCPTransport    dials a net.Conn over plain TCP (no TLS: the
//	                controller-side protocol is unencrypted).
//	SerialTransport opens a local serial port via go.bug.st/serial.
package transport
