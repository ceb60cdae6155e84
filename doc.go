// Package pyplumio is a client library for the ecoNET serial/TCP wire
// protocol used by Plum-brand heating controllers: ecoMAX pellet boilers
// and their attached mixer/thermostat sub-devices.
//
// OpenTCP and OpenSerial return a Connection bound to a transport; Connect
// starts the handshake and keeps the link alive in the background,
// reconnecting with backoff on failure. Device blocks until the
// controller's model is populated and returns it for reading values,
// editing parameters, and committing schedules.
//
//	conn, err := pyplumio.OpenTCP("192.168.1.50", 8899)
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//
//	if err := conn.Connect(ctx); err != nil {
//		return err
//	}
//
//	ecomax, err := conn.Device(ctx, "ecomax", 30*time.Second)
//	if err != nil {
//		return err
//	}
//	temp, err := ecomax.Get(ctx, "heating_temp", 5*time.Second)
package pyplumio
