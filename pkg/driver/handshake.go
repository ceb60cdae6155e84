package driver

import (
	"context"

	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// handleProgramVersionRequest replies to the controller's opening
// handshake request with this library's own version.
func (d *Driver) handleProgramVersionRequest(ctx context.Context) {
	w := wire.NewWriteCursor()
	structures.EncodeProgramVersion(w, structures.ProgramVersion{
		Version:     libraryVersion,
		DeviceIndex: 0,
		Processor:   0,
	})

	d.enqueue(ctx, frame.Envelope{
		Recipient: frame.EcoMAX,
		Sender:    frame.Library,
		Type:      frame.ProgramVersionResponse,
		Payload:   w.Bytes(),
	})
}

// handleCheckDeviceRequest replies with the configured NetworkInfo,
// advertising this library as an available network peer.
func (d *Driver) handleCheckDeviceRequest(ctx context.Context) {
	w := wire.NewWriteCursor()
	structures.EncodeNetworkInfo(w, d.networkInfo)

	d.enqueue(ctx, frame.Envelope{
		Recipient: frame.EcoMAX,
		Sender:    frame.Library,
		Type:      frame.CheckDeviceResponse,
		Payload:   w.Bytes(),
	})
}
