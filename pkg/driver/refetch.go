package driver

import (
	"context"

	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// refetchOrder is the priority in which diverging frame versions are
// re-requested: schema before the payloads that depend on it, identity
// before everything else.
var refetchOrder = []frame.Type{
	frame.UIDReq,
	frame.RegulatorDataSchemaReq,
	frame.EcomaxParametersReq,
	frame.MixerParametersReq,
	frame.ThermostatParametersReq,
	frame.SchedulesReq,
	frame.AlertsReq,
}

// reconcileVersions compares the freshly observed frame-versions table
// against what the driver has already requested and enqueues a re-fetch,
// in priority order, for every type whose version diverged. The affected
// type is marked requested immediately, before any further update
// carrying the old data is treated as authoritative.
func (d *Driver) reconcileVersions(ctx context.Context, seen structures.FrameVersions) {
	diverging := seen.Diverging(d.Device.VersionsRequested())
	if len(diverging) == 0 {
		return
	}

	divergingSet := make(map[uint16]bool, len(diverging))
	for _, code := range diverging {
		divergingSet[code] = true
	}

	for _, reqType := range refetchOrder {
		code := uint16(reqType)
		if !divergingSet[code] {
			continue
		}
		d.Device.MarkRequested(code, seen[code])
		d.enqueue(ctx, frame.Envelope{
			Recipient: frame.EcoMAX,
			Sender:    frame.Library,
			Type:      reqType,
		})
	}
}
