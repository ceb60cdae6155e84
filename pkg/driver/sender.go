package driver

import (
	"context"

	"github.com/pyplumio/pyplumio-go/pkg/device"
	"github.com/pyplumio/pyplumio-go/pkg/frame"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// SendSetParameter implements device.ParameterSender by writing the
// appropriate SetXParameter request and awaiting its acknowledgement.
func (d *Driver) SendSetParameter(ctx context.Context, kind device.Kind, index uint8, name string, value uint16) (bool, error) {
	w := wire.NewWriteCursor()

	var reqType, respType frame.Type
	switch kind {
	case device.KindEcomax:
		if !structures.EncodeSetEcomaxParameter(w, name, value) {
			return false, ErrUnknownParameter
		}
		reqType, respType = frame.SetEcomaxParameter, frame.SetEcomaxParameterResponse
	case device.KindMixer:
		if !structures.EncodeSetMixerParameter(w, index, name, value) {
			return false, ErrUnknownParameter
		}
		reqType, respType = frame.SetMixerParameter, frame.SetMixerParameterResponse
	case device.KindThermostat:
		if !structures.EncodeSetThermostatParameter(w, index, name, value) {
			return false, ErrUnknownParameter
		}
		reqType, respType = frame.SetThermostatParameter, frame.SetThermostatParameterResponse
	default:
		return false, ErrUnknownParameter
	}

	e := frame.Envelope{
		Recipient: frame.EcoMAX,
		Sender:    frame.Library,
		Type:      reqType,
		Payload:   w.Bytes(),
	}

	resp, err := d.sendRequest(ctx, e, correlationKey{responseType: respType})
	if err != nil {
		if err == ErrRequestTimeout {
			// A timed-out parameter write is indistinguishable from an
			// explicit negative acknowledgement to the caller: neither
			// confirms the value, and neither is a transport failure.
			return false, nil
		}
		return false, err
	}
	return d.ack(resp.Payload), nil
}

// SendEcomaxControl implements device.PowerSender by writing the
// single-byte EcomaxControl request (0x3B) and awaiting its
// acknowledgement. Unlike a regular parameter write, this frame type has
// no associated min/max table; it is a standalone on/off switch.
func (d *Driver) SendEcomaxControl(ctx context.Context, turnOn bool) (bool, error) {
	w := wire.NewWriteCursor()
	value := uint8(0)
	if turnOn {
		value = 1
	}
	w.WriteU8(value)

	e := frame.Envelope{
		Recipient: frame.EcoMAX,
		Sender:    frame.Library,
		Type:      frame.EcomaxControl,
		Payload:   w.Bytes(),
	}

	resp, err := d.sendRequest(ctx, e, correlationKey{responseType: frame.EcomaxControlResponse})
	if err != nil {
		if err == ErrRequestTimeout {
			return false, nil
		}
		return false, err
	}
	return d.ack(resp.Payload), nil
}

// SendSetSchedule implements device.ScheduleSender.
func (d *Driver) SendSetSchedule(ctx context.Context, name string, switchVal, paramVal structures.ParameterValues, grid structures.WeeklySchedule) error {
	w := wire.NewWriteCursor()
	if !structures.EncodeSetSchedule(w, name, switchVal, paramVal, grid) {
		return ErrUnknownParameter
	}

	e := frame.Envelope{
		Recipient: frame.EcoMAX,
		Sender:    frame.Library,
		Type:      frame.SetSchedule,
		Payload:   w.Bytes(),
	}

	resp, err := d.sendRequest(ctx, e, correlationKey{responseType: frame.SetScheduleResponse})
	if err != nil {
		return err
	}
	if !d.ack(resp.Payload) {
		return ErrNegativeAck
	}
	return nil
}

// ackConfirmed reads the single-byte positive/negative acknowledgement
// carried by every SetX...Response payload.
func ackConfirmed(payload []byte) bool {
	return len(payload) > 0 && payload[0] != 0
}

// ack reads the acknowledgement byte and records a negative ack in the
// driver's statistics before returning it.
func (d *Driver) ack(payload []byte) bool {
	confirmed := ackConfirmed(payload)
	if !confirmed {
		d.stats.negativeAcks.Add(1)
	}
	return confirmed
}
