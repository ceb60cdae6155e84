package device

import "context"

// PowerSender issues the ecomax_control request that switches the
// controller on or off. It is a narrower, optional capability of a
// ParameterSender: the control frame is its own request/response pair,
// outside the regular Set<Kind>Parameter table, so this is asserted for
// separately rather than folded into ParameterSender.
type PowerSender interface {
	SendEcomaxControl(ctx context.Context, turnOn bool) (bool, error)
}

// ecomaxControlCell is the data key TurnOn/TurnOff optimistically update.
// The controller never reports this value on its own; it only reflects
// the last request this library made.
const ecomaxControlCell = "ecomax_control"

// TurnOn requests the controller power on and blocks for its
// acknowledgement. The returned bool is true only on an explicit positive
// acknowledgement; a negative acknowledgement or a timeout both report
// false with a nil error.
func (d *EcoMAX) TurnOn(ctx context.Context) (bool, error) {
	return d.setEcomaxControl(ctx, true)
}

// TurnOff requests the controller power off and blocks for its
// acknowledgement.
func (d *EcoMAX) TurnOff(ctx context.Context) (bool, error) {
	return d.setEcomaxControl(ctx, false)
}

// TurnOnNowait dispatches a power-on request without waiting for its
// resolution.
func (d *EcoMAX) TurnOnNowait() {
	go func() { _, _ = d.TurnOn(context.Background()) }()
}

// TurnOffNowait dispatches a power-off request without waiting for its
// resolution.
func (d *EcoMAX) TurnOffNowait() {
	go func() { _, _ = d.TurnOff(context.Background()) }()
}

// IsOn reports the power state last confirmed by TurnOn/TurnOff. It
// defaults to false until one of those has succeeded at least once, since
// the controller never reports this value spontaneously.
func (d *EcoMAX) IsOn() bool {
	v, _ := d.GetNowait(ecomaxControlCell, false).(bool)
	return v
}

func (d *EcoMAX) setEcomaxControl(ctx context.Context, turnOn bool) (bool, error) {
	ps, ok := d.sender.(PowerSender)
	if !ok {
		return false, ErrUnsupportedOperation
	}

	confirmed, err := ps.SendEcomaxControl(ctx, turnOn)
	if err != nil {
		return false, err
	}
	if confirmed {
		d.SetData(ecomaxControlCell, turnOn)
	}
	return confirmed, nil
}
