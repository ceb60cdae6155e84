package device

import (
	"context"
	"sync"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// Kind discriminates which SetXParameter request a Parameter's writes
// should be encoded as.
type Kind int

const (
	// KindEcomax identifies a parameter owned by the controller itself.
	KindEcomax Kind = iota

	// KindMixer identifies a parameter owned by a mixer sub-device.
	KindMixer

	// KindThermostat identifies a parameter owned by a thermostat
	// sub-device.
	KindThermostat
)

// ParameterSender issues a Set<Kind>Parameter request and blocks until a
// confirmation, a negative acknowledgement, or a timeout resolves it.
// index is the owning sub-device's index for KindMixer/KindThermostat and
// ignored for KindEcomax.
type ParameterSender interface {
	SendSetParameter(ctx context.Context, kind Kind, index uint8, name string, value uint16) (bool, error)
}

// Parameter is a single editable value with controller-reported bounds.
// Its raw value/min/max are the wire-level integers; desc supplies the
// scale/offset that renders them into a physical value where the
// catalogue names one.
type Parameter struct {
	mu     sync.RWMutex
	name   string
	kind   Kind
	index  uint8
	values structures.ParameterValues
	desc   structures.ParameterDescriptor
	sender ParameterSender
}

func newParameter(name string, kind Kind, index uint8, values structures.ParameterValues, desc structures.ParameterDescriptor, sender ParameterSender) *Parameter {
	return &Parameter{
		name:   name,
		kind:   kind,
		index:  index,
		values: values,
		desc:   desc,
		sender: sender,
	}
}

// Name returns the parameter's name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current value.
func (p *Parameter) Value() uint16 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Value
}

// Min returns the controller-reported minimum.
func (p *Parameter) Min() uint16 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Min
}

// Max returns the controller-reported maximum.
func (p *Parameter) Max() uint16 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Max
}

// RenderedValue returns the current value converted to its physical unit:
// raw*scale + offset, per the parameter's catalogue descriptor. Parameters
// the catalogue does not name a scale/offset for render unchanged.
func (p *Parameter) RenderedValue() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.desc.Rendered(p.values.Value)
}

// RenderedMin is Min rendered through the same scale/offset as RenderedValue.
func (p *Parameter) RenderedMin() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.desc.Rendered(p.values.Min)
}

// RenderedMax is Max rendered through the same scale/offset as RenderedValue.
func (p *Parameter) RenderedMax() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.desc.Rendered(p.values.Max)
}

// update replaces the value/min/max triple, invoked when a fresh
// ParametersResponse is decoded.
func (p *Parameter) update(values structures.ParameterValues) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = values
}

func (p *Parameter) checkRange(value uint16) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if value < p.values.Min || value > p.values.Max {
		return ErrOutOfRange
	}
	return nil
}

// Set validates value against [Min, Max], sends the matching SetXParameter
// request, and blocks for its resolution. It returns true only on an
// explicit confirmation; a negative acknowledgement or a timeout both
// report false with a nil error. A non-nil error indicates the value was
// rejected locally (ErrOutOfRange) or the send itself failed.
func (p *Parameter) Set(ctx context.Context, value uint16) (bool, error) {
	if err := p.checkRange(value); err != nil {
		return false, err
	}

	confirmed, err := p.sender.SendSetParameter(ctx, p.kind, p.index, p.name, value)
	if err != nil {
		return false, err
	}
	if confirmed {
		p.mu.Lock()
		p.values.Value = value
		p.mu.Unlock()
	}
	return confirmed, nil
}

// SetNowait validates value and dispatches the request without waiting for
// its resolution; the eventual confirmation (or lack of one) is discarded.
func (p *Parameter) SetNowait(value uint16) error {
	if err := p.checkRange(value); err != nil {
		return err
	}

	go func() {
		confirmed, err := p.sender.SendSetParameter(context.Background(), p.kind, p.index, p.name, value)
		if err == nil && confirmed {
			p.mu.Lock()
			p.values.Value = value
			p.mu.Unlock()
		}
	}()
	return nil
}

// SetRendered converts rendered to its raw wire representation via the
// parameter's descriptor and otherwise behaves exactly like Set.
func (p *Parameter) SetRendered(ctx context.Context, rendered float64) (bool, error) {
	p.mu.RLock()
	raw := p.desc.Raw(rendered)
	p.mu.RUnlock()
	return p.Set(ctx, raw)
}

// SetRenderedNowait is SetRendered's fire-and-forget counterpart.
func (p *Parameter) SetRenderedNowait(rendered float64) error {
	p.mu.RLock()
	raw := p.desc.Raw(rendered)
	p.mu.RUnlock()
	return p.SetNowait(raw)
}
