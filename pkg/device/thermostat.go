package device

import (
	"sync"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// Thermostat is a thermostat sub-device, identified by the index the
// controller reports it at. Created lazily by EcoMAX on first sight of a
// thermostat parameter or sensor reading.
type Thermostat struct {
	mu         sync.RWMutex
	index      uint8
	parameters map[string]*Parameter
	sender     ParameterSender
}

func newThermostat(index uint8, sender ParameterSender) *Thermostat {
	return &Thermostat{
		index:      index,
		parameters: make(map[string]*Parameter),
		sender:     sender,
	}
}

// Index returns the thermostat's controller-assigned index.
func (t *Thermostat) Index() uint8 {
	return t.index
}

// Parameter returns the named parameter, if reported.
func (t *Thermostat) Parameter(name string) (*Parameter, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.parameters[name]
	return p, ok
}

// Parameters returns every parameter the thermostat has reported.
func (t *Thermostat) Parameters() map[string]*Parameter {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]*Parameter, len(t.parameters))
	for name, p := range t.parameters {
		out[name] = p
	}
	return out
}

// UpdateParameter applies a freshly decoded value/min/max triple for a
// thermostat-level parameter, creating it on first sight.
func (t *Thermostat) UpdateParameter(name string, values structures.ParameterValues) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.parameters[name]; ok {
		p.update(values)
		return
	}
	desc, _ := structures.ThermostatParameterDescriptor(name)
	t.parameters[name] = newParameter(name, KindThermostat, t.index, values, desc, t.sender)
}
