package device

import (
	"sync"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// Mixer is a mixer sub-device, identified by the index the controller
// reports it at. Created lazily by EcoMAX on first sight of a mixer
// parameter or sensor reading.
type Mixer struct {
	mu         sync.RWMutex
	index      uint8
	parameters map[string]*Parameter
	sender     ParameterSender
}

func newMixer(index uint8, sender ParameterSender) *Mixer {
	return &Mixer{
		index:      index,
		parameters: make(map[string]*Parameter),
		sender:     sender,
	}
}

// Index returns the mixer's controller-assigned index.
func (m *Mixer) Index() uint8 {
	return m.index
}

// Parameter returns the named parameter, if reported.
func (m *Mixer) Parameter(name string) (*Parameter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.parameters[name]
	return p, ok
}

// Parameters returns every parameter the mixer has reported.
func (m *Mixer) Parameters() map[string]*Parameter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*Parameter, len(m.parameters))
	for name, p := range m.parameters {
		out[name] = p
	}
	return out
}

// UpdateParameter applies a freshly decoded value/min/max triple for a
// mixer-level parameter, creating it on first sight.
func (m *Mixer) UpdateParameter(name string, values structures.ParameterValues) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parameters[name]; ok {
		p.update(values)
		return
	}
	desc, _ := structures.MixerParameterDescriptor(name)
	m.parameters[name] = newParameter(name, KindMixer, m.index, values, desc, m.sender)
}
