package driver

// State is a finer-grained protocol connection state, distinct from
// connection.State: it distinguishes the handshake window and steady-state
// operation, both of which connection.Manager would otherwise lump
// together as "connected".
type State uint8

const (
	StateDisconnected State = iota
	StateConnecting
	StateHandshake
	StateReady
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateHandshake:
		return "HANDSHAKE"
	case StateReady:
		return "READY"
	case StateClosing:
		return "CLOSING"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
