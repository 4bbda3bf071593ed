package app

import "fmt"

// State is a step of the startup sequence.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateDBConnecting  State = "DB_CONNECTING"
	StateDBConnected   State = "DB_CONNECTED"
	StateListening     State = "LISTENING"
	StateFailed        State = "FAILED"
	StateStopped       State = "STOPPED"
)

// transitions lists the allowed successors of each state. FAILED is only
// reachable from DB_CONNECTING.
var transitions = map[State][]State{
	StateUninitialized: {StateDBConnecting},
	StateDBConnecting:  {StateDBConnected, StateFailed},
	StateDBConnected:   {StateListening},
	StateListening:     {StateStopped},
}

func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (a *App) setState(to State) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !canTransition(a.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.state, to)
	}

	a.logger.Debug().Str("from", string(a.state)).Str("to", string(to)).Msg("app state changed")
	a.state = to

	if to == StateListening {
		close(a.listening)
	}
	return nil
}

// State returns the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
