package reservations

import "fmt"

// SagaState tracks where a reservation commit is in its multi-step flow.
// The flow has no automatic compensation: a failure in any state moves to
// Aborted and whatever was written stays written. Modeling the states
// explicitly keeps the door open for adding compensation or a storage
// transaction later without restructuring the service.
type SagaState int

const (
	StateChecking SagaState = iota
	StatePaymentPending
	StateCommitting
	StateDone
	StateAborted
)

func (s SagaState) String() string {
	switch s {
	case StateChecking:
		return "CHECKING"
	case StatePaymentPending:
		return "PAYMENT_PENDING"
	case StateCommitting:
		return "COMMITTING"
	case StateDone:
		return "DONE"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// sagaTransitions lists the allowed forward edges. Aborted is reachable
// from every non-terminal state.
var sagaTransitions = map[SagaState]SagaState{
	StateChecking:       StatePaymentPending,
	StatePaymentPending: StateCommitting,
	StateCommitting:     StateDone,
}

// Saga is the state machine for one reservation commit.
type Saga struct {
	state SagaState
}

func NewSaga() *Saga {
	return &Saga{state: StateChecking}
}

func (s *Saga) State() SagaState {
	return s.state
}

// Advance moves to the next state in the flow.
func (s *Saga) Advance() error {
	next, ok := sagaTransitions[s.state]
	if !ok {
		return fmt.Errorf("saga cannot advance from terminal state %s", s.state)
	}
	s.state = next
	return nil
}

// Abort moves to the terminal Aborted state from any non-terminal state.
func (s *Saga) Abort() {
	if s.state == StateDone || s.state == StateAborted {
		return
	}
	s.state = StateAborted
}

func (s *Saga) Terminated() bool {
	return s.state == StateDone || s.state == StateAborted
}
