package session

import (
	"fmt"
	"sync"
)

// State is a session lifecycle state.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

type event string

const (
	eventSubmit event = "submit"
	eventAccept event = "accept"
	eventFail   event = "fail"
	eventReset  event = "reset"
)

// lifecycle is a table-driven state machine: transitions[from][event] = to.
type lifecycle struct {
	mu          sync.RWMutex
	current     State
	transitions map[State]map[event]State
}

func newLifecycle() *lifecycle {
	lc := &lifecycle{
		current:     StateEditing,
		transitions: make(map[State]map[event]State),
	}
	lc.add(StateEditing, eventSubmit, StateSubmitting)
	lc.add(StateSubmitting, eventAccept, StateSubmitted)
	lc.add(StateSubmitting, eventFail, StateEditing)
	lc.add(StateSubmitted, eventReset, StateEditing)
	lc.add(StateEditing, eventReset, StateEditing)
	return lc
}

func (lc *lifecycle) add(from State, ev event, to State) {
	if _, ok := lc.transitions[from]; !ok {
		lc.transitions[from] = make(map[event]State)
	}
	lc.transitions[from][ev] = to
}

func (lc *lifecycle) Current() State {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return lc.current
}

// fire moves to the target state of ev, returning ErrInvalidState when the
// current state has no transition for it.
func (lc *lifecycle) fire(ev event) (State, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	to, ok := lc.transitions[lc.current][ev]
	if !ok {
		return lc.current, fmt.Errorf("%w: no transition from %q on %q", ErrInvalidState, lc.current, ev)
	}
	lc.current = to
	return to, nil
}

func (lc *lifecycle) can(ev event) bool {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	_, ok := lc.transitions[lc.current][ev]
	return ok
}
