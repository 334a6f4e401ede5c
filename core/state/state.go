// Package state defines the view state machine of the main window.
package state

import "fmt"

// ViewState is what the main window is currently showing.
type ViewState int

const (
	// StateIdle shows the placeholder images; nothing was selected yet.
	StateIdle ViewState = iota
	// StateImageSelected shows a chosen image whose verdict is not displayed yet.
	StateImageSelected
	// StateShowingResult shows a chosen image and its verdict.
	StateShowingResult
)

// String returns the string representation of the state.
func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateImageSelected:
		return "ImageSelected"
	case StateShowingResult:
		return "ShowingResult"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// A cancelled selection is not a transition.
var validTransitions = map[ViewState][]ViewState{
	StateIdle:          {StateImageSelected},
	StateImageSelected: {StateShowingResult},
	StateShowingResult: {StateImageSelected},
}

// CanTransitionTo checks if transitioning from the current state to the target state is valid.
func (s ViewState) CanTransitionTo(target ViewState) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From ViewState
	To   ViewState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// Machine tracks the current view state.
type Machine struct {
	current ViewState
}

// Current returns the current state.
func (m *Machine) Current() ViewState {
	return m.current
}

// Transition moves to target or returns a *TransitionError.
func (m *Machine) Transition(target ViewState) error {
	if !m.current.CanTransitionTo(target) {
		return &TransitionError{From: m.current, To: target}
	}
	m.current = target
	return nil
}
