package model

import "github.com/m-mizutani/goerr/v2"

// Phase is a state of the per-attempt publish pipeline. Each attempt runs a
// fresh tracker; no phase is re-entered except the ConfirmationPending ->
// Resolved hop after the user approves an overwrite.
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseCredentialChecked   Phase = "credential_checked"
	PhaseResolved            Phase = "resolved"
	PhaseConfirmationPending Phase = "confirmation_pending"
	PhaseSelected            Phase = "selected"
	PhaseExecuted            Phase = "executed"
	PhaseSucceeded           Phase = "succeeded"
	PhaseFailed              Phase = "failed"
	PhaseBlocked             Phase = "blocked"
	PhaseCancelled           Phase = "cancelled"
)

var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:                {PhaseCredentialChecked, PhaseBlocked},
	PhaseCredentialChecked:   {PhaseResolved, PhaseBlocked, PhaseFailed},
	PhaseResolved:            {PhaseConfirmationPending, PhaseSelected, PhaseFailed},
	PhaseConfirmationPending: {PhaseResolved, PhaseCancelled},
	PhaseSelected:            {PhaseExecuted, PhaseFailed},
	PhaseExecuted:            {PhaseSucceeded, PhaseFailed},
}

// CanAdvance reports whether the transition from p to next is legal.
func (p Phase) CanAdvance(next Phase) bool {
	for _, t := range phaseTransitions[p] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition leaves p.
func (p Phase) IsTerminal() bool {
	return len(phaseTransitions[p]) == 0
}

// PhaseTracker guards the pipeline against illegal transitions. An illegal
// transition indicates a programming error, not a runtime condition.
type PhaseTracker struct {
	current Phase
}

// NewPhaseTracker starts a tracker at PhaseIdle.
func NewPhaseTracker() *PhaseTracker {
	return &PhaseTracker{current: PhaseIdle}
}

// Current returns the tracker's current phase.
func (t *PhaseTracker) Current() Phase {
	return t.current
}

// Advance moves to next, failing on transitions the pipeline must never take.
func (t *PhaseTracker) Advance(next Phase) error {
	if !t.current.CanAdvance(next) {
		return goerr.New("invalid phase transition",
			goerr.V("from", t.current),
			goerr.V("to", next),
		)
	}
	t.current = next
	return nil
}
