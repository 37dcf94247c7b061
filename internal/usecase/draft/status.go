package draft

// Phase is the lifecycle position of a draft.
type Phase int

const (
	// PhaseEditing accepts field mutations and step transitions.
	PhaseEditing Phase = iota
	// PhaseSubmitting is set while a commit is in flight.
	PhaseSubmitting
	// PhaseSubmitted is terminal; every further mutation is refused.
	PhaseSubmitted
	// PhaseFailed means the last commit failed. All entered values are kept.
	PhaseFailed
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	case PhaseFailed:
		return "failed"
	default:
		return "editing"
	}
}

// Status is the signal the page layer renders: a phase and, when failed, the reason.
type Status struct {
	Phase  Phase
	Reason string
}

// String returns "failed: reason" for failures and the phase name otherwise.
func (s Status) String() string {
	if s.Phase == PhaseFailed && s.Reason != "" {
		return s.Phase.String() + ": " + s.Reason
	}

	return s.Phase.String()
}
