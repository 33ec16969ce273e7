package wizard

// Step is one of the four wizard steps, in walk order.
type Step int

const (
	StepCollaboratorPrep Step = iota
	StepManagerPrep
	StepSession
	StepValidation
)

const StepCount = 4

// Key returns the stable identifier views use for the step.
func (s Step) Key() string {
	switch s {
	case StepCollaboratorPrep:
		return "pre_collaborateur"
	case StepManagerPrep:
		return "pre_manager"
	case StepSession:
		return "session"
	case StepValidation:
		return "validation"
	default:
		return ""
	}
}

func (s Step) IsFirst() bool { return s == StepCollaboratorPrep }
func (s Step) IsLast() bool  { return s == StepValidation }

// Next advances one step, clamped at the terminal step.
func (s Step) Next() Step {
	if s.IsLast() {
		return s
	}
	return s + 1
}

// Prev retreats one step, clamped at the initial step.
func (s Step) Prev() Step {
	if s.IsFirst() {
		return s
	}
	return s - 1
}

func Steps() []Step {
	return []Step{StepCollaboratorPrep, StepManagerPrep, StepSession, StepValidation}
}
