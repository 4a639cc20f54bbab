package semester

// Phase describes where an instant falls relative to a semester.
type Phase string

const (
	PhaseUpcoming   Phase = "upcoming"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// IsValid returns true if the phase is one of the defined constants.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseUpcoming, PhaseInProgress, PhaseFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}
