package delivery

// Phase is the derived progress view of a delivery, computed from the
// assignment, start and completion timestamps. It is intentionally not
// storable: there is no way to set a phase except by moving the delivery
// through its lifecycle, which keeps the view and the timestamps consistent
// by construction.
type Phase int

const (
	// PhaseUnassigned: the delivery exists but no driver holds it.
	PhaseUnassigned Phase = iota

	// PhaseAssigned: a driver holds the delivery but has not started the run.
	PhaseAssigned

	// PhaseStarted: the assigned driver is underway.
	PhaseStarted

	// PhaseCompleted: the run has finished; the delivery is immutable apart
	// from the location trail already recorded.
	PhaseCompleted
)

// String returns the wire name of the phase, implementing fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseUnassigned:
		return "UNASSIGNED"
	case PhaseAssigned:
		return "ASSIGNED"
	case PhaseStarted:
		return "STARTED"
	case PhaseCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}
