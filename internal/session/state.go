package session

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted // Terminal
)

// Label returns the display label for a state.
func (s State) Label() string {
	switch s {
	case StateNotStarted:
		return "Not Started"
	case StateInProgress:
		return "In Progress"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
