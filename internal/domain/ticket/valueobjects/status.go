package valueobjects

import "fmt"

type Status string

const (
	StatusUnassigned Status = "unassigned"
	StatusAssigned   Status = "assigned"
	StatusOpen       Status = "open"
	StatusWaiting    Status = "waiting"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusUnassigned: true,
	StatusAssigned:   true,
	StatusOpen:       true,
	StatusWaiting:    true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsUnassigned() bool {
	return s == StatusUnassigned
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// NewStatus parses a status string. Any valid status may be set from any
// other; there is no transition graph.
func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
