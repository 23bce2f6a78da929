package booking

import "strings"

type Status int

const (
	StatusPending Status = iota + 1
	StatusApproved
	StatusCheckedIn
	StatusCheckedOut
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:    "Pending",
	StatusApproved:   "Approved",
	StatusCheckedIn:  "Checked-In",
	StatusCheckedOut: "Checked-Out",
	StatusCancelled:  "Cancelled",
}

// transitions is the complete status graph. Terminal statuses have no entry.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// Path identifies who asks for a transition. Approval and cancellation carry
// side effects (downpayment, hold release) so only their dedicated workflows may
// set those statuses.
type Path int

const (
	PathStaff Path = iota + 1
	PathWorkflow
)

func AllStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) ID() int { return int(s) }

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// HoldsRoom reports whether a booking in this status still occupies its rooms.
func (s Status) HoldsRoom() bool {
	return s.IsValid() && !s.IsTerminal()
}

func (s Status) AllowsStayChange() bool {
	return s == StatusApproved || s == StatusCheckedIn
}

func (s Status) AllowsInvoicing() bool {
	return s == StatusApproved || s == StatusCheckedIn || s == StatusCheckedOut
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ParseStatus accepts the display name ("Checked-In") case-insensitively.
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	for s, n := range statusNames {
		if strings.EqualFold(n, trimmed) {
			return s, nil
		}
	}
	return 0, ErrInvalidStatus
}

func StatusFromID(id int) (Status, error) {
	s := Status(id)
	if !s.IsValid() {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

// ValidateTransition decides whether current may move to target through path.
// It returns changed=false with a nil error when target equals current.
func ValidateTransition(current, target Status, path Path) (changed bool, err error) {
	if !target.IsValid() {
		return false, ErrInvalidStatus
	}
	if path == PathStaff && (target == StatusApproved || target == StatusCancelled) {
		return false, ErrTransitionPolicy
	}
	if current == target {
		return false, nil
	}
	if !current.CanTransitionTo(target) {
		return false, ErrIllegalTransition
	}
	return true, nil
}
