package ticket

import "time"

type Ticket struct {
	ID        string
	Title     string
	Priority  Priority
	Status    Status
	CreatedAt time.Time
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

// IsPending reports whether the ticket still needs attention.
func (t Ticket) IsPending() bool {
	return t.Status == StatusOpen || t.Status == StatusInProgress
}

// Scope selects which tickets a caller reads.
type Scope string

const (
	ScopeCompany Scope = "company" // every ticket of the company
	ScopeOwn     Scope = "own"     // tickets raised by the caller
)
