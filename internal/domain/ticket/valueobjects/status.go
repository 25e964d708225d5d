package valueobjects

import "fmt"

type TicketStatus string

// A review ticket is either awaiting an answer or done. There are no
// intermediate states; closed tickets may always be reopened.
const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:   true,
	StatusClosed: true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// CanTransitionTo permits exactly the open<->closed pair.
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	if !newStatus.IsValid() {
		return false
	}
	return ts != newStatus
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
