package review

import (
	"cordwain/internal/domain/ticket"
)

// OpenTicketCount counts open tickets scoped against one view slot. Order
// and position must match exactly; a query without a view key (empty
// string) counts position-level tickets, a query with one counts only
// tickets pinned to that exact view. Position-level tickets never block a
// specific view.
func OpenTicketCount(tickets []*ticket.Ticket, orderID, positionID uint, viewKey string) int {
	count := 0
	for _, t := range tickets {
		if t == nil || !t.Status().IsOpen() {
			continue
		}
		if t.OrderID() != orderID {
			continue
		}
		pos := t.PositionID()
		if pos == nil || *pos != positionID {
			continue
		}
		view := t.ViewKey()
		if view == nil {
			if viewKey == "" {
				count++
			}
			continue
		}
		if *view == viewKey {
			count++
		}
	}
	return count
}

// CanResolve reports whether a view's media may transition to resolved.
// This is the sole guard for that transition and must be recomputed from
// the current ticket set on every evaluation; the result is never cached.
// Reopening has no guard.
func CanResolve(tickets []*ticket.Ticket, orderID, positionID uint, viewKey string) bool {
	return OpenTicketCount(tickets, orderID, positionID, viewKey) == 0
}
