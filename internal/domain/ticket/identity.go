package ticket

import "time"

// IdentityKey is the value-based fallback matcher for a ticket. The same
// logical ticket can sit in several independently fetched collections, so
// matching is done over value fields, never over object identity. A bare
// id match is ambiguous when an order-level ticket and a position-level
// ticket from different fetch epochs share an id; the extra fields settle
// it.
type IdentityKey struct {
	ID         uint
	OrderID    uint
	PositionID *uint
	CreatedAt  time.Time
	Title      string
}

// Matches reports whether the ticket carries exactly this identity. An
// absent position and a present one never match each other.
func (k IdentityKey) Matches(t *Ticket) bool {
	if t == nil {
		return false
	}
	if t.ID() != k.ID || t.OrderID() != k.OrderID {
		return false
	}
	if !equalOptionalID(t.PositionID(), k.PositionID) {
		return false
	}
	if !t.CreatedAt().Equal(k.CreatedAt) {
		return false
	}
	return t.Title() == k.Title
}

// ResolveContext narrows a ticket lookup beyond its id. Every field that is
// set must agree with the candidate; a set PositionID of nil demands an
// order-level ticket, which is different from leaving the position
// unconstrained.
type ResolveContext struct {
	OrderID       *uint
	MatchPosition bool
	PositionID    *uint
	Key           *IdentityKey
}

// WithOrder constrains the lookup to one order.
func (rc ResolveContext) WithOrder(orderID uint) ResolveContext {
	rc.OrderID = &orderID
	return rc
}

// WithPosition constrains the lookup to a position; nil demands an
// order-level ticket.
func (rc ResolveContext) WithPosition(positionID *uint) ResolveContext {
	rc.MatchPosition = true
	rc.PositionID = positionID
	return rc
}

// WithKey adds the full identity fallback.
func (rc ResolveContext) WithKey(key IdentityKey) ResolveContext {
	rc.Key = &key
	return rc
}

// Matches applies every constraint present in the context.
func (rc ResolveContext) Matches(t *Ticket) bool {
	if t == nil {
		return false
	}
	if rc.OrderID != nil && t.OrderID() != *rc.OrderID {
		return false
	}
	if rc.MatchPosition && !equalOptionalID(t.PositionID(), rc.PositionID) {
		return false
	}
	if rc.Key != nil && !rc.Key.Matches(t) {
		return false
	}
	return true
}

func equalOptionalID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
