package valueobjects

import "fmt"

// ScopeLevel names how narrowly a ticket is targeted.
type ScopeLevel string

const (
	ScopeOrder    ScopeLevel = "order"
	ScopePosition ScopeLevel = "position"
	ScopeView     ScopeLevel = "view"
)

// Scope pins a ticket to an order, optionally narrowed to a position and
// further to a single specification view. The three levels are distinct:
// an order-level ticket has no position, a position-level ticket has no
// view.
type Scope struct {
	orderID    uint
	positionID *uint
	viewKey    *string
}

func NewOrderScope(orderID uint) (Scope, error) {
	if orderID == 0 {
		return Scope{}, fmt.Errorf("order ID is required")
	}
	return Scope{orderID: orderID}, nil
}

func NewPositionScope(orderID, positionID uint) (Scope, error) {
	if orderID == 0 {
		return Scope{}, fmt.Errorf("order ID is required")
	}
	if positionID == 0 {
		return Scope{}, fmt.Errorf("position ID is required")
	}
	return Scope{orderID: orderID, positionID: &positionID}, nil
}

func NewViewScope(orderID, positionID uint, viewKey string) (Scope, error) {
	if orderID == 0 {
		return Scope{}, fmt.Errorf("order ID is required")
	}
	if positionID == 0 {
		return Scope{}, fmt.Errorf("position ID is required")
	}
	if viewKey == "" {
		return Scope{}, fmt.Errorf("view key is required")
	}
	return Scope{orderID: orderID, positionID: &positionID, viewKey: &viewKey}, nil
}

// NewScope builds whichever scope level the optional fields describe.
// A view key without a position is invalid.
func NewScope(orderID uint, positionID *uint, viewKey *string) (Scope, error) {
	switch {
	case positionID == nil && viewKey != nil:
		return Scope{}, fmt.Errorf("view scope requires a position ID")
	case positionID == nil:
		return NewOrderScope(orderID)
	case viewKey == nil:
		return NewPositionScope(orderID, *positionID)
	default:
		return NewViewScope(orderID, *positionID, *viewKey)
	}
}

func (s Scope) OrderID() uint {
	return s.orderID
}

func (s Scope) PositionID() *uint {
	if s.positionID == nil {
		return nil
	}
	id := *s.positionID
	return &id
}

func (s Scope) ViewKey() *string {
	if s.viewKey == nil {
		return nil
	}
	key := *s.viewKey
	return &key
}

func (s Scope) Level() ScopeLevel {
	switch {
	case s.viewKey != nil:
		return ScopeView
	case s.positionID != nil:
		return ScopePosition
	default:
		return ScopeOrder
	}
}

func (s Scope) String() string {
	switch s.Level() {
	case ScopeView:
		return fmt.Sprintf("order %d / position %d / view %s", s.orderID, *s.positionID, *s.viewKey)
	case ScopePosition:
		return fmt.Sprintf("order %d / position %d", s.orderID, *s.positionID)
	default:
		return fmt.Sprintf("order %d", s.orderID)
	}
}
