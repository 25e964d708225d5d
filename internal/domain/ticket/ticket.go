package ticket

import (
	"fmt"
	"time"

	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/shared/biztime"
)

// Ticket is a question/answer thread raised against an order, one of its
// positions, or a single specification view of a position. A view cannot
// be marked resolved while an open ticket is scoped to it.
type Ticket struct {
	id        uint
	scope     vo.Scope
	title     string
	status    vo.TicketStatus
	priority  vo.Priority
	creatorID uint
	createdAt time.Time
	updatedAt time.Time
	closedAt  *time.Time
	comments  []*Comment
}

func NewTicket(scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if scope.OrderID() == 0 {
		return nil, fmt.Errorf("ticket scope is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		scope:     scope,
		title:     title,
		status:    vo.StatusOpen,
		priority:  priority,
		creatorID: creatorID,
		createdAt: now,
		updatedAt: now,
		comments:  []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	scope vo.Scope,
	title string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if scope.OrderID() == 0 {
		return nil, fmt.Errorf("ticket scope is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:        id,
		scope:     scope,
		title:     title,
		status:    status,
		priority:  priority,
		creatorID: creatorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
		closedAt:  closedAt,
		comments:  []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Scope() vo.Scope {
	return t.scope
}

func (t *Ticket) OrderID() uint {
	return t.scope.OrderID()
}

func (t *Ticket) PositionID() *uint {
	return t.scope.PositionID()
}

func (t *Ticket) ViewKey() *string {
	return t.scope.ViewKey()
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) Comments() []*Comment {
	comments := make([]*Comment, len(t.comments))
	copy(comments, t.comments)
	return comments
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket between open and closed.
func (t *Ticket) ChangeStatus(next vo.TicketStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	if t.status == next {
		return nil
	}
	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, next)
	}

	t.status = next
	t.updatedAt = biztime.NowUTC()

	if next.IsClosed() {
		now := biztime.NowUTC()
		t.closedAt = &now
	} else {
		t.closedAt = nil
	}

	return nil
}

func (t *Ticket) Close() error {
	return t.ChangeStatus(vo.StatusClosed)
}

func (t *Ticket) Reopen() error {
	return t.ChangeStatus(vo.StatusOpen)
}

// AddComment appends a comment to the thread.
func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}
	for _, existing := range t.comments {
		if existing.ID() != 0 && existing.ID() == comment.ID() {
			// Same authoritative record arriving twice; keep one copy.
			return nil
		}
	}
	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// RemoveComment drops exactly one comment by id. Removing a comment never
// touches the ticket itself.
func (t *Ticket) RemoveComment(commentID uint) error {
	for i, c := range t.comments {
		if c.ID() == commentID {
			t.comments = append(t.comments[:i], t.comments[i+1:]...)
			t.updatedAt = biztime.NowUTC()
			return nil
		}
	}
	return fmt.Errorf("comment %d not found", commentID)
}

// SetComments replaces the thread with records loaded from storage.
func (t *Ticket) SetComments(comments []*Comment) {
	t.comments = make([]*Comment, len(comments))
	copy(t.comments, comments)
}

// IdentityKey derives the value-based fallback matcher for this ticket.
func (t *Ticket) IdentityKey() IdentityKey {
	return IdentityKey{
		ID:         t.id,
		OrderID:    t.scope.OrderID(),
		PositionID: t.scope.PositionID(),
		CreatedAt:  t.createdAt,
		Title:      t.title,
	}
}

// Clone returns a deep copy. Collections hold independent copies of the
// same logical ticket, so merges must never share comment slices.
func (t *Ticket) Clone() *Ticket {
	clone := *t
	clone.comments = make([]*Comment, len(t.comments))
	for i, c := range t.comments {
		clone.comments[i] = c.Clone()
	}
	return &clone
}
