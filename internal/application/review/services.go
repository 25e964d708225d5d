// Package review implements the specification review core: the in-memory
// ticket registry with its cross-collection identity resolution, the pure
// gating rules that guard view resolution, the bilingual comment thread,
// and the per-position specification session. All mutations are
// server-authoritative: the backing store is called first and only its
// returned record is merged into local state.
package review

import (
	"context"
	"io"

	"cordwain/internal/domain/specification"
	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
)

// CommentPayload is the outgoing shape of a new thread message. Both
// language variants may be filled; auto-translation fills the missing one
// on a best-effort basis before submission.
type CommentPayload struct {
	AuthorID    uint
	AuthorName  string
	TextDE      string
	TextEN      string
	Attachments []ticket.Attachment
}

// Upload carries the bytes of a media file on its way to storage.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// TicketService is the authoritative ticket store the registry mutates
// through. Every mutation returns the server's record; local collections
// are only updated from these return values.
type TicketService interface {
	ListTickets(ctx context.Context) ([]*ticket.Ticket, error)
	ListTicketsForOrder(ctx context.Context, orderID uint) ([]*ticket.Ticket, error)
	CreateTicket(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error)
	SetTicketStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error)
	DeleteTicket(ctx context.Context, ticketID uint) error
	AddComment(ctx context.Context, ticketID uint, payload CommentPayload) (*ticket.Comment, error)
	DeleteComment(ctx context.Context, ticketID, commentID uint) error
}

// SpecificationService is the authoritative store behind a specification
// session.
type SpecificationService interface {
	GetSpecification(ctx context.Context, orderID, positionID uint) (*specification.Specification, error)
	UploadMedia(ctx context.Context, orderID, positionID uint, view specification.ViewKey, upload Upload) (*specification.MediaAsset, error)
	ReplaceMedia(ctx context.Context, orderID, positionID, mediaID uint, upload Upload) (*specification.MediaAsset, error)
	DeleteMedia(ctx context.Context, orderID, positionID, mediaID uint) error
	SetMediaStatus(ctx context.Context, orderID, positionID, mediaID uint, status specification.MediaStatus) (*specification.MediaAsset, error)
	AddAnnotation(ctx context.Context, orderID, positionID, mediaID uint, x, y float64, note, author string) (*specification.Annotation, error)
	DeleteAnnotation(ctx context.Context, orderID, positionID, annotationID uint) error
}

// Translator is the machine-translation collaborator. Failures are
// tolerated everywhere it is used; callers fall back to a blank variant.
type Translator interface {
	Translate(ctx context.Context, text string, source, target ticket.Language) (string, error)
}
