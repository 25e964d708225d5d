package review

import (
	"context"

	"cordwain/internal/domain/specification"
	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/shared/logger"
)

type mockTicketService struct {
	ListTicketsFunc         func(ctx context.Context) ([]*ticket.Ticket, error)
	ListTicketsForOrderFunc func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error)
	CreateTicketFunc        func(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error)
	SetTicketStatusFunc     func(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error)
	DeleteTicketFunc        func(ctx context.Context, ticketID uint) error
	AddCommentFunc          func(ctx context.Context, ticketID uint, payload CommentPayload) (*ticket.Comment, error)
	DeleteCommentFunc       func(ctx context.Context, ticketID, commentID uint) error
}

func (m *mockTicketService) ListTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketService) ListTicketsForOrder(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
	if m.ListTicketsForOrderFunc != nil {
		return m.ListTicketsForOrderFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockTicketService) CreateTicket(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error) {
	if m.CreateTicketFunc != nil {
		return m.CreateTicketFunc(ctx, scope, title, priority, creatorID)
	}
	return nil, nil
}

func (m *mockTicketService) SetTicketStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error) {
	if m.SetTicketStatusFunc != nil {
		return m.SetTicketStatusFunc(ctx, ticketID, status)
	}
	return nil, nil
}

func (m *mockTicketService) DeleteTicket(ctx context.Context, ticketID uint) error {
	if m.DeleteTicketFunc != nil {
		return m.DeleteTicketFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketService) AddComment(ctx context.Context, ticketID uint, payload CommentPayload) (*ticket.Comment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, ticketID, payload)
	}
	return nil, nil
}

func (m *mockTicketService) DeleteComment(ctx context.Context, ticketID, commentID uint) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, ticketID, commentID)
	}
	return nil
}

type mockSpecificationService struct {
	GetSpecificationFunc func(ctx context.Context, orderID, positionID uint) (*specification.Specification, error)
	UploadMediaFunc      func(ctx context.Context, orderID, positionID uint, view specification.ViewKey, upload Upload) (*specification.MediaAsset, error)
	ReplaceMediaFunc     func(ctx context.Context, orderID, positionID, mediaID uint, upload Upload) (*specification.MediaAsset, error)
	DeleteMediaFunc      func(ctx context.Context, orderID, positionID, mediaID uint) error
	SetMediaStatusFunc   func(ctx context.Context, orderID, positionID, mediaID uint, status specification.MediaStatus) (*specification.MediaAsset, error)
	AddAnnotationFunc    func(ctx context.Context, orderID, positionID, mediaID uint, x, y float64, note, author string) (*specification.Annotation, error)
	DeleteAnnotationFunc func(ctx context.Context, orderID, positionID, annotationID uint) error
}

func (m *mockSpecificationService) GetSpecification(ctx context.Context, orderID, positionID uint) (*specification.Specification, error) {
	if m.GetSpecificationFunc != nil {
		return m.GetSpecificationFunc(ctx, orderID, positionID)
	}
	return specification.NewSpecification(orderID, positionID)
}

func (m *mockSpecificationService) UploadMedia(ctx context.Context, orderID, positionID uint, view specification.ViewKey, upload Upload) (*specification.MediaAsset, error) {
	if m.UploadMediaFunc != nil {
		return m.UploadMediaFunc(ctx, orderID, positionID, view, upload)
	}
	return nil, nil
}

func (m *mockSpecificationService) ReplaceMedia(ctx context.Context, orderID, positionID, mediaID uint, upload Upload) (*specification.MediaAsset, error) {
	if m.ReplaceMediaFunc != nil {
		return m.ReplaceMediaFunc(ctx, orderID, positionID, mediaID, upload)
	}
	return nil, nil
}

func (m *mockSpecificationService) DeleteMedia(ctx context.Context, orderID, positionID, mediaID uint) error {
	if m.DeleteMediaFunc != nil {
		return m.DeleteMediaFunc(ctx, orderID, positionID, mediaID)
	}
	return nil
}

func (m *mockSpecificationService) SetMediaStatus(ctx context.Context, orderID, positionID, mediaID uint, status specification.MediaStatus) (*specification.MediaAsset, error) {
	if m.SetMediaStatusFunc != nil {
		return m.SetMediaStatusFunc(ctx, orderID, positionID, mediaID, status)
	}
	return nil, nil
}

func (m *mockSpecificationService) AddAnnotation(ctx context.Context, orderID, positionID, mediaID uint, x, y float64, note, author string) (*specification.Annotation, error) {
	if m.AddAnnotationFunc != nil {
		return m.AddAnnotationFunc(ctx, orderID, positionID, mediaID, x, y, note, author)
	}
	return nil, nil
}

func (m *mockSpecificationService) DeleteAnnotation(ctx context.Context, orderID, positionID, annotationID uint) error {
	if m.DeleteAnnotationFunc != nil {
		return m.DeleteAnnotationFunc(ctx, orderID, positionID, annotationID)
	}
	return nil
}

type mockTranslator struct {
	TranslateFunc func(ctx context.Context, text string, source, target ticket.Language) (string, error)
}

func (m *mockTranslator) Translate(ctx context.Context, text string, source, target ticket.Language) (string, error) {
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, source, target)
	}
	return "", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
