package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	apperrors "cordwain/internal/shared/errors"
)

func reconstructTicket(t *testing.T, id uint, scope vo.Scope, title string, createdAt time.Time) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(id, scope, title, vo.StatusOpen, vo.PriorityMedium, 7, createdAt, createdAt, nil)
	require.NoError(t, err)
	return tkt
}

func reconstructComment(t *testing.T, id, ticketID uint, textDE, textEN string) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, ticketID, 3, "A. Weber", textDE, textEN, nil, time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestTicketRegistry_RefreshPopulatesAndCrossMerges(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	view := strPtr("lateral")

	global := []*ticket.Ticket{
		reconstructTicket(t, 1, mustScope(t, 10, pos, view), "loose stitching", now),
		reconstructTicket(t, 2, mustScope(t, 11, nil, nil), "wrong leather batch", now),
	}
	orderFetch := []*ticket.Ticket{
		reconstructTicket(t, 1, mustScope(t, 10, pos, view), "loose stitching", now),
		reconstructTicket(t, 3, mustScope(t, 10, pos, strPtr("toe")), "toe cap scuffed", now),
	}

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) { return global, nil },
		ListTicketsForOrderFunc: func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
			return orderFetch, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})

	require.NoError(t, registry.RefreshGlobal(context.Background()))
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))

	// Ticket 3 arrived through the order fetch and flowed into the global
	// collection through the merge path.
	assert.Len(t, registry.AllTickets(), 3)
	assert.Len(t, registry.TicketsForOrder(10), 2)
	assert.Equal(t, []uint{10}, registry.LoadedOrders())

	// A second identical fetch must not duplicate anything.
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))
	assert.Len(t, registry.AllTickets(), 3)
	assert.Len(t, registry.TicketsForOrder(10), 2)
}

func TestTicketRegistry_RefreshFailureLeavesCollectionsUntouched(t *testing.T) {
	now := time.Now().UTC()
	fetched := []*ticket.Ticket{
		reconstructTicket(t, 1, mustScope(t, 10, nil, nil), "sole separation", now),
	}

	healthy := true
	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			if !healthy {
				return nil, errors.New("connection reset")
			}
			return fetched, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	healthy = false
	err := registry.RefreshGlobal(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsRequestFailure(err))
	assert.Len(t, registry.AllTickets(), 1)
}

func TestTicketRegistry_ResolveHonorsContext(t *testing.T) {
	now := time.Now().UTC()
	pos2 := uintPtr(2)
	pos3 := uintPtr(3)

	// Two logical tickets sharing an id across fetch epochs.
	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{
				reconstructTicket(t, 5, mustScope(t, 10, pos2, nil), "eyelet misaligned", now),
				reconstructTicket(t, 5, mustScope(t, 10, pos3, nil), "heel counter soft", now),
			}, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	got := registry.Resolve(5, ticket.ResolveContext{}.WithOrder(10).WithPosition(pos3))
	require.NotNil(t, got)
	assert.Equal(t, "heel counter soft", got.Title())

	got = registry.Resolve(5, ticket.ResolveContext{}.WithOrder(10).WithPosition(pos2))
	require.NotNil(t, got)
	assert.Equal(t, "eyelet misaligned", got.Title())

	// Order-level context (position explicitly absent) matches neither.
	assert.Nil(t, registry.Resolve(5, ticket.ResolveContext{}.WithOrder(10).WithPosition(nil)))

	// Id-only fallback still finds something.
	assert.NotNil(t, registry.Resolve(5, ticket.ResolveContext{}))
}

func TestTicketRegistry_ResolveReturnsIndependentCopy(t *testing.T) {
	now := time.Now().UTC()
	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{
				reconstructTicket(t, 1, mustScope(t, 10, nil, nil), "lining wrinkled", now),
			}, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	got := registry.Resolve(1, ticket.ResolveContext{})
	require.NoError(t, got.Close())

	inside := registry.Resolve(1, ticket.ResolveContext{})
	assert.Equal(t, vo.StatusOpen, inside.Status())
}

func TestTicketRegistry_CreateMergesAuthoritativeRecord(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	scope := mustScope(t, 10, pos, strPtr("lateral"))

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) { return nil, nil },
		ListTicketsForOrderFunc: func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
			return nil, nil
		},
		CreateTicketFunc: func(ctx context.Context, s vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, 42, s, title, now), nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))

	created, err := registry.Create(context.Background(), scope, "vamp crease", vo.PriorityHigh, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(42), created.ID())

	assert.Len(t, registry.AllTickets(), 1)
	assert.Len(t, registry.TicketsForOrder(10), 1)
}

func TestTicketRegistry_CreateFailureLeavesCollectionsUntouched(t *testing.T) {
	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) { return nil, nil },
		CreateTicketFunc: func(ctx context.Context, s vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error) {
			return nil, errors.New("gateway timeout")
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	_, err := registry.Create(context.Background(), mustScope(t, 10, nil, nil), "box crushed", vo.PriorityMedium, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsRequestFailure(err))
	assert.Empty(t, registry.AllTickets())
}

func TestTicketRegistry_SetStatusMergesServerRecord(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	scope := mustScope(t, 10, pos, nil)

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{reconstructTicket(t, 9, scope, "welt gap", now)}, nil
		},
		SetTicketStatusFunc: func(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error) {
			closedAt := now.Add(time.Hour)
			updated, err := ticket.ReconstructTicket(ticketID, scope, "welt gap", status, vo.PriorityMedium, 7, now, closedAt, &closedAt)
			require.NoError(t, err)
			return updated, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	rc := ticket.ResolveContext{}.WithOrder(10).WithPosition(pos)
	updated, err := registry.SetStatus(context.Background(), 9, vo.StatusClosed, rc)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, updated.Status())

	stored := registry.Resolve(9, rc)
	require.NotNil(t, stored)
	assert.Equal(t, vo.StatusClosed, stored.Status())
	assert.NotNil(t, stored.ClosedAt())
}

func TestTicketRegistry_SetStatusGatingViolationPassesThrough(t *testing.T) {
	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) { return nil, nil },
		SetTicketStatusFunc: func(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error) {
			return nil, apperrors.NewGatingViolationError("open tickets remain for this view")
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	_, err := registry.SetStatus(context.Background(), 9, vo.StatusClosed, ticket.ResolveContext{})
	require.Error(t, err)
	assert.True(t, apperrors.IsGatingViolation(err))
	assert.False(t, apperrors.IsRequestFailure(err))
}

func TestTicketRegistry_DeleteRemovesFromEveryCollection(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	scope := mustScope(t, 10, pos, nil)

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{reconstructTicket(t, 4, scope, "collar fraying", now)}, nil
		},
		ListTicketsForOrderFunc: func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{reconstructTicket(t, 4, scope, "collar fraying", now)}, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))

	rc := ticket.ResolveContext{}.WithOrder(10).WithPosition(pos)
	require.NoError(t, registry.Delete(context.Background(), 4, rc))

	assert.Empty(t, registry.AllTickets())
	assert.Empty(t, registry.TicketsForOrder(10))
}

func TestTicketRegistry_AddCommentReachesEveryCopy(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	scope := mustScope(t, 10, pos, nil)
	make4 := func() *ticket.Ticket { return reconstructTicket(t, 4, scope, "tongue padding thin", now) }

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{make4()}, nil
		},
		ListTicketsForOrderFunc: func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{make4()}, nil
		},
		AddCommentFunc: func(ctx context.Context, ticketID uint, payload CommentPayload) (*ticket.Comment, error) {
			return reconstructComment(t, 77, ticketID, payload.TextDE, payload.TextEN), nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))

	rc := ticket.ResolveContext{}.WithOrder(10).WithPosition(pos)
	comment, err := registry.AddComment(context.Background(), 4, CommentPayload{
		AuthorID:   3,
		AuthorName: "A. Weber",
		TextDE:     "Bitte Naht prüfen",
		TextEN:     "Please check the seam",
	}, rc)
	require.NoError(t, err)
	assert.Equal(t, uint(77), comment.ID())

	fromGlobal := registry.Resolve(4, rc)
	require.NotNil(t, fromGlobal)
	require.Len(t, fromGlobal.Comments(), 1)
	assert.Equal(t, "Bitte Naht prüfen", fromGlobal.Comments()[0].Text(ticket.LangGerman))

	forOrder := registry.TicketsForOrder(10)
	require.Len(t, forOrder, 1)
	assert.Len(t, forOrder[0].Comments(), 1)
}

func TestTicketRegistry_DeleteCommentToleratesStaleCopies(t *testing.T) {
	now := time.Now().UTC()
	pos := uintPtr(2)
	scope := mustScope(t, 10, pos, nil)

	withComment := reconstructTicket(t, 4, scope, "laces too short", now)
	require.NoError(t, withComment.AddComment(reconstructComment(t, 77, 4, "", "short by 5cm")))
	stale := reconstructTicket(t, 4, scope, "laces too short", now)

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{withComment}, nil
		},
		ListTicketsForOrderFunc: func(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{stale}, nil
		},
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))
	require.NoError(t, registry.RefreshOrder(context.Background(), 10))

	rc := ticket.ResolveContext{}.WithOrder(10).WithPosition(pos)
	require.NoError(t, registry.DeleteComment(context.Background(), 4, 77, rc))

	remaining := registry.Resolve(4, rc)
	require.NotNil(t, remaining)
	assert.Empty(t, remaining.Comments())

	forOrder := registry.TicketsForOrder(10)
	require.Len(t, forOrder, 1)
	assert.Empty(t, forOrder[0].Comments())
}

func TestTicketRegistry_MergeIsIdempotent(t *testing.T) {
	now := time.Now().UTC()
	scope := mustScope(t, 10, uintPtr(2), nil)
	record := reconstructTicket(t, 4, scope, "insole glue stain", now)

	svc := &mockTicketService{
		ListTicketsFunc: func(ctx context.Context) ([]*ticket.Ticket, error) { return nil, nil },
	}
	registry := NewTicketRegistry(svc, &mockLogger{})
	require.NoError(t, registry.RefreshGlobal(context.Background()))

	registry.Merge(record)
	registry.Merge(record)
	registry.Merge(record.Clone())

	assert.Len(t, registry.AllTickets(), 1)
}
