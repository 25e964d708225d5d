package review

import (
	"context"
	"sync"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	apperrors "cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

// TicketRegistry is the single source of truth for ticket identity on the
// client side. It holds a global collection and any number of order-scoped
// collections, each populated by its own fetch, and reconciles the same
// logical ticket across all of them after every mutation. Collections hold
// independent copies; nothing is ever matched by pointer.
//
// Mutations are server-authoritative: the ticket service is called first
// and only its returned record is merged. A failed call leaves every
// collection exactly as it was.
type TicketRegistry struct {
	mu     sync.RWMutex
	svc    TicketService
	log    logger.Interface
	global []*ticket.Ticket
	orders map[uint][]*ticket.Ticket

	globalLoaded bool
}

func NewTicketRegistry(svc TicketService, log logger.Interface) *TicketRegistry {
	return &TicketRegistry{
		svc:    svc,
		log:    log.Named("ticket-registry"),
		orders: make(map[uint][]*ticket.Ticket),
	}
}

// RefreshGlobal re-fetches the global collection. The fetched records also
// flow through the merge path into every loaded order collection, so a
// refresh arriving concurrently with mutations is always safe to apply.
func (r *TicketRegistry) RefreshGlobal(ctx context.Context) error {
	fetched, err := r.svc.ListTickets(ctx)
	if err != nil {
		return apperrors.NewRequestFailureError("failed to refresh tickets", err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.global = cloneAll(fetched)
	r.globalLoaded = true
	for _, t := range fetched {
		for orderID := range r.orders {
			if t.OrderID() == orderID {
				r.orders[orderID] = mergeInto(r.orders[orderID], t)
			}
		}
	}

	r.log.Debugw("global ticket collection refreshed", "count", len(fetched))
	return nil
}

// RefreshOrder re-fetches one order-scoped collection.
func (r *TicketRegistry) RefreshOrder(ctx context.Context, orderID uint) error {
	fetched, err := r.svc.ListTicketsForOrder(ctx, orderID)
	if err != nil {
		return apperrors.NewRequestFailureError("failed to refresh order tickets", err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[orderID] = cloneAll(fetched)
	if r.globalLoaded {
		for _, t := range fetched {
			r.global = mergeInto(r.global, t)
		}
	}

	r.log.Debugw("order ticket collection refreshed", "order_id", orderID, "count", len(fetched))
	return nil
}

// LoadedOrders lists the order ids with a loaded collection.
func (r *TicketRegistry) LoadedOrders() []uint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	return ids
}

// Resolve finds the ticket whose id matches and that agrees with every
// identity field the context specifies. The id-only path (empty context)
// is kept as a fallback for callers without disambiguating scope.
func (r *TicketRegistry) Resolve(ticketID uint, rc ticket.ResolveContext) *ticket.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t := resolveIn(r.global, ticketID, rc); t != nil {
		return t.Clone()
	}
	for _, collection := range r.orders {
		if t := resolveIn(collection, ticketID, rc); t != nil {
			return t.Clone()
		}
	}
	return nil
}

// TicketsForOrder snapshots the tickets of one order for gating and
// rendering. It prefers the order-scoped collection and falls back to
// filtering the global one.
func (r *TicketRegistry) TicketsForOrder(orderID uint) []*ticket.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if collection, ok := r.orders[orderID]; ok {
		return cloneAll(collection)
	}

	var result []*ticket.Ticket
	for _, t := range r.global {
		if t.OrderID() == orderID {
			result = append(result, t.Clone())
		}
	}
	return result
}

// AllTickets snapshots the global collection.
func (r *TicketRegistry) AllTickets() []*ticket.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.global)
}

// Create submits a new ticket and inserts the authoritative record into
// every collection whose scope covers it.
func (r *TicketRegistry) Create(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error) {
	created, err := r.svc.CreateTicket(ctx, scope, title, priority, creatorID)
	if err != nil {
		return nil, wrapRequestFailure(err, "failed to create ticket")
	}

	r.mu.Lock()
	r.mergeLocked(created)
	r.mu.Unlock()

	r.log.Infow("ticket created", "ticket_id", created.ID(), "scope", scope.String())
	return created.Clone(), nil
}

// SetStatus requests a status change and merges the server's record into
// all matching collections. No local projection of the new status is made
// before the server confirms it.
func (r *TicketRegistry) SetStatus(ctx context.Context, ticketID uint, next vo.TicketStatus, rc ticket.ResolveContext) (*ticket.Ticket, error) {
	updated, err := r.svc.SetTicketStatus(ctx, ticketID, next)
	if err != nil {
		return nil, wrapRequestFailure(err, "failed to change ticket status")
	}

	r.mu.Lock()
	r.mergeLocked(updated)
	r.mu.Unlock()

	r.log.Infow("ticket status changed", "ticket_id", ticketID, "status", next.String())
	return updated.Clone(), nil
}

// Delete removes the ticket from the store, then from every collection the
// context matches it in. Comments go with it; the store cascades and so
// does the local copy by dropping the whole record.
func (r *TicketRegistry) Delete(ctx context.Context, ticketID uint, rc ticket.ResolveContext) error {
	if err := r.svc.DeleteTicket(ctx, ticketID); err != nil {
		return wrapRequestFailure(err, "failed to delete ticket")
	}

	r.mu.Lock()
	r.global = removeFrom(r.global, ticketID, rc)
	for orderID := range r.orders {
		r.orders[orderID] = removeFrom(r.orders[orderID], ticketID, rc)
	}
	r.mu.Unlock()

	r.log.Infow("ticket deleted", "ticket_id", ticketID)
	return nil
}

// AddComment appends the server-returned comment to every copy of the
// ticket the context matches.
func (r *TicketRegistry) AddComment(ctx context.Context, ticketID uint, payload CommentPayload, rc ticket.ResolveContext) (*ticket.Comment, error) {
	comment, err := r.svc.AddComment(ctx, ticketID, payload)
	if err != nil {
		return nil, wrapRequestFailure(err, "failed to add comment")
	}

	r.mu.Lock()
	for _, t := range r.matchingLocked(ticketID, rc) {
		if err := t.AddComment(comment.Clone()); err != nil {
			r.log.Warnw("skipping comment merge into stale copy", "ticket_id", ticketID, "error", err)
		}
	}
	r.mu.Unlock()

	return comment.Clone(), nil
}

// DeleteComment removes the comment from every copy of the ticket. The
// ticket itself is never touched.
func (r *TicketRegistry) DeleteComment(ctx context.Context, ticketID, commentID uint, rc ticket.ResolveContext) error {
	if err := r.svc.DeleteComment(ctx, ticketID, commentID); err != nil {
		return wrapRequestFailure(err, "failed to delete comment")
	}

	r.mu.Lock()
	for _, t := range r.matchingLocked(ticketID, rc) {
		// A copy from an older fetch epoch may not hold the comment yet.
		_ = t.RemoveComment(commentID)
	}
	r.mu.Unlock()

	return nil
}

// Merge folds an authoritative record into every collection whose scope
// covers it. Safe to call repeatedly with the same record.
func (r *TicketRegistry) Merge(t *ticket.Ticket) {
	if t == nil {
		return
	}
	r.mu.Lock()
	r.mergeLocked(t)
	r.mu.Unlock()
}

func (r *TicketRegistry) mergeLocked(t *ticket.Ticket) {
	if r.globalLoaded {
		r.global = mergeInto(r.global, t)
	}
	if _, ok := r.orders[t.OrderID()]; ok {
		r.orders[t.OrderID()] = mergeInto(r.orders[t.OrderID()], t)
	}
}

// matchingLocked returns the internal copies of a ticket across all
// collections, matched by id plus context.
func (r *TicketRegistry) matchingLocked(ticketID uint, rc ticket.ResolveContext) []*ticket.Ticket {
	var result []*ticket.Ticket
	if t := resolveIn(r.global, ticketID, rc); t != nil {
		result = append(result, t)
	}
	for _, collection := range r.orders {
		if t := resolveIn(collection, ticketID, rc); t != nil {
			result = append(result, t)
		}
	}
	return result
}

func resolveIn(collection []*ticket.Ticket, ticketID uint, rc ticket.ResolveContext) *ticket.Ticket {
	for _, t := range collection {
		if t.ID() == ticketID && rc.Matches(t) {
			return t
		}
	}
	return nil
}

// mergeInto replaces the collection's copy of the same logical ticket, or
// appends when none exists. Sameness is id plus scope: records from stale
// fetch epochs that share an id but disagree on scope stay untouched.
func mergeInto(collection []*ticket.Ticket, t *ticket.Ticket) []*ticket.Ticket {
	rc := ticket.ResolveContext{}.
		WithOrder(t.OrderID()).
		WithPosition(t.PositionID())

	for i, existing := range collection {
		if existing.ID() == t.ID() && rc.Matches(existing) {
			collection[i] = t.Clone()
			return collection
		}
	}
	return append(collection, t.Clone())
}

func removeFrom(collection []*ticket.Ticket, ticketID uint, rc ticket.ResolveContext) []*ticket.Ticket {
	kept := collection[:0]
	for _, t := range collection {
		if t.ID() == ticketID && rc.Matches(t) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func cloneAll(tickets []*ticket.Ticket) []*ticket.Ticket {
	clones := make([]*ticket.Ticket, len(tickets))
	for i, t := range tickets {
		clones[i] = t.Clone()
	}
	return clones
}

// wrapRequestFailure keeps typed application errors (gating violations,
// validation) intact and folds anything else into a request failure.
func wrapRequestFailure(err error, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.NewRequestFailureError(message, err.Error())
}
