package review

import (
	"context"
	"fmt"
	"sync"

	"cordwain/internal/domain/specification"
	apperrors "cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

// SpecificationSession is the unit the UI loads and saves against: one
// (order, position) specification plus its active view. All mutations go
// to the specification service first; local state only changes once the
// authoritative record is back. Resolve-status requests are gated against
// the ticket registry before any call leaves the session.
type SpecificationSession struct {
	mu         sync.Mutex
	svc        SpecificationService
	registry   *TicketRegistry
	log        logger.Interface
	orderID    uint
	positionID uint
	spec       *specification.Specification
	activeView specification.ViewKey
}

func NewSpecificationSession(
	svc SpecificationService,
	registry *TicketRegistry,
	log logger.Interface,
	orderID, positionID uint,
) (*SpecificationSession, error) {
	if orderID == 0 || positionID == 0 {
		return nil, apperrors.NewValidationError("order and position are required")
	}
	return &SpecificationSession{
		svc:        svc,
		registry:   registry,
		log:        log.Named("spec-session"),
		orderID:    orderID,
		positionID: positionID,
	}, nil
}

func (s *SpecificationSession) OrderID() uint {
	return s.orderID
}

func (s *SpecificationSession) PositionID() uint {
	return s.positionID
}

// Specification returns the loaded aggregate, nil before the first Load.
func (s *SpecificationSession) Specification() *specification.Specification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// Load fetches the specification and re-resolves the active view, keeping
// the previous selection when it is still valid.
func (s *SpecificationSession) Load(ctx context.Context) error {
	spec, err := s.svc.GetSpecification(ctx, s.orderID, s.positionID)
	if err != nil {
		return wrapRequestFailure(err, "failed to load specification")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec = spec
	s.activeView = spec.ActiveView("", s.activeView)
	return nil
}

// ActivateView switches the display to the requested view, falling back
// through the standard precedence chain for invalid requests.
func (s *SpecificationSession) ActivateView(requested specification.ViewKey) (specification.ViewKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return "", apperrors.NewValidationError("specification not loaded")
	}
	s.activeView = s.spec.ActiveView(requested, s.activeView)
	return s.activeView, nil
}

// ActiveView returns the currently displayed view.
func (s *SpecificationSession) ActiveView() specification.ViewKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeView
}

// Asset resolves the media shown for a view: persisted when uploaded,
// otherwise the view's placeholder.
func (s *SpecificationSession) Asset(view specification.ViewKey) (*specification.MediaAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return nil, apperrors.NewValidationError("specification not loaded")
	}
	asset, err := s.spec.Asset(view)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return asset, nil
}

// UploadMedia stores a file for a view. A view showing only a placeholder
// gets a fresh persisted asset in the open state; a view that already has
// an upload is replaced in place, keeping the asset's identity.
func (s *SpecificationSession) UploadMedia(ctx context.Context, view specification.ViewKey, upload Upload) (*specification.MediaAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return nil, apperrors.NewValidationError("specification not loaded")
	}
	if !view.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown view: %s", view))
	}

	existing, hasPersisted := s.spec.PersistedAsset(view)

	var (
		saved *specification.MediaAsset
		err   error
	)
	if hasPersisted {
		saved, err = s.svc.ReplaceMedia(ctx, s.orderID, s.positionID, existing.ID(), upload)
	} else {
		saved, err = s.svc.UploadMedia(ctx, s.orderID, s.positionID, view, upload)
	}
	if err != nil {
		return nil, wrapRequestFailure(err, "failed to upload media")
	}

	if hasPersisted {
		if replaceErr := existing.Replace(saved.URL()); replaceErr != nil {
			s.log.Warnw("failed to apply media replacement locally", "error", replaceErr)
		}
	} else {
		if attachErr := s.spec.AttachMedia(saved.Clone()); attachErr != nil {
			s.log.Warnw("failed to attach uploaded media locally", "error", attachErr)
		}
	}

	return saved, nil
}

// DeleteMedia removes a view's persisted asset. Placeholders are not
// deletable; the attempt fails loudly instead of quietly doing nothing.
func (s *SpecificationSession) DeleteMedia(ctx context.Context, view specification.ViewKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return apperrors.NewValidationError("specification not loaded")
	}

	asset, hasPersisted := s.spec.PersistedAsset(view)
	if !hasPersisted {
		return apperrors.NewValidationError(
			fmt.Sprintf("view %s has no uploaded media", view),
			"placeholder media cannot be deleted",
		)
	}

	if err := s.svc.DeleteMedia(ctx, s.orderID, s.positionID, asset.ID()); err != nil {
		return wrapRequestFailure(err, "failed to delete media")
	}

	if err := s.spec.RemoveMedia(asset.ID()); err != nil {
		s.log.Warnw("failed to remove media locally", "error", err)
	}
	return nil
}

// SetMediaStatus transitions a view's asset between open and resolved.
// The resolve direction is gated: with any open ticket scoped to the view
// the request is rejected before a single byte goes to the store. The
// server re-checks the same rule; its rejection is honored over any stale
// local computation.
func (s *SpecificationSession) SetMediaStatus(ctx context.Context, view specification.ViewKey, next specification.MediaStatus) (*specification.MediaAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return nil, apperrors.NewValidationError("specification not loaded")
	}
	if !next.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid media status: %s", next))
	}

	asset, hasPersisted := s.spec.PersistedAsset(view)
	if !hasPersisted {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("view %s has no uploaded media", view),
			"placeholder media has no status",
		)
	}

	if next == specification.MediaStatusResolved {
		tickets := s.registry.TicketsForOrder(s.orderID)
		if open := OpenTicketCount(tickets, s.orderID, s.positionID, view.String()); open > 0 {
			return nil, apperrors.NewGatingViolationError(
				fmt.Sprintf("%d open ticket(s) scoped to view %s", open, view),
				"close all tickets for this view before resolving",
			)
		}
	}

	updated, err := s.svc.SetMediaStatus(ctx, s.orderID, s.positionID, asset.ID(), next)
	if err != nil {
		// No local mutation: the asset keeps its current status.
		return nil, wrapRequestFailure(err, "failed to change media status")
	}

	if applyErr := asset.ChangeStatus(updated.Status()); applyErr != nil {
		s.log.Warnw("failed to apply media status locally", "error", applyErr)
	}
	return updated, nil
}

// AddAnnotation pins a note to a view's persisted media. Placeholder
// targets and out-of-range coordinates are rejected before any request.
func (s *SpecificationSession) AddAnnotation(ctx context.Context, view specification.ViewKey, x, y float64, note, author string) (*specification.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return nil, apperrors.NewValidationError("specification not loaded")
	}

	asset, hasPersisted := s.spec.PersistedAsset(view)
	if !hasPersisted {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("view %s has no uploaded media", view),
			"annotations require an uploaded media asset",
		)
	}

	// Validate locally before the round trip.
	if _, err := specification.NewAnnotation(asset.ID(), x, y, note, author); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	saved, err := s.svc.AddAnnotation(ctx, s.orderID, s.positionID, asset.ID(), x, y, note, author)
	if err != nil {
		return nil, wrapRequestFailure(err, "failed to add annotation")
	}

	if addErr := s.spec.AddAnnotation(saved); addErr != nil {
		s.log.Warnw("failed to add annotation locally", "error", addErr)
	}
	return saved, nil
}

// RemoveAnnotation deletes one annotation.
func (s *SpecificationSession) RemoveAnnotation(ctx context.Context, annotationID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return apperrors.NewValidationError("specification not loaded")
	}

	if err := s.svc.DeleteAnnotation(ctx, s.orderID, s.positionID, annotationID); err != nil {
		return wrapRequestFailure(err, "failed to delete annotation")
	}

	if err := s.spec.RemoveAnnotation(annotationID); err != nil {
		s.log.Warnw("failed to remove annotation locally", "error", err)
	}
	return nil
}

// Annotations returns the notes pinned to a view's media. A view without
// an upload has no annotations by definition, and notes belonging to
// other views never leak in.
func (s *SpecificationSession) Annotations(view specification.ViewKey) []*specification.Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return nil
	}
	asset, hasPersisted := s.spec.PersistedAsset(view)
	if !hasPersisted {
		return nil
	}
	return s.spec.AnnotationsForMedia(asset.ID())
}

// CanResolveView evaluates the gating rule for UI affordances. Computed
// fresh from the registry on every call.
func (s *SpecificationSession) CanResolveView(view specification.ViewKey) bool {
	tickets := s.registry.TicketsForOrder(s.orderID)
	return CanResolve(tickets, s.orderID, s.positionID, view.String())
}
