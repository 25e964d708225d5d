package specification

import "context"

// Repository is the persistence port for specification aggregates. A
// specification has no row of its own; it is derived from the media and
// annotation rows sharing its (order, position) pair.
type Repository interface {
	// GetByOrderPosition loads the aggregate; a position without any
	// media yields an empty specification, never an error.
	GetByOrderPosition(ctx context.Context, orderID, positionID uint) (*Specification, error)

	// SaveMedia inserts a new persisted asset and assigns its ID.
	SaveMedia(ctx context.Context, orderID, positionID uint, asset *MediaAsset) error

	// UpdateMedia persists URL and status changes of an existing asset.
	UpdateMedia(ctx context.Context, asset *MediaAsset) error

	// DeleteMedia removes an asset and cascades its annotations.
	DeleteMedia(ctx context.Context, mediaID uint) error

	// SaveAnnotation inserts an annotation and assigns its ID.
	SaveAnnotation(ctx context.Context, orderID, positionID uint, annotation *Annotation) error

	// DeleteAnnotation removes a single annotation.
	DeleteAnnotation(ctx context.Context, annotationID uint) error
}
