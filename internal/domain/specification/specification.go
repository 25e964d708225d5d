package specification

import (
	"fmt"
)

// Specification is the review record for one order line item. It aggregates
// the persisted media per view and the annotations pinned to that media.
// It comes into existence lazily with the first upload for its position and
// is never deleted on its own.
type Specification struct {
	orderID     uint
	positionID  uint
	media       map[ViewKey]*MediaAsset
	annotations []*Annotation
}

func NewSpecification(orderID, positionID uint) (*Specification, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if positionID == 0 {
		return nil, fmt.Errorf("position ID is required")
	}

	return &Specification{
		orderID:     orderID,
		positionID:  positionID,
		media:       make(map[ViewKey]*MediaAsset),
		annotations: []*Annotation{},
	}, nil
}

// ReconstructSpecification rebuilds the aggregate from storage. Only
// persisted assets may be supplied; placeholders are derived, never stored.
func ReconstructSpecification(
	orderID, positionID uint,
	media []*MediaAsset,
	annotations []*Annotation,
) (*Specification, error) {
	spec, err := NewSpecification(orderID, positionID)
	if err != nil {
		return nil, err
	}

	for _, asset := range media {
		if err := spec.AttachMedia(asset); err != nil {
			return nil, err
		}
	}

	for _, a := range annotations {
		if a == nil || a.ID() == 0 {
			return nil, fmt.Errorf("reconstructed annotation must carry an ID")
		}
		spec.annotations = append(spec.annotations, a)
	}

	return spec, nil
}

func (s *Specification) OrderID() uint {
	return s.orderID
}

func (s *Specification) PositionID() uint {
	return s.positionID
}

// Asset returns the media to display for a view: the persisted asset when
// one exists, otherwise the view's deterministic placeholder.
func (s *Specification) Asset(view ViewKey) (*MediaAsset, error) {
	if !view.IsValid() {
		return nil, fmt.Errorf("invalid view key: %s", view)
	}
	if asset, ok := s.media[view]; ok {
		return asset, nil
	}
	return PlaceholderAsset(view), nil
}

// PersistedAsset returns the uploaded asset for a view, if any.
func (s *Specification) PersistedAsset(view ViewKey) (*MediaAsset, bool) {
	asset, ok := s.media[view]
	return asset, ok
}

// PersistedMediaByID looks a persisted asset up by its id.
func (s *Specification) PersistedMediaByID(mediaID uint) (*MediaAsset, bool) {
	for _, asset := range s.media {
		if asset.ID() == mediaID {
			return asset, true
		}
	}
	return nil, false
}

// PersistedViews returns, in catalog order, the views that have uploads.
func (s *Specification) PersistedViews() []ViewKey {
	var views []ViewKey
	for _, v := range viewCatalog {
		if _, ok := s.media[v]; ok {
			views = append(views, v)
		}
	}
	return views
}

// ActiveView resolves the view to display for this specification.
func (s *Specification) ActiveView(requested, previous ViewKey) ViewKey {
	return ActiveView(requested, previous, s.PersistedViews())
}

// AttachMedia adds a persisted asset to its view slot. At most one
// persisted asset may exist per view.
func (s *Specification) AttachMedia(asset *MediaAsset) error {
	if asset == nil {
		return fmt.Errorf("media asset cannot be nil")
	}
	if !asset.IsPersisted() {
		return fmt.Errorf("placeholder media cannot be attached")
	}
	if _, exists := s.media[asset.ViewKey()]; exists {
		return fmt.Errorf("view %s already has persisted media", asset.ViewKey())
	}
	s.media[asset.ViewKey()] = asset
	return nil
}

// RemoveMedia detaches a persisted asset and drops all annotations pinned
// to it.
func (s *Specification) RemoveMedia(mediaID uint) error {
	asset, ok := s.PersistedMediaByID(mediaID)
	if !ok {
		return fmt.Errorf("media %d not found", mediaID)
	}
	delete(s.media, asset.ViewKey())

	kept := s.annotations[:0]
	for _, a := range s.annotations {
		if a.MediaID() != mediaID {
			kept = append(kept, a)
		}
	}
	s.annotations = kept
	return nil
}

// AddAnnotation pins an annotation to one of this specification's persisted
// assets. Placeholder targets are invalid by construction: a placeholder
// never has an id that PersistedMediaByID could find.
func (s *Specification) AddAnnotation(a *Annotation) error {
	if a == nil {
		return fmt.Errorf("annotation cannot be nil")
	}
	if _, ok := s.PersistedMediaByID(a.MediaID()); !ok {
		return fmt.Errorf("annotations require a persisted media asset")
	}
	s.annotations = append(s.annotations, a)
	return nil
}

// RemoveAnnotation deletes an annotation by id.
func (s *Specification) RemoveAnnotation(annotationID uint) error {
	for i, a := range s.annotations {
		if a.ID() == annotationID {
			s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("annotation %d not found", annotationID)
}

// AnnotationsForMedia returns the annotations pinned to one media asset.
// Rendering must always go through this filter so switching views never
// shows another asset's notes.
func (s *Specification) AnnotationsForMedia(mediaID uint) []*Annotation {
	var result []*Annotation
	for _, a := range s.annotations {
		if a.MediaID() == mediaID {
			result = append(result, a)
		}
	}
	return result
}

// Annotations returns a copy of all annotations.
func (s *Specification) Annotations() []*Annotation {
	annotations := make([]*Annotation, len(s.annotations))
	copy(annotations, s.annotations)
	return annotations
}
