package specification

import (
	"fmt"
	"time"

	"cordwain/internal/shared/biztime"
)

// MediaStatus is the review state of a media asset.
type MediaStatus string

const (
	MediaStatusOpen     MediaStatus = "open"
	MediaStatusResolved MediaStatus = "resolved"
)

func (s MediaStatus) String() string {
	return string(s)
}

func (s MediaStatus) IsValid() bool {
	return s == MediaStatusOpen || s == MediaStatusResolved
}

func NewMediaStatus(s string) (MediaStatus, error) {
	status := MediaStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid media status: %s", s)
	}
	return status, nil
}

// MediaKind tags the two shapes a media asset can take. Synthesized
// placeholders and persisted uploads must never be confused: every
// mutating operation switches on this tag before touching the asset.
type MediaKind string

const (
	MediaPersisted   MediaKind = "persisted"
	MediaPlaceholder MediaKind = "placeholder"
)

// MediaAsset is either a persisted upload for a view or a synthesized
// placeholder standing in for a view with no upload yet. Placeholders have
// no id, no status transitions, and cannot be replaced or deleted.
type MediaAsset struct {
	kind      MediaKind
	id        uint
	viewKey   ViewKey
	status    MediaStatus
	url       string
	createdAt time.Time
	updatedAt time.Time
}

// NewMediaAsset creates a persisted asset for a freshly uploaded file.
// New uploads always start in the open state.
func NewMediaAsset(viewKey ViewKey, url string) (*MediaAsset, error) {
	if !viewKey.IsValid() {
		return nil, fmt.Errorf("invalid view key: %s", viewKey)
	}
	if len(url) == 0 {
		return nil, fmt.Errorf("media URL is required")
	}

	now := biztime.NowUTC()
	return &MediaAsset{
		kind:      MediaPersisted,
		viewKey:   viewKey,
		status:    MediaStatusOpen,
		url:       url,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMediaAsset rebuilds a persisted asset from storage.
func ReconstructMediaAsset(
	id uint,
	viewKey ViewKey,
	status MediaStatus,
	url string,
	createdAt, updatedAt time.Time,
) (*MediaAsset, error) {
	if id == 0 {
		return nil, fmt.Errorf("media ID cannot be zero")
	}
	if !viewKey.IsValid() {
		return nil, fmt.Errorf("invalid view key: %s", viewKey)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid media status: %s", status)
	}

	return &MediaAsset{
		kind:      MediaPersisted,
		id:        id,
		viewKey:   viewKey,
		status:    status,
		url:       url,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// PlaceholderAsset synthesizes the stand-in asset for a view without an
// upload. The visual is derived from the view's catalog index, so the same
// view always yields the same placeholder.
func PlaceholderAsset(viewKey ViewKey) *MediaAsset {
	idx := viewKey.Index()
	if idx < 0 {
		idx = 0
	}
	return &MediaAsset{
		kind:    MediaPlaceholder,
		viewKey: viewKey,
		status:  MediaStatusOpen,
		url:     fmt.Sprintf("/static/placeholders/view-%02d.svg", idx+1),
	}
}

func (m *MediaAsset) Kind() MediaKind {
	return m.kind
}

// IsPersisted reports whether the asset is a real upload.
func (m *MediaAsset) IsPersisted() bool {
	return m.kind == MediaPersisted
}

func (m *MediaAsset) ID() uint {
	return m.id
}

func (m *MediaAsset) ViewKey() ViewKey {
	return m.viewKey
}

func (m *MediaAsset) Status() MediaStatus {
	return m.status
}

func (m *MediaAsset) URL() string {
	return m.url
}

func (m *MediaAsset) CreatedAt() time.Time {
	return m.createdAt
}

func (m *MediaAsset) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *MediaAsset) SetID(id uint) error {
	if m.kind != MediaPersisted {
		return fmt.Errorf("placeholder media cannot carry an ID")
	}
	if m.id != 0 {
		return fmt.Errorf("media ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("media ID cannot be zero")
	}
	m.id = id
	return nil
}

// Replace swaps the stored file for a new upload. The asset keeps its
// identity; only the URL changes.
func (m *MediaAsset) Replace(url string) error {
	if m.kind != MediaPersisted {
		return fmt.Errorf("placeholder media cannot be replaced")
	}
	if len(url) == 0 {
		return fmt.Errorf("media URL is required")
	}
	m.url = url
	m.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus transitions the review status. Only open<->resolved exists;
// placeholders have no status to change.
func (m *MediaAsset) ChangeStatus(next MediaStatus) error {
	if m.kind != MediaPersisted {
		return fmt.Errorf("placeholder media has no status")
	}
	if !next.IsValid() {
		return fmt.Errorf("invalid media status: %s", next)
	}
	if m.status == next {
		return nil
	}
	m.status = next
	m.updatedAt = biztime.NowUTC()
	return nil
}

// Clone returns an independent copy.
func (m *MediaAsset) Clone() *MediaAsset {
	clone := *m
	return &clone
}
