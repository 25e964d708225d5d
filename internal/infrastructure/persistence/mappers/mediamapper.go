package mappers

import (
	"fmt"
	"time"

	"cordwain/internal/domain/specification"
	"cordwain/internal/infrastructure/persistence/models"
)

// MediaMapper handles the conversion between specification media/annotation
// domain entities and persistence models. Placeholder assets are derived,
// never stored, so only persisted assets ever pass through here.
type MediaMapper interface {
	// ToModel converts a persisted media asset to a persistence model.
	ToModel(orderID, positionID uint, asset *specification.MediaAsset) (*models.MediaModel, error)

	// ToDomain converts a media persistence model to a domain entity.
	ToDomain(model *models.MediaModel) (*specification.MediaAsset, error)

	// AnnotationToModel converts an annotation to a persistence model.
	AnnotationToModel(orderID, positionID uint, a *specification.Annotation) *models.AnnotationModel

	// AnnotationToDomain converts an annotation persistence model to a domain entity.
	AnnotationToDomain(model *models.AnnotationModel) (*specification.Annotation, error)
}

// MediaMapperImpl is the concrete implementation of MediaMapper.
type MediaMapperImpl struct{}

// NewMediaMapper creates a new MediaMapper.
func NewMediaMapper() MediaMapper {
	return &MediaMapperImpl{}
}

// ToModel converts a persisted media asset to a persistence model.
func (m *MediaMapperImpl) ToModel(orderID, positionID uint, asset *specification.MediaAsset) (*models.MediaModel, error) {
	if !asset.IsPersisted() {
		return nil, fmt.Errorf("placeholder media cannot be persisted")
	}

	return &models.MediaModel{
		ID:         asset.ID(),
		OrderID:    orderID,
		PositionID: positionID,
		ViewKey:    asset.ViewKey().String(),
		Status:     asset.Status().String(),
		URL:        asset.URL(),
		CreatedAt:  asset.CreatedAt().UnixMilli(),
		UpdatedAt:  asset.UpdatedAt().UnixMilli(),
	}, nil
}

// ToDomain converts a media persistence model to a domain entity.
func (m *MediaMapperImpl) ToDomain(model *models.MediaModel) (*specification.MediaAsset, error) {
	status, err := specification.NewMediaStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid media status (id=%d): %w", model.ID, err)
	}

	return specification.ReconstructMediaAsset(
		model.ID,
		specification.ViewKey(model.ViewKey),
		status,
		model.URL,
		mediaConvertMillisToTime(model.CreatedAt),
		mediaConvertMillisToTime(model.UpdatedAt),
	)
}

// AnnotationToModel converts an annotation to a persistence model.
// Order and position are denormalized onto the row so per-position queries
// need no join through the media table.
func (m *MediaMapperImpl) AnnotationToModel(orderID, positionID uint, a *specification.Annotation) *models.AnnotationModel {
	return &models.AnnotationModel{
		ID:         a.ID(),
		MediaID:    a.MediaID(),
		OrderID:    orderID,
		PositionID: positionID,
		X:          a.X(),
		Y:          a.Y(),
		Note:       a.Note(),
		Author:     a.Author(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

// AnnotationToDomain converts an annotation persistence model to a domain entity.
func (m *MediaMapperImpl) AnnotationToDomain(model *models.AnnotationModel) (*specification.Annotation, error) {
	return specification.ReconstructAnnotation(
		model.ID,
		model.MediaID,
		model.X,
		model.Y,
		model.Note,
		model.Author,
		mediaConvertMillisToTime(model.CreatedAt),
	)
}

func mediaConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
