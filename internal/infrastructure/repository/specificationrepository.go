package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cordwain/internal/domain/specification"
	"cordwain/internal/infrastructure/persistence/mappers"
	"cordwain/internal/infrastructure/persistence/models"
	db "cordwain/internal/shared/db"
)

// SpecificationRepository persists specification aggregates. The aggregate
// has no row of its own; it is assembled from the media and annotation rows
// sharing an (order, position) pair.
type SpecificationRepository struct {
	db     *gorm.DB
	mapper mappers.MediaMapper
}

func NewSpecificationRepository(db *gorm.DB) *SpecificationRepository {
	return &SpecificationRepository{
		db:     db,
		mapper: mappers.NewMediaMapper(),
	}
}

func (r *SpecificationRepository) GetByOrderPosition(
	ctx context.Context,
	orderID, positionID uint,
) (*specification.Specification, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var mediaModels []models.MediaModel
	if err := tx.
		Where("order_id = ? AND position_id = ?", orderID, positionID).
		Order("created_at ASC").
		Find(&mediaModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load specification media: %w", err)
	}

	media := make([]*specification.MediaAsset, len(mediaModels))
	for i, model := range mediaModels {
		asset, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		media[i] = asset
	}

	var annotationModels []models.AnnotationModel
	if err := tx.
		Where("order_id = ? AND position_id = ?", orderID, positionID).
		Order("created_at ASC").
		Find(&annotationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load annotations: %w", err)
	}

	annotations := make([]*specification.Annotation, len(annotationModels))
	for i, model := range annotationModels {
		a, err := r.mapper.AnnotationToDomain(&model)
		if err != nil {
			return nil, err
		}
		annotations[i] = a
	}

	return specification.ReconstructSpecification(orderID, positionID, media, annotations)
}

func (r *SpecificationRepository) SaveMedia(
	ctx context.Context,
	orderID, positionID uint,
	asset *specification.MediaAsset,
) error {
	model, err := r.mapper.ToModel(orderID, positionID, asset)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}

	if err := asset.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SpecificationRepository) UpdateMedia(ctx context.Context, asset *specification.MediaAsset) error {
	if asset.ID() == 0 {
		return fmt.Errorf("media ID is required")
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.MediaModel{}).
		Where("id = ?", asset.ID()).
		Updates(map[string]interface{}{
			"status":     asset.Status().String(),
			"url":        asset.URL(),
			"updated_at": asset.UpdatedAt().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update media: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *SpecificationRepository) DeleteMedia(ctx context.Context, mediaID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		// Annotations never outlive their media.
		if err := tx.
			Where("media_id = ?", mediaID).
			Delete(&models.AnnotationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete annotations: %w", err)
		}

		result := tx.Delete(&models.MediaModel{}, mediaID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete media: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("media not found")
		}
		return nil
	})
}

func (r *SpecificationRepository) SaveAnnotation(
	ctx context.Context,
	orderID, positionID uint,
	annotation *specification.Annotation,
) error {
	model := r.mapper.AnnotationToModel(orderID, positionID, annotation)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}

	if err := annotation.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SpecificationRepository) DeleteAnnotation(ctx context.Context, annotationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AnnotationModel{}, annotationID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete annotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("annotation not found")
	}

	return nil
}
