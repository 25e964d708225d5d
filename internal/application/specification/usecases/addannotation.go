package usecases

import (
	"context"
	"fmt"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type AddAnnotationCommand struct {
	OrderID    uint
	PositionID uint
	MediaID    uint
	X          float64
	Y          float64
	Note       string
	Author     string
}

type AddAnnotationUseCase struct {
	specRepo specification.Repository
	logger   logger.Interface
}

func NewAddAnnotationUseCase(
	specRepo specification.Repository,
	logger logger.Interface,
) *AddAnnotationUseCase {
	return &AddAnnotationUseCase{
		specRepo: specRepo,
		logger:   logger,
	}
}

// Execute pins a note to uploaded media. The target must be a persisted
// asset of this order and position; coordinates are fractions of the
// rendered image.
func (uc *AddAnnotationUseCase) Execute(ctx context.Context, cmd AddAnnotationCommand) (*specification.Annotation, error) {
	uc.logger.Infow("executing add annotation use case", "order_id", cmd.OrderID, "media_id", cmd.MediaID)

	if cmd.OrderID == 0 || cmd.PositionID == 0 {
		return nil, errors.NewValidationError("order ID and position ID are required")
	}

	spec, err := uc.specRepo.GetByOrderPosition(ctx, cmd.OrderID, cmd.PositionID)
	if err != nil {
		uc.logger.Errorw("failed to load specification", "error", err)
		return nil, errors.NewInternalError("failed to load specification")
	}

	if _, ok := spec.PersistedMediaByID(cmd.MediaID); !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("media %d not found", cmd.MediaID))
	}

	annotation, err := specification.NewAnnotation(cmd.MediaID, cmd.X, cmd.Y, cmd.Note, cmd.Author)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.specRepo.SaveAnnotation(ctx, cmd.OrderID, cmd.PositionID, annotation); err != nil {
		uc.logger.Errorw("failed to save annotation", "error", err)
		return nil, errors.NewInternalError("failed to save annotation")
	}

	uc.logger.Infow("annotation added successfully", "annotation_id", annotation.ID(), "media_id", cmd.MediaID)
	return annotation, nil
}
