package usecases

import (
	"context"
	"fmt"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type DeleteAnnotationCommand struct {
	OrderID      uint
	PositionID   uint
	AnnotationID uint
}

type DeleteAnnotationResult struct {
	AnnotationID uint
}

type DeleteAnnotationUseCase struct {
	specRepo specification.Repository
	logger   logger.Interface
}

func NewDeleteAnnotationUseCase(
	specRepo specification.Repository,
	logger logger.Interface,
) *DeleteAnnotationUseCase {
	return &DeleteAnnotationUseCase{
		specRepo: specRepo,
		logger:   logger,
	}
}

func (uc *DeleteAnnotationUseCase) Execute(ctx context.Context, cmd DeleteAnnotationCommand) (*DeleteAnnotationResult, error) {
	uc.logger.Infow("executing delete annotation use case", "order_id", cmd.OrderID, "annotation_id", cmd.AnnotationID)

	if cmd.OrderID == 0 || cmd.PositionID == 0 || cmd.AnnotationID == 0 {
		return nil, errors.NewValidationError("order ID, position ID and annotation ID are required")
	}

	spec, err := uc.specRepo.GetByOrderPosition(ctx, cmd.OrderID, cmd.PositionID)
	if err != nil {
		uc.logger.Errorw("failed to load specification", "error", err)
		return nil, errors.NewInternalError("failed to load specification")
	}

	found := false
	for _, a := range spec.Annotations() {
		if a.ID() == cmd.AnnotationID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewNotFoundError(fmt.Sprintf("annotation %d not found", cmd.AnnotationID))
	}

	if err := uc.specRepo.DeleteAnnotation(ctx, cmd.AnnotationID); err != nil {
		uc.logger.Errorw("failed to delete annotation", "annotation_id", cmd.AnnotationID, "error", err)
		return nil, errors.NewInternalError("failed to delete annotation")
	}

	uc.logger.Infow("annotation deleted successfully", "annotation_id", cmd.AnnotationID)

	return &DeleteAnnotationResult{
		AnnotationID: cmd.AnnotationID,
	}, nil
}
