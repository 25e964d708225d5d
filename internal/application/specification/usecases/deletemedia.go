package usecases

import (
	"context"
	"fmt"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type DeleteMediaCommand struct {
	OrderID    uint
	PositionID uint
	MediaID    uint
}

type DeleteMediaResult struct {
	MediaID uint
	ViewKey string
}

type DeleteMediaUseCase struct {
	specRepo specification.Repository
	logger   logger.Interface
}

func NewDeleteMediaUseCase(
	specRepo specification.Repository,
	logger logger.Interface,
) *DeleteMediaUseCase {
	return &DeleteMediaUseCase{
		specRepo: specRepo,
		logger:   logger,
	}
}

// Execute removes an uploaded asset. The repository cascades its
// annotations; the view falls back to its placeholder on the next load.
func (uc *DeleteMediaUseCase) Execute(ctx context.Context, cmd DeleteMediaCommand) (*DeleteMediaResult, error) {
	uc.logger.Infow("executing delete media use case", "order_id", cmd.OrderID, "media_id", cmd.MediaID)

	if cmd.OrderID == 0 || cmd.PositionID == 0 || cmd.MediaID == 0 {
		return nil, errors.NewValidationError("order ID, position ID and media ID are required")
	}

	spec, err := uc.specRepo.GetByOrderPosition(ctx, cmd.OrderID, cmd.PositionID)
	if err != nil {
		uc.logger.Errorw("failed to load specification", "error", err)
		return nil, errors.NewInternalError("failed to load specification")
	}

	asset, ok := spec.PersistedMediaByID(cmd.MediaID)
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("media %d not found", cmd.MediaID))
	}

	if err := uc.specRepo.DeleteMedia(ctx, cmd.MediaID); err != nil {
		uc.logger.Errorw("failed to delete media", "media_id", cmd.MediaID, "error", err)
		return nil, errors.NewInternalError("failed to delete media")
	}

	uc.logger.Infow("media deleted successfully", "media_id", cmd.MediaID, "view", asset.ViewKey())

	return &DeleteMediaResult{
		MediaID: cmd.MediaID,
		ViewKey: asset.ViewKey().String(),
	}, nil
}
