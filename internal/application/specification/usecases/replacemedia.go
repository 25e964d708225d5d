package usecases

import (
	"context"
	"fmt"
	"io"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type ReplaceMediaCommand struct {
	OrderID     uint
	PositionID  uint
	MediaID     uint
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type ReplaceMediaUseCase struct {
	specRepo   specification.Repository
	mediaStore MediaStore
	logger     logger.Interface
}

func NewReplaceMediaUseCase(
	specRepo specification.Repository,
	mediaStore MediaStore,
	logger logger.Interface,
) *ReplaceMediaUseCase {
	return &ReplaceMediaUseCase{
		specRepo:   specRepo,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

// Execute swaps the file behind an existing asset. The asset keeps its id,
// view and status; annotations stay attached to it.
func (uc *ReplaceMediaUseCase) Execute(ctx context.Context, cmd ReplaceMediaCommand) (*specification.MediaAsset, error) {
	uc.logger.Infow("executing replace media use case", "order_id", cmd.OrderID, "media_id", cmd.MediaID)

	if cmd.OrderID == 0 || cmd.PositionID == 0 || cmd.MediaID == 0 {
		return nil, errors.NewValidationError("order ID, position ID and media ID are required")
	}
	if cmd.Reader == nil || cmd.Size <= 0 {
		return nil, errors.NewValidationError("media file is required")
	}
	if len(cmd.FileName) == 0 {
		return nil, errors.NewValidationError("file name is required")
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

	objectName := MediaObjectName(cmd.OrderID, cmd.PositionID, asset.ViewKey().String(), cmd.FileName)
	url, err := uc.mediaStore.Put(ctx, objectName, cmd.Reader, cmd.Size, cmd.ContentType)
	if err != nil {
		uc.logger.Errorw("failed to store media object", "object", objectName, "error", err)
		return nil, errors.NewInternalError("failed to store media file")
	}

	if err := asset.Replace(url); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.specRepo.UpdateMedia(ctx, asset); err != nil {
		uc.logger.Errorw("failed to update media record", "media_id", cmd.MediaID, "error", err)
		return nil, errors.NewInternalError("failed to update media record")
	}

	uc.logger.Infow("media replaced successfully", "media_id", asset.ID())
	return asset, nil
}
