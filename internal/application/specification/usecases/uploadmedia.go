package usecases

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type UploadMediaCommand struct {
	OrderID     uint
	PositionID  uint
	ViewKey     string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadMediaUseCase struct {
	specRepo   specification.Repository
	mediaStore MediaStore
	logger     logger.Interface
}

func NewUploadMediaUseCase(
	specRepo specification.Repository,
	mediaStore MediaStore,
	logger logger.Interface,
) *UploadMediaUseCase {
	return &UploadMediaUseCase{
		specRepo:   specRepo,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, cmd UploadMediaCommand) (*specification.MediaAsset, error) {
	uc.logger.Infow("executing upload media use case", "order_id", cmd.OrderID, "position_id", cmd.PositionID, "view", cmd.ViewKey)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid upload media command", "error", err)
		return nil, err
	}

	view := specification.ViewKey(cmd.ViewKey)

	spec, err := uc.specRepo.GetByOrderPosition(ctx, cmd.OrderID, cmd.PositionID)
	if err != nil {
		uc.logger.Errorw("failed to load specification", "error", err)
		return nil, errors.NewInternalError("failed to load specification")
	}
	if _, exists := spec.PersistedAsset(view); exists {
		return nil, errors.NewConflictError(fmt.Sprintf("view %s already has uploaded media", view))
	}

	objectName := MediaObjectName(cmd.OrderID, cmd.PositionID, cmd.ViewKey, cmd.FileName)
	url, err := uc.mediaStore.Put(ctx, objectName, cmd.Reader, cmd.Size, cmd.ContentType)
	if err != nil {
		uc.logger.Errorw("failed to store media object", "object", objectName, "error", err)
		return nil, errors.NewInternalError("failed to store media file")
	}

	asset, err := specification.NewMediaAsset(view, url)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.specRepo.SaveMedia(ctx, cmd.OrderID, cmd.PositionID, asset); err != nil {
		uc.logger.Errorw("failed to save media record", "error", err)
		if removeErr := uc.mediaStore.Remove(ctx, objectName); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned media object", "object", objectName, "error", removeErr)
		}
		return nil, errors.NewInternalError("failed to save media record")
	}

	uc.logger.Infow("media uploaded successfully", "media_id", asset.ID(), "view", cmd.ViewKey)
	return asset, nil
}

func (uc *UploadMediaUseCase) validateCommand(cmd UploadMediaCommand) error {
	if cmd.OrderID == 0 || cmd.PositionID == 0 {
		return errors.NewValidationError("order ID and position ID are required")
	}

	if !specification.ViewKey(cmd.ViewKey).IsValid() {
		return errors.NewValidationError(fmt.Sprintf("unknown view: %s", cmd.ViewKey))
	}

	if cmd.Reader == nil || cmd.Size <= 0 {
		return errors.NewValidationError("media file is required")
	}

	if len(cmd.FileName) == 0 {
		return errors.NewValidationError("file name is required")
	}

	return nil
}

// MediaObjectName derives the storage key for an upload. The random
// segment gives every replacement a fresh URL, so cached copies of the
// old file are never served for the new one.
func MediaObjectName(orderID, positionID uint, viewKey, fileName string) string {
	return fmt.Sprintf("orders/%d/positions/%d/%s/%s%s", orderID, positionID, viewKey, uuid.NewString(), path.Ext(fileName))
}
