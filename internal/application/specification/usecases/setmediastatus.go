package usecases

import (
	"context"
	"fmt"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type SetMediaStatusCommand struct {
	OrderID    uint
	PositionID uint
	MediaID    uint
	NewStatus  specification.MediaStatus
}

type SetMediaStatusUseCase struct {
	specRepo      specification.Repository
	ticketCounter OpenTicketCounter
	logger        logger.Interface
}

func NewSetMediaStatusUseCase(
	specRepo specification.Repository,
	ticketCounter OpenTicketCounter,
	logger logger.Interface,
) *SetMediaStatusUseCase {
	return &SetMediaStatusUseCase{
		specRepo:      specRepo,
		ticketCounter: ticketCounter,
		logger:        logger,
	}
}

// Execute transitions an asset between open and resolved. Resolving is
// authoritative here: whatever the client computed, the transition is
// rejected while any open ticket is scoped to the asset's view.
func (uc *SetMediaStatusUseCase) Execute(ctx context.Context, cmd SetMediaStatusCommand) (*specification.MediaAsset, error) {
	uc.logger.Infow("executing set media status use case", "order_id", cmd.OrderID, "media_id", cmd.MediaID, "new_status", cmd.NewStatus)

	if cmd.OrderID == 0 || cmd.PositionID == 0 || cmd.MediaID == 0 {
		return nil, errors.NewValidationError("order ID, position ID and media ID are required")
	}
	if !cmd.NewStatus.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid media status: %s", cmd.NewStatus))
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

	if cmd.NewStatus == specification.MediaStatusResolved {
		open, err := uc.ticketCounter.CountOpenForView(ctx, cmd.OrderID, cmd.PositionID, asset.ViewKey().String())
		if err != nil {
			uc.logger.Errorw("failed to count open tickets", "error", err)
			return nil, errors.NewInternalError("failed to evaluate gating rule")
		}
		if open > 0 {
			uc.logger.Infow("resolve rejected by gating rule", "media_id", cmd.MediaID, "open_tickets", open)
			return nil, errors.NewGatingViolationError(
				fmt.Sprintf("%d open ticket(s) scoped to view %s", open, asset.ViewKey()),
				"close all tickets for this view before resolving",
			)
		}
	}

	if err := asset.ChangeStatus(cmd.NewStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.specRepo.UpdateMedia(ctx, asset); err != nil {
		uc.logger.Errorw("failed to update media status", "media_id", cmd.MediaID, "error", err)
		return nil, errors.NewInternalError("failed to update media status")
	}

	uc.logger.Infow("media status changed successfully", "media_id", cmd.MediaID, "status", cmd.NewStatus)
	return asset, nil
}
