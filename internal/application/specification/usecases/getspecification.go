package usecases

import (
	"context"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type GetSpecificationQuery struct {
	OrderID    uint
	PositionID uint
}

type GetSpecificationUseCase struct {
	specRepo specification.Repository
	logger   logger.Interface
}

func NewGetSpecificationUseCase(
	specRepo specification.Repository,
	logger logger.Interface,
) *GetSpecificationUseCase {
	return &GetSpecificationUseCase{
		specRepo: specRepo,
		logger:   logger,
	}
}

func (uc *GetSpecificationUseCase) Execute(ctx context.Context, query GetSpecificationQuery) (*specification.Specification, error) {
	if query.OrderID == 0 || query.PositionID == 0 {
		return nil, errors.NewValidationError("order ID and position ID are required")
	}

	// A position without any uploads is a valid, empty specification.
	spec, err := uc.specRepo.GetByOrderPosition(ctx, query.OrderID, query.PositionID)
	if err != nil {
		uc.logger.Errorw("failed to load specification", "order_id", query.OrderID, "position_id", query.PositionID, "error", err)
		return nil, errors.NewInternalError("failed to load specification")
	}

	return spec, nil
}
