package commands

//go:generate mockgen -source=discount.go -destination=../../../tests/mock/commands/discount_mock.go -package=commandsmock

import (
	"context"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Name        string
	Percentage  *decimal.Decimal
	FixedAmount *decimal.Decimal
}

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, req CreateDiscountRequest) (*billing.Discount, error)
}

type discountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountUseCase(uow shared.UnitOfWork, clk clock.Clock) DiscountCommands {
	return &discountUseCaseImpl{uow: uow, clock: clk}
}

func (uc *discountUseCaseImpl) CreateDiscount(ctx context.Context, req CreateDiscountRequest) (*billing.Discount, error) {
	d, err := billing.NewDiscount(req.Name, req.Percentage, req.FixedAmount, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.RepoErr(tx.Discounts().Create(ctx, d), nil)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
