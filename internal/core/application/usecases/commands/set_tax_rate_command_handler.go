package commands

import (
	"context"

	"cafe/internal/pkg/errs"
)

// SetTaxRateCommandHandler handles tax rate replacement.
// Only admins may change the rate. There is a single active rate; setting a
// new one overwrites the old with no version history.
type SetTaxRateCommandHandler struct {
	uowFactory TaxUoWFactory
}

// NewSetTaxRateCommandHandler creates a handler for tax rate operations.
func NewSetTaxRateCommandHandler(uowFactory TaxUoWFactory) SetTaxRateCommandHandler {
	return SetTaxRateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set tax rate command.
func (h *SetTaxRateCommandHandler) Handle(ctx context.Context, cmd SetTaxRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().CanSetTaxRate() {
		return errs.NewForbiddenError("set tax rate", cmd.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TaxRateRepository().Set(ctx, cmd.Rate()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
