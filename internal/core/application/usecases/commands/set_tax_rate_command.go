package commands

import (
	"errors"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/tax"
	"cafe/internal/pkg/guard"
)

var ErrSetTaxRateCommandIsNotConstructed = errors.New(
	"SetTaxRateCommand must be created via NewSetTaxRateCommand constructor",
)

// SetTaxRateCommand represents an admin request to replace the active tax
// rate. The rate applies to orders placed or updated afterwards; existing
// orders keep their snapshotted rate.
type SetTaxRateCommand struct { //nolint:recvcheck //using for validation
	rate tax.Rate
	role identity.Role

	guard guard.ConstructorGuard
}

// NewSetTaxRateCommand creates a command to set the tax rate.
// The rate itself was already validated at construction; negative percentages
// never reach this point.
func NewSetTaxRateCommand(rate tax.Rate, role identity.Role) (SetTaxRateCommand, error) {
	taxCommand := SetTaxRateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taxCommand.setRate(rate),
		taxCommand.setRole(role),
	); err != nil {
		return SetTaxRateCommand{}, err
	}

	return taxCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetTaxRateCommandIsNotConstructed if validation fails.
func (c SetTaxRateCommand) Validate() error {
	return c.guard.Validate(ErrSetTaxRateCommandIsNotConstructed)
}

// Rate returns the rate to activate.
func (c SetTaxRateCommand) Rate() tax.Rate {
	return c.rate
}

// Role returns the caller's role.
func (c SetTaxRateCommand) Role() identity.Role {
	return c.role
}

func (c *SetTaxRateCommand) setRate(rate tax.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	c.rate = rate
	return nil
}

func (c *SetTaxRateCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
