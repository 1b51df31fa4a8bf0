package taxrepo

import (
	"context"
	"errors"

	"cafe/internal/core/domain/model/tax"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaxRateRepository implements TaxRateRepository using GORM.
type GormTaxRateRepository struct {
	db *gorm.DB
}

// NewGormTaxRateRepository creates a new GORM tax rate repository.
func NewGormTaxRateRepository(db *gorm.DB) *GormTaxRateRepository {
	return &GormTaxRateRepository{db: db}
}

// Get retrieves the active tax rate.
// When no rate has ever been set it returns the zero rate, never an error.
func (r *GormTaxRateRepository) Get(ctx context.Context) (tax.Rate, error) {
	var dto TaxRateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", taxRateRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tax.ZeroRate(), nil
		}
		return tax.Rate{}, err
	}

	return tax.NewRate(dto.Rate)
}

// Set replaces the active tax rate, creating the row on first use.
func (r *GormTaxRateRepository) Set(ctx context.Context, rate tax.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	dto := TaxRateDTO{ID: taxRateRowID, Rate: rate.Percent()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate"}),
		}).
		Create(&dto).Error
}
