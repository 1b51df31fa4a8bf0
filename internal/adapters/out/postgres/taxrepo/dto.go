// Package taxrepo persists the single active tax rate.
// The table holds at most one row; setting a rate upserts it.
package taxrepo

// taxRateRowID is the fixed primary key of the single tax_rates row.
const taxRateRowID = 1

// TaxRateDTO represents the database structure for the active tax rate.
type TaxRateDTO struct {
	ID   int `gorm:"primaryKey"`
	Rate float64
}

// TableName specifies the database table name for the tax rate.
func (TaxRateDTO) TableName() string {
	return "tax_rates"
}
