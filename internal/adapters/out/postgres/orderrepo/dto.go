// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/tax"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line snapshots live in their own table; see OrderLineDTO.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index"`
	Tip        float64
	TaxRate    float64
	TotalPrice float64
	Status     int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one persisted line snapshot of an order.
// Lines are value objects: they are replaced wholesale when the order is
// updated, never mutated in place.
type OrderLineDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	ItemID   uuid.UUID `gorm:"type:uuid"`
	ItemName string
	Price    float64
	Amount   int
}

// TableName specifies the database table name for order line snapshots.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Returns the order row and its line rows separately; the repository persists
// them in the same transaction.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))

	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:  aggregate.ID().Bytes(),
			ItemID:   line.ItemID().Bytes(),
			ItemName: line.ItemName(),
			Price:    line.Price(),
			Amount:   line.Amount(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Tip:        aggregate.Tip(),
		TaxRate:    aggregate.TaxRate().Percent(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
	}, lineDTOs
}

// toDomain converts database DTOs to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreOrderLine(itemID, lineDTO.ItemName, lineDTO.Price, lineDTO.Amount)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	rate, err := tax.NewRate(dto.TaxRate)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Name, lines, rate, dto.Tip, dto.TotalPrice, order.Status(dto.Status))
}
