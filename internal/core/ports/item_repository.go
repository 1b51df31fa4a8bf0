package ports

import (
	"context"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
// Provides methods for storing, retrieving, and locking catalog items.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	// Fails if an item with the same name already exists.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *item.Item) error

	// Delete removes an item aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetForUpdate retrieves an item and takes a row lock on it for the
	// duration of the current transaction. Used by the fulfillment flow
	// to serialize check-then-decrement on the same item.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByName retrieves an item by its unique display name.
	GetByName(ctx context.Context, name string) (*item.Item, error)
}
