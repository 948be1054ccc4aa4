// Package ports defines repository and unit-of-work interfaces for the order
// tracking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// ErrDuplicateTrackingNumber is returned when an order's tracking number
// collides with an existing one. Order creation retries generation on this
// error.
var ErrDuplicateTrackingNumber = errors.New("tracking number already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with ErrDuplicateTrackingNumber if the tracking number is
	// already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row-level lock on it for
	// the remainder of the surrounding transaction. Status updates use this
	// to serialize the read-validate-write-append sequence per order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber order.TrackingNumber) (*order.Order, error)

	// Delete removes an order permanently. Its status history is removed
	// with it through the storage layer's cascade rule.
	Delete(ctx context.Context, id kernel.UUID) error
}
