package ports

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// ErrStatusChangeRecordingFailed marks a failed append to the status history
// ledger. Callers treat it as non-fatal relative to the primary status
// mutation: the order update stands, the missing audit entry is logged.
var ErrStatusChangeRecordingFailed = errors.New("failed to record status change")

// StatusHistoryRepository defines the persistence contract for the
// append-only status history ledger.
//
// Entries are immutable once appended; the only way they disappear is the
// cascade delete of their owning order.
type StatusHistoryRepository interface {
	// Append persists a new ledger entry. Failures are reported wrapped in
	// ErrStatusChangeRecordingFailed so callers can apply best-effort
	// semantics.
	Append(ctx context.Context, change *order.StatusChange) error

	// GetByOrderID retrieves all entries for an order in chain order
	// (sequence ascending, which is also chronological). Returns an empty
	// slice when the order has no entries.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error)

	// GetLatest retrieves the most recent entry for an order, or an
	// ObjectNotFoundError if no entries exist.
	GetLatest(ctx context.Context, orderID kernel.UUID) (*order.StatusChange, error)
}
