package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
)

// GetStatusHistoryQuery retrieves the raw status history ledger of an order.
type GetStatusHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a query for an order's status history.
func NewGetStatusHistoryQuery(orderID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}

	return GetStatusHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusHistoryQueryIsNotConstructed if validation fails.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history to retrieve.
func (q GetStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StatusChangeResponse is the read model of one raw ledger entry.
// PreviousStatus is nil exactly for the creation entry.
type StatusChangeResponse struct {
	Seq            int
	PreviousStatus *string
	NewStatus      string
	ChangedAt      time.Time
	Notes          string
}
