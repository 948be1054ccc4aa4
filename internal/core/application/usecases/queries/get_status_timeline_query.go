package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetStatusTimelineQueryIsNotConstructed = errors.New(
		"GetStatusTimelineQuery must be created via NewGetStatusTimelineQuery constructor",
	)
)

// GetStatusTimelineQuery retrieves an order's status history projected as a
// display-ready timeline.
type GetStatusTimelineQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusTimelineQuery creates a query for an order's status timeline.
func NewGetStatusTimelineQuery(orderID kernel.UUID) (GetStatusTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusTimelineQuery{}, err
	}

	return GetStatusTimelineQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusTimelineQueryIsNotConstructed if validation fails.
func (q GetStatusTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusTimelineQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose timeline to retrieve.
func (q GetStatusTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}
