package queries

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves an order and its status timeline by the public
// tracking number. This is the customer-facing lookup; it carries no internal
// identifiers.
type TrackOrderQuery struct {
	trackingNumber order.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query from the raw tracking number
// string. The string must match the tracking number format.
func NewTrackOrderQuery(trackingNumber string) (TrackOrderQuery, error) {
	parsed, err := order.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingNumber: parsed,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q TrackOrderQuery) TrackingNumber() order.TrackingNumber {
	return q.trackingNumber
}

// TrackOrderQueryResponse carries the tracked order together with its status
// timeline.
type TrackOrderQueryResponse struct {
	Order    OrderResponse
	Timeline []TimelineStepResponse
}
