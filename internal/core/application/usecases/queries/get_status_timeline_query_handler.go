package queries

import (
	"context"

	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatusTimelineQueryHandler retrieves an order's ledger entries and
// projects them into display-ready timeline steps.
type GetStatusTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusTimelineQueryHandler creates a handler for status timeline
// queries.
func NewGetStatusTimelineQueryHandler(db *gorm.DB) GetStatusTimelineQueryHandler {
	return GetStatusTimelineQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist; an existing order without ledger entries yields an empty
// timeline.
func (h GetStatusTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetStatusTimelineQuery,
) ([]TimelineStepResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	exists, err := orderExists(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	history, err := loadStatusHistory(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	return timelineResponse(history), nil
}
