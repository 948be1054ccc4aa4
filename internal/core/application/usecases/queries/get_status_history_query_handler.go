package queries

import (
	"context"

	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler retrieves an order's raw ledger entries from
// the database.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for status history
// queries.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist; an existing order without ledger entries yields an empty
// slice.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusChangeResponse, error) {
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

	entries := make([]StatusChangeResponse, 0, len(history))
	for _, entry := range history {
		var previousStatus *string
		if prev := entry.PreviousStatus(); prev != nil {
			s := prev.String()
			previousStatus = &s
		}

		entries = append(entries, StatusChangeResponse{
			Seq:            entry.Seq(),
			PreviousStatus: previousStatus,
			NewStatus:      entry.NewStatus().String(),
			ChangedAt:      entry.ChangedAt(),
			Notes:          entry.Notes(),
		})
	}

	return entries, nil
}
