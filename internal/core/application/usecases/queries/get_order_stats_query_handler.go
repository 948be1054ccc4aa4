package queries

import (
	"context"

	"tracking/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status directly in the
// database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order stats queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Every canonical status appears in the result,
// with a zero count when no orders hold it.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return OrderStatsResponse{}, err
	}
	defer rows.Close()

	stats := OrderStatsResponse{
		ByStatus: map[string]int64{
			order.Pending.String():   0,
			order.InTransit.String(): 0,
			order.Delivered.String(): 0,
			order.Canceled.String():  0,
		},
	}

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return OrderStatsResponse{}, err
		}

		stats.ByStatus[status] = count
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return OrderStatsResponse{}, err
	}

	return stats, nil
}
