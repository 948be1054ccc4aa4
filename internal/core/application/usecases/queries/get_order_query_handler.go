package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the requested ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id = ?
	`, orderColumns), query.OrderID().Bytes()).Row()

	orderResp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	return orderResp, nil
}
