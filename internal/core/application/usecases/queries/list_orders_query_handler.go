package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Returns the requested page of orders
// plus a pagination block computed from the total matching row count. A page
// past the end of the result set yields an empty page, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := ""
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		where = "WHERE status = ?"
		args = append(args, status.String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT COUNT(*) FROM orders %s`, where), args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()

	// SortBy and SortOrder come from the constructor's whitelist, never from
	// raw client input.
	listSQL := fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, orderColumns, where, query.SortBy(), query.SortOrder())

	rows, err := h.db.WithContext(ctx).Raw(listSQL, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	totalPages := int(total) / query.Limit()
	if int(total)%query.Limit() != 0 {
		totalPages++
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Pagination: PaginationResponse{
			Page:       query.Page(),
			Limit:      query.Limit(),
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
