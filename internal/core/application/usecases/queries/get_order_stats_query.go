package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves order counts grouped by status. Used by the
// stats job for operational visibility; not exposed over the API.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a parameterless query for per-status order
// counts.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStatsResponse carries the number of orders per canonical status plus
// the overall total. Statuses with no orders report zero.
type OrderStatsResponse struct {
	Total    int64
	ByStatus map[string]int64
}
