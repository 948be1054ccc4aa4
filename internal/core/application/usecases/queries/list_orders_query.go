package queries

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultSortBy    = "created_at"
	defaultSortOrder = "DESC"
)

// sortColumns whitelists the client-facing sort keys and maps them to the
// columns they order by. Anything outside the table falls back to the
// default; the mapped value is interpolated into SQL, so it must come from
// here and nowhere else.
func sortColumns() map[string]string {
	return map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"status":    "status",
	}
}

// ListOrdersQuery retrieves a page of orders, optionally filtered by status.
//
// Paging inputs are clamped rather than rejected: a non-positive page becomes
// the first page, a non-positive limit becomes the default, and the limit is
// capped at maxLimit. Unknown sort keys and orders silently fall back to
// newest-first.
type ListOrdersQuery struct {
	status    *order.Status
	page      int
	limit     int
	sortBy    string
	sortOrder string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
//
// statusFilter is optional; when non-empty it must be one of the canonical
// status strings. sortBy accepts "createdAt", "updatedAt" and "status";
// sortOrder accepts "asc" and "desc" in any casing.
func NewListOrdersQuery(statusFilter string, page, limit int, sortBy, sortOrder string) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		listQuery.status = &status
	}

	listQuery.setPaging(page, limit)
	listQuery.setSorting(sortBy, sortOrder)

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// SortBy returns the whitelisted column to sort by.
func (q ListOrdersQuery) SortBy() string {
	return q.sortBy
}

// SortOrder returns "ASC" or "DESC".
func (q ListOrdersQuery) SortOrder() string {
	return q.sortOrder
}

func (q *ListOrdersQuery) setPaging(page, limit int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	q.page = page
	q.limit = limit
}

func (q *ListOrdersQuery) setSorting(sortBy, sortOrder string) {
	column, ok := sortColumns()[sortBy]
	if !ok {
		column = defaultSortBy
	}
	q.sortBy = column

	switch sortOrder {
	case "asc", "ASC", "Asc":
		q.sortOrder = "ASC"
	case "desc", "DESC", "Desc":
		q.sortOrder = "DESC"
	default:
		q.sortOrder = defaultSortOrder
	}
}

// PaginationResponse describes the page window of a list response.
type PaginationResponse struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListOrdersQueryResponse carries one page of orders plus the pagination
// block describing the full result set.
type ListOrdersQueryResponse struct {
	Orders     []OrderResponse
	Pagination PaginationResponse
}
