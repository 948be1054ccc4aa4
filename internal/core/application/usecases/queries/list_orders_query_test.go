package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", 0, 0, "", "")
	require.NoError(t, err)
	assert.Nil(t, query.Status())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 10, query.Limit())
	assert.Equal(t, "created_at", query.SortBy())
	assert.Equal(t, "DESC", query.SortOrder())
}

func TestNewListOrdersQuery_StatusFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery("In Transit", 1, 10, "", "")
	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, order.InTransit, *query.Status())
}

func TestNewListOrdersQuery_InvalidStatusFilter(t *testing.T) {
	_, err := queries.NewListOrdersQuery("in transit", 1, 10, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_ClampsLimit(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", 1, 500, "", "")
	require.NoError(t, err)
	assert.Equal(t, 100, query.Limit())

	query, err = queries.NewListOrdersQuery("", -3, -7, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 10, query.Limit())
}

func TestNewListOrdersQuery_SortWhitelist(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", 1, 10, "updatedAt", "asc")
	require.NoError(t, err)
	assert.Equal(t, "updated_at", query.SortBy())
	assert.Equal(t, "ASC", query.SortOrder())

	// Unknown sort inputs fall back to defaults instead of failing.
	query, err = queries.NewListOrdersQuery("", 1, 10, "id; DROP TABLE orders", "sideways")
	require.NoError(t, err)
	assert.Equal(t, "created_at", query.SortBy())
	assert.Equal(t, "DESC", query.SortOrder())
}

func TestListOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
