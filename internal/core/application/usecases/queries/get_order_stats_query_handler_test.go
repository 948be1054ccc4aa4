package queries_test

import (
	"context"
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetOrderStatsQueryHandler
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	suite.queryHandlerSuite.SetupTest()
	suite.handler = queries.NewGetOrderStatsQueryHandler(suite.db)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_MixedStatuses_CountsPerStatus() {
	suite.seedOrder(order.Pending)
	suite.seedOrder(order.Pending)
	suite.seedOrder(order.InTransit)
	suite.seedOrder(order.Delivered)

	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(4), stats.Total)
	suite.Equal(int64(2), stats.ByStatus["Pending"])
	suite.Equal(int64(1), stats.ByStatus["In Transit"])
	suite.Equal(int64(1), stats.ByStatus["Delivered"])
	suite.Equal(int64(0), stats.ByStatus["Canceled"])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsZeroCounts() {
	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(0), stats.Total)
	suite.Len(stats.ByStatus, 4)
	for _, count := range stats.ByStatus {
		suite.Equal(int64(0), count)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
