package queries_test

import (
	"context"
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.queryHandlerSuite.SetupTest()
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsAllFields() {
	testOrder := suite.seedOrder(order.InTransit)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal(testOrder.TrackingNumber().String(), result.TrackingNumber)
	suite.Equal("Alice", result.SenderName)
	suite.Equal("Bob", result.RecipientName)
	suite.Equal("Berlin", result.Origin)
	suite.Equal("Hamburg", result.Destination)
	suite.Equal("In Transit", result.Status)
	suite.False(result.CreatedAt.IsZero())
	suite.False(result.UpdatedAt.IsZero())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
