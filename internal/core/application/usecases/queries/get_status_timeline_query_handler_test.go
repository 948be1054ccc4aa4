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

type GetStatusTimelineQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetStatusTimelineQueryHandler
}

func (suite *GetStatusTimelineQueryHandlerTestSuite) SetupTest() {
	suite.queryHandlerSuite.SetupTest()
	suite.handler = queries.NewGetStatusTimelineQueryHandler(suite.db)
}

func (suite *GetStatusTimelineQueryHandlerTestSuite) TestHandle_FullLifecycle_ProjectsDisplaySteps() {
	testOrder := suite.seedFullLifecycle()

	query, err := queries.NewGetStatusTimelineQuery(testOrder.ID())
	suite.Require().NoError(err)

	steps, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(steps, 3)

	suite.Equal(1, steps[0].StepNumber)
	suite.Equal("Pending", steps[0].Status)
	suite.True(steps[0].IsInitial)
	suite.Equal("Order created with initial status: Pending", steps[0].Description)
	suite.Equal("clock", steps[0].Icon)
	suite.Equal("yellow", steps[0].Color)

	suite.Equal(2, steps[1].StepNumber)
	suite.Equal("In Transit", steps[1].Status)
	suite.False(steps[1].IsInitial)
	suite.Equal("Package picked up and in transit to destination", steps[1].Description)
	suite.Equal("truck", steps[1].Icon)
	suite.Equal("blue", steps[1].Color)
	suite.Equal("picked up", steps[1].Notes)

	suite.Equal(3, steps[2].StepNumber)
	suite.Equal("Delivered", steps[2].Status)
	suite.Equal("Package successfully delivered to recipient", steps[2].Description)
	suite.Equal("check-circle", steps[2].Icon)
	suite.Equal("green", steps[2].Color)
}

func (suite *GetStatusTimelineQueryHandlerTestSuite) TestHandle_OrderWithoutHistory_ReturnsEmptyTimeline() {
	testOrder := suite.seedOrder(order.Pending)

	query, err := queries.NewGetStatusTimelineQuery(testOrder.ID())
	suite.Require().NoError(err)

	steps, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(steps)
	suite.Empty(steps)
}

func (suite *GetStatusTimelineQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetStatusTimelineQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetStatusTimelineQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStatusTimelineQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetStatusTimelineQueryIsNotConstructed)
}

func TestGetStatusTimelineQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStatusTimelineQueryHandlerTestSuite))
}
