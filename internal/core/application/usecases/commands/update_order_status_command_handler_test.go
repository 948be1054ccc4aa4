package commands_test

import (
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	trackingNumber, err := order.NewTrackingNumber()
	require.NoError(t, err)
	o, err := order.NewOrder(id, trackingNumber, "Alice", "Bob", "Berlin", "Hamburg")
	require.NoError(t, err)
	return o
}

func restoredOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	trackingNumber, err := order.NewTrackingNumber()
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, trackingNumber, "Alice", "Bob", "Berlin", "Hamburg", status)
	require.NoError(t, err)
	return o
}

func latestEntry(t *testing.T, orderID kernel.UUID, seq int, newStatus order.Status) *order.StatusChange {
	t.Helper()
	var prev *order.Status
	if seq > 1 {
		p := order.Pending
		prev = &p
	}
	entry, err := order.NewStatusChange(orderID, seq, prev, newStatus, time.Now(), "")
	require.NoError(t, err)
	return entry
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "picked up")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("SavePoint", ctx, "status_history").Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("GetLatest", ctx, id).Return(latestEntry(t, id, 1, order.Pending), nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, result.Order.Status())
	assert.Equal(t, order.Pending, result.PreviousStatus)

	appendCall := historyRepo.Calls[1]
	entry := appendCall.Arguments[1].(*order.StatusChange)
	assert.Equal(t, 2, entry.Seq())
	require.NotNil(t, entry.PreviousStatus())
	assert.Equal(t, order.Pending, *entry.PreviousStatus())
	assert.Equal(t, order.InTransit, entry.NewStatus())
	assert.Equal(t, "picked up", entry.Notes())

	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).
			Return(nil, errs.NewObjectNotFoundError("orderID", id.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	testOrder := restoredOrder(t, id, order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Delivered, transitionErr.From)
	assert.Equal(t, order.InTransit, transitionErr.To)
	assert.Equal(t, order.Delivered, testOrder.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_SameStatusRejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.Pending, "")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "update error")
}

func TestUpdateOrderStatusCommandHandler_Handle_MissingHistoryRestartsChain(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("SavePoint", ctx, "status_history").Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("GetLatest", ctx, id).
			Return(nil, errs.NewObjectNotFoundError("orderID", id.String())).
			Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, result.Order.Status())

	appendCall := historyRepo.Calls[1]
	entry := appendCall.Arguments[1].(*order.StatusChange)
	assert.Equal(t, 1, entry.Seq())
	assert.Nil(t, entry.PreviousStatus())
	assert.True(t, entry.IsInitial())
}

func TestUpdateOrderStatusCommandHandler_Handle_HistoryAppendFailureStillCommits(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("SavePoint", ctx, "status_history").Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("GetLatest", ctx, id).Return(latestEntry(t, id, 1, order.Pending), nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StatusChange")).
			Return(errors.New("ledger unavailable")).
			Once(),
		uow.On("RollbackToSavePoint", ctx, "status_history").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, result.Order.Status())
	uow.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "")

	testOrder := newPendingOrder(t, id)

	repo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("SavePoint", ctx, "status_history").Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("GetLatest", ctx, id).Return(latestEntry(t, id, 1, order.Pending), nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
