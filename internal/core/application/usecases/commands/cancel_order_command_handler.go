package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the dedicated order cancellation
// operation.
//
// Like the status update handler it serializes on the order's row lock and
// records the Pending -> Canceled transition in the ledger best-effort.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command.
//
// Returns *order.InvalidTransitionError when the order is not Pending; the
// order is left unchanged in that case. Returns the canceled order on
// success.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	recordStatusChange(ctx, uow, h.logger, aggregate, previousStatus, "Order canceled by customer")

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
