package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// UpdateOrderStatusResult carries the outcome of a status update: the updated
// order and the status it held before the change (for the API response).
type UpdateOrderStatusResult struct {
	Order          *order.Order
	PreviousStatus order.Status
}

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// The read-validate-write-append sequence runs inside one transaction with a
// row lock on the order, so concurrent updates to the same order serialize
// and the history chain stays unbroken. The ledger append itself is
// best-effort under a savepoint: its failure is logged and never rolls back
// the status mutation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update
// operations.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
//
// Returns *order.InvalidTransitionError (naming current and requested status)
// when the transition is illegal; the order is left unchanged in that case.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	recordStatusChange(ctx, uow, h.logger, aggregate, previousStatus, cmd.Notes())

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	return UpdateOrderStatusResult{Order: aggregate, PreviousStatus: previousStatus}, nil
}

// recordStatusChange appends a transition entry under a savepoint, computing
// the next sequence number from the latest entry. Shared by the status update
// and cancel handlers; both hold the order's row lock when calling it.
//
// Append failure is logged and swallowed: the audit trail is best-effort
// relative to the status mutation itself.
func recordStatusChange(
	ctx context.Context,
	uow UoW,
	logger *slog.Logger,
	aggregate *order.Order,
	previousStatus order.Status,
	notes string,
) {
	if err := uow.SavePoint(ctx, statusHistorySavepoint); err != nil {
		logger.WarnContext(ctx, "Failed to create savepoint for status history",
			"order_id", aggregate.ID().String(), "error", err)
		return
	}

	entry, err := nextStatusChange(ctx, uow, aggregate, previousStatus, notes)
	if err == nil {
		err = uow.StatusHistoryRepository().Append(ctx, entry)
	}

	if err != nil {
		if rbErr := uow.RollbackToSavePoint(ctx, statusHistorySavepoint); rbErr != nil {
			err = fmt.Errorf("%w (savepoint rollback also failed: %w)", err, rbErr)
		}
		logger.WarnContext(ctx, "Failed to record status change in status history",
			"order_id", aggregate.ID().String(),
			"previous_status", previousStatus.String(),
			"new_status", aggregate.Status().String(),
			"error", err)
	}
}

// nextStatusChange builds the ledger entry continuing the order's chain. If
// the order has no history at all (a creation entry lost to an earlier
// best-effort failure), the entry restarts the chain as an initial one.
func nextStatusChange(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	previousStatus order.Status,
	notes string,
) (*order.StatusChange, error) {
	latest, err := uow.StatusHistoryRepository().GetLatest(ctx, aggregate.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.NewStatusChange(aggregate.ID(), 1, nil, aggregate.Status(), time.Now(), notes)
		}
		return nil, err
	}

	return order.NewStatusChange(
		aggregate.ID(),
		latest.Seq()+1,
		&previousStatus,
		aggregate.Status(),
		time.Now(),
		notes,
	)
}
