package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// statusHistorySavepoint fences the best-effort ledger append inside the
// surrounding transaction: a failed append rolls back to this savepoint and
// the primary mutation still commits.
const statusHistorySavepoint = "status_history"

// trackingNumberMaxAttempts bounds retries on tracking number collisions.
const trackingNumberMaxAttempts = 10

// ErrTrackingNumberExhausted is returned when no unique tracking number could
// be generated within the attempt budget.
var ErrTrackingNumberExhausted = errors.New("failed to generate a unique tracking number")

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in Pending status with a generated tracking number and
// records the creation entry in the status history ledger.
//
// The history append is best-effort: if it fails, the order creation itself
// still commits and the miss is logged.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// Generates a unique tracking number (retrying on collision), persists the
// order in Pending status, and appends the initial ledger entry
// (seq 1, no previous status) within the same transaction.
//
// Returns the created order on success.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	trackingNumber, err := h.generateUniqueTrackingNumber(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		trackingNumber,
		cmd.SenderName(),
		cmd.RecipientName(),
		cmd.Origin(),
		cmd.Destination(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	h.recordCreationEntry(ctx, uow, newOrder)

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// generateUniqueTrackingNumber generates tracking numbers until one is not
// yet taken, up to trackingNumberMaxAttempts. The unique index on the orders
// table remains the final arbiter under concurrent creation.
func (h *CreateOrderCommandHandler) generateUniqueTrackingNumber(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (order.TrackingNumber, error) {
	for attempt := 0; attempt < trackingNumberMaxAttempts; attempt++ {
		trackingNumber, err := order.NewTrackingNumber()
		if err != nil {
			return order.TrackingNumber{}, err
		}

		_, err = orderRepo.GetByTrackingNumber(ctx, trackingNumber)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return trackingNumber, nil
		}
		if err != nil {
			return order.TrackingNumber{}, err
		}
	}

	return order.TrackingNumber{}, ErrTrackingNumberExhausted
}

// recordCreationEntry appends the initial ledger entry under a savepoint.
// Append failure is logged and swallowed: the audit trail is best-effort
// relative to the order itself.
func (h *CreateOrderCommandHandler) recordCreationEntry(ctx context.Context, uow UoW, newOrder *order.Order) {
	if err := uow.SavePoint(ctx, statusHistorySavepoint); err != nil {
		h.logger.WarnContext(ctx, "Failed to create savepoint for status history",
			"order_id", newOrder.ID().String(), "error", err)
		return
	}

	entry, err := order.NewStatusChange(newOrder.ID(), 1, nil, newOrder.Status(), time.Now(), "")
	if err == nil {
		err = uow.StatusHistoryRepository().Append(ctx, entry)
	}

	if err != nil {
		if rbErr := uow.RollbackToSavePoint(ctx, statusHistorySavepoint); rbErr != nil {
			err = fmt.Errorf("%w (savepoint rollback also failed: %w)", err, rbErr)
		}
		h.logger.WarnContext(ctx, "Failed to record order creation in status history",
			"order_id", newOrder.ID().String(), "error", err)
	}
}
