package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the customer-facing tracking lookup.
//
// The order itself is authoritative: if it cannot be read the lookup fails.
// The timeline is supplementary, so a failed history read degrades the
// response to an empty timeline instead of failing the whole lookup.
type TrackOrderQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB, logger *slog.Logger) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		db:     db,
		logger: logger.With("component", "track_order_handler"),
	}
}

// Handle executes the tracking lookup. Returns an ObjectNotFoundError when no
// order carries the requested tracking number.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE tracking_number = ?
	`, orderColumns), query.TrackingNumber().String()).Row()

	orderResp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"order", query.TrackingNumber().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	timeline := make([]TimelineStepResponse, 0)
	history, err := loadStatusHistory(ctx, h.db, orderResp.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to load status history for tracking lookup",
			"tracking_number", query.TrackingNumber().String(),
			"order_id", orderResp.ID.String(),
			"error", err)
	} else {
		timeline = timelineResponse(history)
	}

	return TrackOrderQueryResponse{
		Order:    orderResp,
		Timeline: timeline,
	}, nil
}
