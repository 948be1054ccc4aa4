// Package queries contains read-only operations for the order tracking
// domain. Query handlers read the database directly with raw SQL and map rows
// into response models, bypassing the aggregate repositories.
package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse is the read model of a single order shared by the query
// handlers in this package.
type OrderResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	SenderName     string
	RecipientName  string
	Origin         string
	Destination    string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TimelineStepResponse is the read model of one status timeline step.
type TimelineStepResponse struct {
	StepNumber     int
	Status         string
	PreviousStatus *string
	Timestamp      time.Time
	Description    string
	Notes          string
	IsInitial      bool
	Icon           string
	Color          string
}

// orderColumns is the column list every order read in this package selects,
// in scanOrderRow's scanning order.
const orderColumns = `
	id,
	tracking_number,
	sender_name,
	recipient_name,
	origin,
	destination,
	status,
	created_at,
	updated_at
`

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scanning helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow scans one orderColumns row into an OrderResponse.
func scanOrderRow(scanner rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID

	err := scanner.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.SenderName,
		&resp.RecipientName,
		&resp.Origin,
		&resp.Destination,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	return resp, nil
}

// loadStatusHistory reads an order's ledger entries in chain order and
// reconstructs them as domain entries for the timeline projection.
func loadStatusHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]*order.StatusChange, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			seq,
			previous_status,
			new_status,
			changed_at,
			notes
		FROM status_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]*order.StatusChange, 0)

	for rows.Next() {
		var rawOrderID uuid.UUID
		var seq int
		var previousStatus *string
		var newStatus string
		var changedAt time.Time
		var notes string

		err = rows.Scan(&rawOrderID, &seq, &previousStatus, &newStatus, &changedAt, &notes)
		if err != nil {
			return nil, err
		}

		entryOrderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		var previous *order.Status
		if previousStatus != nil {
			prev, statusErr := order.StatusFromString(*previousStatus)
			if statusErr != nil {
				return nil, statusErr
			}
			previous = &prev
		}

		parsed, statusErr := order.StatusFromString(newStatus)
		if statusErr != nil {
			return nil, statusErr
		}

		entry, entryErr := order.NewStatusChange(entryOrderID, seq, previous, parsed, changedAt, notes)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// timelineResponse projects ledger entries into display-ready timeline steps.
func timelineResponse(history []*order.StatusChange) []TimelineStepResponse {
	steps := services.BuildTimeline(history)

	resp := make([]TimelineStepResponse, 0, len(steps))
	for _, step := range steps {
		var previousStatus *string
		if step.PreviousStatus != nil {
			s := step.PreviousStatus.String()
			previousStatus = &s
		}

		resp = append(resp, TimelineStepResponse{
			StepNumber:     step.StepNumber,
			Status:         step.Status.String(),
			PreviousStatus: previousStatus,
			Timestamp:      step.Timestamp,
			Description:    step.Description,
			Notes:          step.Notes,
			IsInitial:      step.IsInitial,
			Icon:           step.Icon,
			Color:          step.Color,
		})
	}

	return resp
}

// orderExists reports whether an order row with the given ID is present.
func orderExists(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE id = ?`, orderID.Bytes(),
	).Scan(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
