package services

import (
	"fmt"
	"time"

	"tracking/internal/core/domain/model/order"
)

// Defaults used when a status is missing from the icon/color tables. The
// status enumeration is closed, so these should never surface; they exist as
// a defensive fallback for display code.
const (
	defaultIcon  = "circle"
	defaultColor = "gray"
)

// TimelineStep is one display-ready step of an order's status timeline. It
// enriches a raw StatusChange entry with a human-readable description and
// per-status presentation hints.
type TimelineStep struct {
	StepNumber     int
	Status         order.Status
	PreviousStatus *order.Status
	Timestamp      time.Time
	Description    string
	Notes          string
	IsInitial      bool
	Icon           string
	Color          string
}

// getTransitionDescriptions returns the fixed table of human-readable phrases
// keyed by "previous->new".
//
// Note: the last two rows describe transitions the status state machine
// forbids (Delivered->In Transit, Canceled->Pending). They are kept as
// fallback text only and are unreachable through the enforced transition
// table; whether those transitions should ever become legal is pending
// product clarification.
func getTransitionDescriptions() map[string]string {
	return map[string]string{
		"Pending->In Transit":   "Package picked up and in transit to destination",
		"In Transit->Delivered": "Package successfully delivered to recipient",
		"Pending->Canceled":     "Order was canceled before pickup",
		"In Transit->Canceled":  "Order was canceled during transit",
		"Pending->Delivered":    "Package delivered directly (express delivery)",
		"Delivered->In Transit": "Package returned to transit (delivery failed)",
		"Canceled->Pending":     "Canceled order was reinstated",
	}
}

// getStatusIcons returns the fixed status-to-icon table.
func getStatusIcons() map[order.Status]string {
	return map[order.Status]string{
		order.Pending:   "clock",
		order.InTransit: "truck",
		order.Delivered: "check-circle",
		order.Canceled:  "x-circle",
	}
}

// getStatusColors returns the fixed status-to-color table.
func getStatusColors() map[order.Status]string {
	return map[order.Status]string{
		order.Pending:   "yellow",
		order.InTransit: "blue",
		order.Delivered: "green",
		order.Canceled:  "red",
	}
}

// StatusChangeDescription returns the human-readable phrase for a status
// change.
//
// For the creation entry (nil previous status) the description names the
// initial status. For known transition pairs the fixed table applies; any
// other pair falls back to a generic "Status changed from X to Y" phrase.
func StatusChangeDescription(previousStatus *order.Status, newStatus order.Status) string {
	if previousStatus == nil {
		return fmt.Sprintf("Order created with initial status: %s", newStatus)
	}

	key := fmt.Sprintf("%s->%s", *previousStatus, newStatus)
	if description, ok := getTransitionDescriptions()[key]; ok {
		return description
	}
	return fmt.Sprintf("Status changed from %s to %s", *previousStatus, newStatus)
}

// StatusIcon returns the icon name for a status, or a neutral default for
// values outside the table.
func StatusIcon(status order.Status) string {
	if icon, ok := getStatusIcons()[status]; ok {
		return icon
	}
	return defaultIcon
}

// StatusColor returns the color name for a status, or a neutral default for
// values outside the table.
func StatusColor(status order.Status) string {
	if color, ok := getStatusColors()[status]; ok {
		return color
	}
	return defaultColor
}

// BuildTimeline projects an order's status history into display-ready
// timeline steps.
//
// The input must be the order's history in chronological order (as returned
// by the status history repository); step numbers are assigned from the
// position in that sequence, 1-based. The projection is pure: calling it
// twice over the same history yields identical output.
func BuildTimeline(history []*order.StatusChange) []TimelineStep {
	steps := make([]TimelineStep, 0, len(history))

	for i, entry := range history {
		steps = append(steps, TimelineStep{
			StepNumber:     i + 1,
			Status:         entry.NewStatus(),
			PreviousStatus: entry.PreviousStatus(),
			Timestamp:      entry.ChangedAt(),
			Description:    StatusChangeDescription(entry.PreviousStatus(), entry.NewStatus()),
			Notes:          entry.Notes(),
			IsInitial:      entry.IsInitial(),
			Icon:           StatusIcon(entry.NewStatus()),
			Color:          StatusColor(entry.NewStatus()),
		})
	}

	return steps
}
