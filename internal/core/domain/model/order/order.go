package order

import (
	"errors"
	"fmt"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrSameOriginAndDestination is returned when an order's origin and
	// destination name the same place.
	ErrSameOriginAndDestination = errors.New("origin and destination cannot be the same")
)

const (
	minNameLength  = 2
	maxNameLength  = 100
	minPlaceLength = 2
	maxPlaceLength = 200
)

// Order represents a tracked shipment. It is the aggregate root that owns the
// order's descriptive fields and its lifecycle status.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and tracking number
//   - Sender and recipient names are 2-100 characters
//   - Origin and destination are 2-200 characters and differ from each other
//   - New orders always start in Pending status
//   - Status changes follow the transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The descriptive fields (sender, recipient, origin, destination) are
// immutable after construction; only the status changes over the order's
// lifetime.
type Order struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	senderName     string
	recipientName  string
	origin         string
	destination    string
	status         Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - trackingNumber: Public tracking identifier (must be constructed)
//   - senderName, recipientName: 2-100 characters after trimming
//   - origin, destination: 2-200 characters after trimming; must differ
//     (case-insensitive)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderName string,
	recipientName string,
	origin string,
	destination string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackingNumber(trackingNumber),
		order.setSenderName(senderName),
		order.setRecipientName(recipientName),
		order.setRoute(origin, destination),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status. Unlike NewOrder it accepts any valid status, since stored orders may
// be anywhere in their lifecycle.
func RestoreOrder(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderName string,
	recipientName string,
	origin string,
	destination string,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackingNumber(trackingNumber),
		order.setSenderName(senderName),
		order.setRecipientName(recipientName),
		order.setRoute(origin, destination),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingNumber returns the order's public tracking identifier.
func (o *Order) TrackingNumber() TrackingNumber {
	return o.trackingNumber
}

// SenderName returns the name of the sending party.
func (o *Order) SenderName() string {
	return o.senderName
}

// RecipientName returns the name of the receiving party.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// Origin returns the shipment's origin.
func (o *Order) Origin() string {
	return o.origin
}

// Destination returns the shipment's destination.
func (o *Order) Destination() string {
	return o.destination
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Route returns the human-readable route of the shipment,
// e.g. "Berlin → Hamburg".
func (o *Order) Route() string {
	return fmt.Sprintf("%s → %s", o.origin, o.destination)
}

// IsPending reports whether the order is still awaiting pickup.
func (o *Order) IsPending() bool {
	return o.status == Pending
}

// IsDelivered reports whether the order has been delivered.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// ChangeStatus transitions the order to the requested status.
//
// The transition is validated against the status transition table; on
// rejection the order is left unchanged and the returned
// *InvalidTransitionError names both the current and the requested status.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order through the dedicated cancellation operation.
//
// Only Pending orders may be canceled this way; see Status.Cancel for why
// this is narrower than the general transition table.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setSenderName(senderName string) error {
	senderName = strings.TrimSpace(senderName)
	if len(senderName) < minNameLength || len(senderName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("sender name length", len(senderName), minNameLength, maxNameLength)
	}
	o.senderName = senderName
	return nil
}

func (o *Order) setRecipientName(recipientName string) error {
	recipientName = strings.TrimSpace(recipientName)
	if len(recipientName) < minNameLength || len(recipientName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("recipient name length", len(recipientName), minNameLength, maxNameLength)
	}
	o.recipientName = recipientName
	return nil
}

func (o *Order) setRoute(origin, destination string) error {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if len(origin) < minPlaceLength || len(origin) > maxPlaceLength {
		return errs.NewValueIsOutOfRangeError("origin length", len(origin), minPlaceLength, maxPlaceLength)
	}
	if len(destination) < minPlaceLength || len(destination) > maxPlaceLength {
		return errs.NewValueIsOutOfRangeError("destination length", len(destination), minPlaceLength, maxPlaceLength)
	}
	if strings.EqualFold(origin, destination) {
		return ErrSameOriginAndDestination
	}

	o.origin = origin
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
