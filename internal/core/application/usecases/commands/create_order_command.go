package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSenderNameIsRequired    = errors.New("sender name is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrOriginIsRequired        = errors.New("origin is required")
	ErrDestinationIsRequired   = errors.New("destination is required")
)

// CreateOrderCommand represents a request to register a new shipment.
// Encapsulates the descriptive order fields; the tracking number is generated
// by the handler, and the status always starts at Pending.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Alice", "Bob", "Berlin", "Hamburg")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	senderName    string
	recipientName string
	origin        string
	destination   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and all descriptive fields are
// present; full length and route validation happens in the domain model.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	senderName string,
	recipientName string,
	origin string,
	destination string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setSenderName(senderName),
		orderCommand.setRecipientName(recipientName),
		orderCommand.setOrigin(origin),
		orderCommand.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderName returns the name of the sending party.
func (c CreateOrderCommand) SenderName() string {
	return c.senderName
}

// RecipientName returns the name of the receiving party.
func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

// Origin returns the shipment's origin.
func (c CreateOrderCommand) Origin() string {
	return c.origin
}

// Destination returns the shipment's destination.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSenderName(senderName string) error {
	if senderName == "" {
		return ErrSenderNameIsRequired
	}

	c.senderName = senderName
	return nil
}

func (c *CreateOrderCommand) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = recipientName
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
