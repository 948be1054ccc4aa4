// Package order provides domain entities and business logic for order
// tracking. It implements the Order aggregate root with lifecycle management
// and the append-only status history ledger.
//
// The package includes:
//   - Order: The aggregate root that owns the shipment's identity, descriptive fields, and status
//   - Status: A state machine that enforces valid order status transitions
//   - TrackingNumber: The public identifier customers use to track a shipment
//   - StatusChange: One immutable entry of an order's status history
//
// Key business rules:
//   - Orders always start in Pending status
//   - Status follows the workflow: Pending -> In Transit -> Delivered, with
//     cancellation possible before delivery
//   - Delivered and Canceled are terminal states
//   - The dedicated cancel operation only applies to Pending orders
//   - Every status change is recorded as a StatusChange entry forming an
//     unbroken chain per order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
