package order

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

const (
	// maxNotesLength bounds the free-text annotation on a status change.
	maxNotesLength = 1000

	// initialSeq is the sequence number of an order's creation entry.
	initialSeq = 1
)

var (
	// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
	// created via NewStatusChange.
	ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange constructor")

	// ErrChangedAtIsRequired is returned when the change timestamp is missing.
	ErrChangedAtIsRequired = errs.NewValueIsRequiredError("changedAt")
)

// StatusChange is one immutable entry of an order's status history ledger.
//
// Entries for an order form an unbroken chain: the first entry (seq 1) has no
// previous status and records the order's creation; every later entry's
// previous status equals the preceding entry's new status, and the order's
// current status always equals the newest entry's new status.
//
// The explicit per-order sequence number makes the chain ordering robust
// against clock skew and same-instant writes; changedAt is kept for display
// and chronological queries.
type StatusChange struct {
	orderID        kernel.UUID
	seq            int
	previousStatus *Status
	newStatus      Status
	changedAt      time.Time
	notes          string

	isConstructed bool
}

// NewStatusChange creates a validated ledger entry.
//
// Parameters:
//   - orderID: the owning order (must be a valid UUID)
//   - seq: 1-based position in the order's history; seq 1 is the creation
//     entry and is the only entry allowed (and required) to have a nil
//     previous status
//   - previousStatus: the status before the change, nil only for seq 1
//   - newStatus: the status after the change (required, must be valid)
//   - changedAt: when the transition happened (required)
//   - notes: optional annotation, at most 1000 characters
func NewStatusChange(
	orderID kernel.UUID,
	seq int,
	previousStatus *Status,
	newStatus Status,
	changedAt time.Time,
	notes string,
) (*StatusChange, error) {
	change := &StatusChange{
		isConstructed: true,
	}

	if err := errors.Join(
		change.setOrderID(orderID),
		change.setSeq(seq),
		change.setStatuses(seq, previousStatus, newStatus),
		change.setChangedAt(changedAt),
		change.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return change, nil
}

// Validate ensures the StatusChange was properly constructed.
func (c *StatusChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the owning order.
func (c *StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Seq returns the entry's 1-based position in the order's history.
func (c *StatusChange) Seq() int {
	return c.seq
}

// PreviousStatus returns the status before the change, or nil for the
// creation entry.
func (c *StatusChange) PreviousStatus() *Status {
	return c.previousStatus
}

// NewStatus returns the status after the change.
func (c *StatusChange) NewStatus() Status {
	return c.newStatus
}

// ChangedAt returns when the transition happened.
func (c *StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

// Notes returns the optional annotation, empty if none was recorded.
func (c *StatusChange) Notes() string {
	return c.notes
}

// IsInitial reports whether this is the order's creation entry.
func (c *StatusChange) IsInitial() bool {
	return c.previousStatus == nil
}

func (c *StatusChange) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StatusChange) setSeq(seq int) error {
	if seq < initialSeq {
		return errs.NewValueIsInvalidErrorWithCause("seq is invalid",
			fmt.Errorf("%d is not a positive sequence number", seq))
	}
	c.seq = seq
	return nil
}

func (c *StatusChange) setStatuses(seq int, previousStatus *Status, newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if previousStatus == nil {
		if seq != initialSeq {
			return errs.NewValueIsRequiredError("previousStatus for a non-initial entry")
		}
	} else {
		if seq == initialSeq {
			return errs.NewValueIsInvalidErrorWithCause("previousStatus is invalid",
				errors.New("the initial entry must not have a previous status"))
		}
		if err := previousStatus.Validate(); err != nil {
			return err
		}
		prev := *previousStatus
		c.previousStatus = &prev
	}

	c.newStatus = newStatus
	return nil
}

func (c *StatusChange) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return ErrChangedAtIsRequired
	}
	c.changedAt = changedAt
	return nil
}

// ValidateNotes checks that a ledger annotation fits the storage bound.
func ValidateNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, maxNotesLength)
	}
	return nil
}

func (c *StatusChange) setNotes(notes string) error {
	if err := ValidateNotes(notes); err != nil {
		return err
	}
	c.notes = notes
	return nil
}
