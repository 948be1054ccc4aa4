// Package historyrepo provides persistence for the append-only status history
// ledger. Ledger rows are only ever inserted; the single path by which they
// disappear is the cascade delete of their owning order.
package historyrepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO represents one row of the status history ledger.
//
// The (order_id, seq) pair is unique: seq is the 1-based position of the entry
// in its order's chain. PreviousStatus is NULL exactly for the creation entry.
// Statuses are stored as their canonical strings, matching the orders table.
type StatusChangeDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_status_history_order_seq,priority:1;index"`
	Seq            int       `gorm:"not null;uniqueIndex:idx_status_history_order_seq,priority:2"`
	PreviousStatus *string   `gorm:"type:varchar(20)"`
	NewStatus      string    `gorm:"type:varchar(20);not null"`
	ChangedAt      time.Time `gorm:"not null;index"`
	Notes          string    `gorm:"type:text"`

	Order orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for ledger entries.
func (StatusChangeDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(change *order.StatusChange) StatusChangeDTO {
	var previousStatus *string
	if prev := change.PreviousStatus(); prev != nil {
		s := prev.String()
		previousStatus = &s
	}

	return StatusChangeDTO{
		OrderID:        change.OrderID().Bytes(),
		Seq:            change.Seq(),
		PreviousStatus: previousStatus,
		NewStatus:      change.NewStatus().String(),
		ChangedAt:      change.ChangedAt(),
		Notes:          change.Notes(),
	}
}

// toDomain converts a database row to a ledger entry.
func toDomain(dto StatusChangeDTO) (*order.StatusChange, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var previousStatus *order.Status
	if dto.PreviousStatus != nil {
		prev, statusErr := order.StatusFromString(*dto.PreviousStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		previousStatus = &prev
	}

	newStatus, err := order.StatusFromString(dto.NewStatus)
	if err != nil {
		return nil, err
	}

	return order.NewStatusChange(orderID, dto.Seq, previousStatus, newStatus, dto.ChangedAt, dto.Notes)
}
