// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its canonical string so the rows stay readable and
// queryable without the application's enum mapping.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	SenderName     string    `gorm:"type:varchar(100);not null"`
	RecipientName  string    `gorm:"type:varchar(100);not null"`
	Origin         string    `gorm:"type:varchar(200);not null"`
	Destination    string    `gorm:"type:varchar(200);not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		SenderName:     aggregate.SenderName(),
		RecipientName:  aggregate.RecipientName(),
		Origin:         aggregate.Origin(),
		Destination:    aggregate.Destination(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder, which accepts any valid lifecycle status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := order.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		trackingNumber,
		dto.SenderName,
		dto.RecipientName,
		dto.Origin,
		dto.Destination,
		status,
	)
}
