package historyrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements ports.StatusHistoryRepository using
// GORM.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GORM status history repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts a new ledger entry. Entries are never updated or deleted
// individually; failures are wrapped in ports.ErrStatusChangeRecordingFailed
// so callers can apply best-effort semantics.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, change *order.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := fromDomain(change)
	if err := r.db.WithContext(ctx).Omit("Order").Create(&dto).Error; err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStatusChangeRecordingFailed, err)
	}

	return nil
}

// GetByOrderID retrieves all ledger entries for an order in chain order
// (sequence ascending). Returns an empty slice when the order has no entries.
func (r *GormStatusHistoryRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	changes := make([]*order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		changes = append(changes, change)
	}

	return changes, nil
}

// GetLatest retrieves the entry with the highest sequence number for an
// order, or an ObjectNotFoundError when the order has no entries.
func (r *GormStatusHistoryRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status history", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
