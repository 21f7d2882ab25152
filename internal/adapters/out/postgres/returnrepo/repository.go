package returnrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/returns"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReturnRepository implements ReturnRepository using GORM.
type GormReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return request with its lines and assigns the generated
// identifier to the aggregate.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	for i, item := range aggregate.Items() {
		if err := item.AssignID(dto.Items[i].ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing return request. Lines are immutable, so
// only the root row is written.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReturnDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"comments":      dto.Comments,
			"refund_amount": dto.RefundAmount,
			"updated_at":    dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("returnID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a return request by ID with its lines.
func (r *GormReturnRepository) Get(ctx context.Context, id int64) (*returns.Return, error) {
	var dto ReturnDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("return_items.id")
		}).
		First(&dto, "returns.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("returnID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
