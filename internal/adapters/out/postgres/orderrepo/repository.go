package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and delivery trail to the database and
// assigns the generated identifier to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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
	for i, du := range aggregate.DeliveryUpdates() {
		if err := du.AssignID(dto.DeliveryUpdates[i].ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order. The root row is updated in
// place; delivery trail records are insert-only, so only records the
// aggregate appended since the last load are written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":           dto.Status,
			"updated_at":       dto.UpdatedAt,
			"total_amount":     dto.TotalAmount,
			"tracking_number":  dto.TrackingNumber,
			"current_location": dto.CurrentLocation,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", dto.ID)
	}

	for _, du := range aggregate.DeliveryUpdates() {
		if du.ID() != 0 {
			continue
		}

		record := DeliveryUpdateDTO{
			OrderID:     aggregate.ID(),
			Status:      du.Status(),
			Location:    du.Location(),
			Timestamp:   du.Timestamp(),
			Description: du.Description(),
		}
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
		if err := du.AssignID(record.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and delivery trail.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preloaded(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// preloaded returns a query with items and the delivery trail loaded in
// insertion order.
func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("DeliveryUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("delivery_updates.timestamp, delivery_updates.id")
		})
}
