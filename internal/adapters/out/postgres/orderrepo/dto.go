// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order owns its items and delivery trail; both are stored in child tables
// keyed by the order id.
type OrderDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	UserID            int64 `gorm:"index"`
	Status            int   `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ShippingAddress   string
	DeliveryMethod    string
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	TrackingNumber    string
	CurrentLocation   string
	EstimatedDelivery *time.Time

	Items           []ItemDTO           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryUpdates []DeliveryUpdateDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line with its snapshot price.
type ItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ProductID int64 `gorm:"index"`
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// DeliveryUpdateDTO represents one delivery trail record.
// Rows are insert-only; no code path updates or deletes them.
type DeliveryUpdateDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	Status      string
	Location    string
	Timestamp   time.Time
	Description string
}

// TableName specifies the database table name for delivery trail entities.
func (DeliveryUpdateDTO) TableName() string {
	return "delivery_updates"
}

// fromDomain converts an order domain aggregate to its database representation,
// including its items and delivery trail.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID(),
			OrderID:   aggregate.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
		})
	}

	updates := make([]DeliveryUpdateDTO, 0, len(aggregate.DeliveryUpdates()))
	for _, du := range aggregate.DeliveryUpdates() {
		updates = append(updates, DeliveryUpdateDTO{
			ID:          du.ID(),
			OrderID:     aggregate.ID(),
			Status:      du.Status(),
			Location:    du.Location(),
			Timestamp:   du.Timestamp(),
			Description: du.Description(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID(),
		UserID:            aggregate.UserID(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		ShippingAddress:   aggregate.ShippingAddress(),
		DeliveryMethod:    aggregate.DeliveryMethod(),
		TotalAmount:       aggregate.TotalAmount().Amount(),
		TrackingNumber:    aggregate.TrackingNumber(),
		CurrentLocation:   aggregate.CurrentLocation(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Items:             items,
		DeliveryUpdates:   updates,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and trail using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, err := kernel.NewMoney(itemDTO.Price)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreItem(itemDTO.ID, itemDTO.ProductID, itemDTO.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	updates := make([]*order.DeliveryUpdate, 0, len(dto.DeliveryUpdates))
	for _, duDTO := range dto.DeliveryUpdates {
		du, err := order.RestoreDeliveryUpdate(
			duDTO.ID, duDTO.Status, duDTO.Location, duDTO.Description, duDTO.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		updates = append(updates, du)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID, dto.UserID,
		order.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
		dto.ShippingAddress, dto.DeliveryMethod,
		total,
		dto.TrackingNumber, dto.CurrentLocation,
		dto.EstimatedDelivery,
		items, updates,
	)
}
