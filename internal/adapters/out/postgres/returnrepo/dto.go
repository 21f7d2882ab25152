// Package returnrepo persists return request aggregates.
package returnrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/returns"

	"github.com/shopspring/decimal"
)

// ReturnDTO represents the database structure for persisting return requests.
type ReturnDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	OrderID      int64 `gorm:"index"`
	UserID       int64 `gorm:"index"`
	Status       int   `gorm:"index"`
	Reason       string
	Comments     string
	RefundAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []ReturnItemDTO `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for return entities.
func (ReturnDTO) TableName() string {
	return "returns"
}

// ReturnItemDTO represents one return line. Lines are immutable after insert.
type ReturnItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ReturnID    int64 `gorm:"index"`
	OrderItemID int64 `gorm:"index"`
	Quantity    int
	Reason      string
	Condition   int
}

// TableName specifies the database table name for return line entities.
func (ReturnItemDTO) TableName() string {
	return "return_items"
}

// fromDomain converts a return domain aggregate to its database representation.
func fromDomain(aggregate *returns.Return) ReturnDTO {
	items := make([]ReturnItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ReturnItemDTO{
			ID:          item.ID(),
			ReturnID:    aggregate.ID(),
			OrderItemID: item.OrderItemID(),
			Quantity:    item.Quantity(),
			Reason:      item.Reason(),
			Condition:   int(item.Condition()),
		})
	}

	return ReturnDTO{
		ID:           aggregate.ID(),
		OrderID:      aggregate.OrderID(),
		UserID:       aggregate.UserID(),
		Status:       int(aggregate.Status()),
		Reason:       aggregate.Reason(),
		Comments:     aggregate.Comments(),
		RefundAmount: aggregate.RefundAmount().Amount(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to a return domain aggregate.
func toDomain(dto ReturnDTO) (*returns.Return, error) {
	items := make([]*returns.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := returns.RestoreItem(
			itemDTO.ID, itemDTO.OrderItemID, itemDTO.Quantity,
			itemDTO.Reason, returns.ItemCondition(itemDTO.Condition),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	refund, err := kernel.NewMoney(dto.RefundAmount)
	if err != nil {
		return nil, err
	}

	return returns.RestoreReturn(
		dto.ID, dto.OrderID, dto.UserID,
		returns.Status(dto.Status),
		dto.Reason, dto.Comments,
		refund,
		dto.CreatedAt, dto.UpdatedAt,
		items,
	)
}
