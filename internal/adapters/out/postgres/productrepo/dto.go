// Package productrepo persists catalog products and implements the inventory
// ledger with conditional stock updates.
package productrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock       int
	Category    string `gorm:"index"`
	ImageURL    string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		Stock:       aggregate.Stock(),
		Category:    aggregate.Category(),
		ImageURL:    aggregate.ImageURL(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		dto.ID, dto.Name, dto.Description, price, dto.Stock, dto.Category, dto.ImageURL,
	)
}
