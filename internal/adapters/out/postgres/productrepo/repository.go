package productrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
//
// Stock mutations go through ReserveAll and ReleaseAll only. Both run inside
// the unit of work transaction, so a failed line aborts every line with it.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product and assigns the generated identifier.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// GetByID retrieves a product by ID.
func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves products for all given ids. Every id must resolve; a
// missing id fails the whole lookup with ObjectNotFoundError.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]ProductDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	products := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productID", id)
		}

		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// ReserveAll decrements stock for every reservation line. Each decrement is
// conditional on sufficient stock, so a concurrent reservation can never drive
// stock negative. Lines are applied in ascending product id order to keep row
// lock acquisition deadlock free.
func (r *GormProductRepository) ReserveAll(ctx context.Context, lines []product.Reservation) error {
	for _, line := range product.SortReservations(lines) {
		if err := line.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).Exec(
			"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
			line.Quantity(), line.ProductID(), line.Quantity(),
		)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return r.classifyReserveFailure(ctx, line)
		}
	}

	return nil
}

// ReleaseAll returns previously reserved stock for every line.
func (r *GormProductRepository) ReleaseAll(ctx context.Context, lines []product.Reservation) error {
	for _, line := range product.SortReservations(lines) {
		if err := line.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).Exec(
			"UPDATE products SET stock = stock + ? WHERE id = ?",
			line.Quantity(), line.ProductID(),
		)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("productID", line.ProductID())
		}
	}

	return nil
}

// classifyReserveFailure distinguishes an unknown product from insufficient
// stock after a conditional decrement touched no rows.
func (r *GormProductRepository) classifyReserveFailure(ctx context.Context, line product.Reservation) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", line.ProductID()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("productID", line.ProductID())
	}

	return errs.NewInsufficientStockError(line.ProductID(), line.Quantity())
}
