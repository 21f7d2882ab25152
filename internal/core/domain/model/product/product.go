package product

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
	"Product must be created via NewProduct or RestoreProduct",
)

// Product represents a catalog item whose stock backs order reservations.
//
// Product follows these invariants:
//   - Name is required
//   - Unit price is a valid, non-negative Money value
//   - Stock is never negative
//   - Stock is mutated only by the inventory ledger (ProductRepository
//     reserve/release operations); the aggregate itself never changes it
//
// The price held here is the live catalog price. Orders and returns never read
// it after checkout: they work from the snapshot captured into the order item.
type Product struct {
	id          int64
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string
	imageURL    string

	isConstructed bool
}

// NewProduct creates a new Product with validation.
// The identifier is assigned by the repository on insert.
func NewProduct(name, description string, price kernel.Money, stock int, category, imageURL string) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}

	return &Product{
		name:          name,
		description:   description,
		price:         price,
		stock:         stock,
		category:      category,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id int64, name, description string, price kernel.Money, stock int, category, imageURL string,
) (*Product, error) {
	p, err := NewProduct(name, description, price, stock, category, imageURL)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("product already has identifier %d", p.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	p.id = id
	return nil
}

// ID returns the product's identifier. Zero until persisted.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// ImageURL returns the product image location.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// HasStock reports whether at least qty units are available.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.stock >= qty
}
