package product

import (
	"fmt"
	"sort"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrReservationIsNotConstructed is returned when a Reservation was not created
// through the NewReservation constructor.
var ErrReservationIsNotConstructed = errs.NewValueIsRequiredError(
	"Reservation must be created via NewReservation",
)

// Reservation is one line of a stock reservation or release: a product
// reference and a positive quantity. The inventory ledger consumes these in
// batches that must behave as a single atomic unit.
type Reservation struct {
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewReservation creates a reservation line with validation.
func NewReservation(productID int64, quantity int) (Reservation, error) {
	if productID <= 0 {
		return Reservation{}, errs.NewValueIsInvalidErrorWithCause(
			"productID",
			fmt.Errorf("%d is not a positive identifier", productID),
		)
	}
	if quantity <= 0 {
		return Reservation{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Reservation{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Reservation was created through NewReservation.
func (r Reservation) Validate() error {
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (r Reservation) ProductID() int64 {
	return r.productID
}

// Quantity returns the number of units reserved or released.
func (r Reservation) Quantity() int {
	return r.quantity
}

// SortReservations orders reservation lines by ascending product identifier.
// Concurrent multi-line reservations lock product rows in this fixed order,
// which rules out deadlock between orders sharing two or more products.
func SortReservations(lines []Reservation) []Reservation {
	sorted := make([]Reservation, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].productID < sorted[j].productID
	})
	return sorted
}
