// Package product contains the catalog product aggregate and the reservation
// value object consumed by the inventory ledger.
//
// Stock is the only contended resource in the system. The aggregate carries the
// counter for reads, but every mutation goes through the ProductRepository's
// ReserveAll/ReleaseAll operations, which perform atomically-checked
// read-modify-writes inside the enclosing transaction. That keeps the
// "stock never negative" invariant intact under concurrent checkouts.
package product
