// Package order contains the Order aggregate and its lifecycle rules.
//
// An Order is created at checkout in Pending status, accumulates immutable
// line items priced at checkout time, and moves through a forward-only
// lifecycle toward Delivered or Cancelled. Every movement appends a record to
// the order's delivery audit trail, which is append-only and survives the
// order into its terminal states.
//
// Key types:
//   - Order: the aggregate root owning items and the delivery trail
//   - Item: one line of the order with a snapshotted unit price
//   - DeliveryUpdate: one immutable delivery trail record
//   - Status: the lifecycle state with its transition table
//
// Customer-facing transitions (cancellation) consult the Status transition
// table. Operator transitions validate enum membership only.
package order
