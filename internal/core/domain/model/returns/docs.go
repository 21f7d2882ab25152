// Package returns contains the Return aggregate for the refund workflow.
//
// A Return is opened against a delivered order, referencing lines of that
// order with the quantities being sent back. It starts Pending and moves
// through a strict table: an operator approves or rejects it, and an approved
// return completes when the refund is issued. The refund amount is computed
// once at open time from the order's snapshot prices.
package returns
