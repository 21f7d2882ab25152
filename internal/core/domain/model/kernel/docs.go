// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds concepts that do not belong to any single aggregate but are
// needed by several of them. Money is the central one: order totals, snapshot
// item prices, and return refunds are all expressed as Money so that cent
// precision is preserved end to end.
//
// All kernel types are immutable value objects with guarded constructors:
// the zero value is invalid and Validate() reports improper construction.
package kernel
