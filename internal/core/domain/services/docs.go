// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shop system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Pricing: a domain service computing order totals and return refunds
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
