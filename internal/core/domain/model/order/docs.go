// Package order provides the domain model for delivery orders awaiting
// triage: the Order aggregate root, its Product line items, and the closed
// enums (Category, CustomerPriority, Status) the priority scorer reads.
//
// Key business rules:
//   - Orders must carry a valid identifier, customer data, timestamps,
//     and at least one valid product
//   - Unrecognized categories and customer tiers are tolerated and score
//     with documented fallbacks instead of failing
//   - Delivery status follows Pending -> Delivered; only pending orders
//     appear in ranked views
//
// The category and tier lookup tables in this package are static
// configuration data, initialized once and never mutated.
package order
