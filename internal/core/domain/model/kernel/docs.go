// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - TrackingKey: A value object canonicalizing raw tracking-number scans
//     into the fuzzy comparison keys the reconciliation engine matches on
//   - StaffID: A value object identifying technicians and packers
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
