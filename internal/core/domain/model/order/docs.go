// Package order provides domain entities and business logic for fulfillment
// order management. It implements the Order aggregate root with lifecycle
// management and state derivation.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, assignments,
//     skip history and the shipped flag
//   - Status: The authoritative lifecycle enum, recomputed deterministically
//     from assignment and shipment facts via InferStatus
//
// Key business rules:
//   - Orders must have an external order reference and a product title
//   - The shipped flag transitions false to true only and is never reverted
//   - The skip history is append-only and preserves repeats
//   - Tester assignment uses first-claim semantics; concurrent claims cannot
//     both succeed
//   - Known-invalid persisted status tokens are healed idempotently on the
//     way in (NormalizeToken) and in bulk by the normalization pass
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
