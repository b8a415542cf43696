// Package bundle implements the Bundle aggregate: a contiguous, serial-numbered
// group of cut pieces of one size, ready for sewing-line consumption.
//
// Key business rules:
//   - qty always equals the length of the serial range
//   - size, style and colour are copied from the owning cutting entry
//   - a bundle consumed by a loading transaction cannot be resized or deleted
//   - consumption records the minus quantity and the resulting final quantity,
//     floored at zero
//   - releasing a bundle (loading rejected) clears the whole consumption link
//
// Range exclusivity and capacity against the cutting entry span many bundles and
// are enforced by the SerialAllocator domain service.
package bundle
