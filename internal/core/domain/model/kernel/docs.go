// Package kernel holds the value objects shared by the garment domain model.
//
// The package includes:
//   - UUID: identifier of loading transactions
//   - SerialRange: a closed interval of bundle serial numbers
//   - SerialSpace: the (style, colour) pair that owns one serial-number sequence
//   - SizeQuantities: an ordered size to quantity map
//
// Values are immutable and must be built through their constructors; zero
// values fail Validate.
package kernel
