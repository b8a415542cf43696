// Package order provides the core's read view of a production order.
//
// Orders are owned by order intake; bundling and loading only need the style
// the order produces, its size-category and the ordered quantity per size.
//
// Key business rules:
//   - An order produces exactly one style
//   - An order belongs to exactly one size-category
//   - Ordered quantities only use sizes of that category
package order
