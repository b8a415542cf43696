// Package services provides domain services whose rules span several aggregates
// of the garment domain.
//
// The package includes:
//   - SerialAllocator: serial-range exclusivity and cut-quantity capacity for bundles
//   - LoadingGate: role and seniority gates of the loading state machine
//   - LoadingRecommender: picks the order a line should load next
//   - BundlingStats: per-size order, cut and bundled quantities with percentages
//
// Services are stateless; callers load every input inside the same database
// transaction that writes the outcome.
package services
