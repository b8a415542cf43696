package bundle

import "garment/internal/core/domain/model/kernel"

// Consumption links a bundle to the loading transaction that consumed it.
type Consumption struct {
	LoadingID    kernel.UUID
	CategoryName string
	MinusQty     int
	MinusReason  string
	FinalQty     int
}

// finalQty is qty less the minus quantity, never negative.
func finalQty(qty, minusQty int) int {
	return max(qty-minusQty, 0)
}
