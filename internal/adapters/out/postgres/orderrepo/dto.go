// Package orderrepo reads production orders with their per-size order
// quantities and resolved size-category.
package orderrepo

import (
	"garment/internal/adapters/out/postgres/sizecategoryrepo"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/order"
)

// OrderDTO represents a production order of one style.
type OrderDTO struct {
	ID             string                           `gorm:"type:varchar(32);primaryKey"`
	StyleID        string                           `gorm:"type:varchar(32);not null;index"`
	SizeCategoryID int64                            `gorm:"not null;index"`
	SizeCategory   sizecategoryrepo.SizeCategoryDTO `gorm:"foreignKey:SizeCategoryID"`
	Quantities     []OrderSizeQuantityDTO           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderSizeQuantityDTO is the ordered quantity of one size.
type OrderSizeQuantityDTO struct {
	OrderID string `gorm:"type:varchar(32);primaryKey"`
	Size    string `gorm:"type:varchar(16);primaryKey"`
	Qty     int    `gorm:"not null"`
}

func (OrderSizeQuantityDTO) TableName() string {
	return "order_size_quantities"
}

// FromDomain maps an order for fixtures; the category row is referenced, not copied.
func FromDomain(o *order.Order) OrderDTO {
	items := o.Quantities().Items()
	quantities := make([]OrderSizeQuantityDTO, 0, len(items))
	for _, item := range items {
		quantities = append(quantities, OrderSizeQuantityDTO{OrderID: o.ID(), Size: item.Size, Qty: item.Qty})
	}
	return OrderDTO{
		ID:             o.ID(),
		StyleID:        o.StyleID(),
		SizeCategoryID: o.Category().ID(),
		Quantities:     quantities,
	}
}

// toDomain expects the SizeCategory association with its sizes preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	category, err := sizecategoryrepo.ToDomain(dto.SizeCategory)
	if err != nil {
		return nil, err
	}

	items := make([]kernel.SizeQty, 0, len(dto.Quantities))
	for _, q := range dto.Quantities {
		items = append(items, kernel.SizeQty{Size: q.Size, Qty: q.Qty})
	}
	quantities, err := kernel.NewSizeQuantities(items...)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.StyleID, category, quantities.Ordered(category.Sizes()))
}
