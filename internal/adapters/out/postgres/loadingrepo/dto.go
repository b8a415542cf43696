// Package loadingrepo persists loading transactions in one table keyed by
// size-category id, with per-size quantities in a child table.
package loadingrepo

import (
	"time"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"

	"github.com/google/uuid"
)

type LoadingTransactionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        string    `gorm:"type:varchar(32);not null;index"`
	StyleID        string    `gorm:"type:varchar(32);not null"`
	SizeCategoryID int64     `gorm:"not null;index"`
	CategoryName   string    `gorm:"type:varchar(64);not null"`
	LineNo         int       `gorm:"not null;index"`
	EmployeeID     string    `gorm:"type:varchar(32);not null"`
	CreatedBy      string    `gorm:"type:varchar(32);not null"`
	Status         string    `gorm:"type:varchar(32);not null;index"`

	ApprovedBy      *string `gorm:"type:varchar(32)"`
	ApprovedDate    *time.Time
	HandoverBy      *string    `gorm:"type:varchar(32)"`
	HandoverDate    *time.Time `gorm:"index"`
	HandoverStyleID *string    `gorm:"type:varchar(32)"`

	CreatedAt  time.Time            `gorm:"not null"`
	Quantities []LoadingQuantityDTO `gorm:"foreignKey:LoadingTxID;constraint:OnDelete:CASCADE"`
}

func (LoadingTransactionDTO) TableName() string {
	return "loading_transactions"
}

// LoadingQuantityDTO is the loaded quantity of one size; Position keeps the
// category's size order.
type LoadingQuantityDTO struct {
	LoadingTxID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Size        string    `gorm:"type:varchar(16);primaryKey"`
	Position    int       `gorm:"not null"`
	Qty         int       `gorm:"not null"`
}

func (LoadingQuantityDTO) TableName() string {
	return "loading_transaction_quantities"
}

func fromDomain(t *loading.Transaction) LoadingTransactionDTO {
	id := t.ID().Bytes()
	items := t.Quantities().Items()
	quantities := make([]LoadingQuantityDTO, 0, len(items))
	for i, item := range items {
		quantities = append(quantities, LoadingQuantityDTO{LoadingTxID: id, Size: item.Size, Position: i, Qty: item.Qty})
	}

	return LoadingTransactionDTO{
		ID:              id,
		OrderID:         t.OrderID(),
		StyleID:         t.StyleID(),
		SizeCategoryID:  t.Category().ID,
		CategoryName:    t.Category().Name,
		LineNo:          t.LineNo(),
		EmployeeID:      t.EmployeeID(),
		CreatedBy:       t.CreatedBy(),
		Status:          t.Status().String(),
		ApprovedBy:      t.ApprovedBy(),
		ApprovedDate:    t.ApprovedDate(),
		HandoverBy:      t.HandoverBy(),
		HandoverDate:    t.HandoverDate(),
		HandoverStyleID: t.HandoverStyleID(),
		CreatedAt:       t.CreatedAt(),
		Quantities:      quantities,
	}
}

// toDomain expects Quantities sorted by Position.
func toDomain(dto LoadingTransactionDTO) (*loading.Transaction, error) {
	status, err := loading.ParseStatus(dto.Status)
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

	return loading.RestoreTransaction(
		kernel.UUIDFromGoogle(dto.ID),
		dto.OrderID,
		dto.StyleID,
		loading.CategoryRef{ID: dto.SizeCategoryID, Name: dto.CategoryName},
		dto.LineNo,
		dto.EmployeeID,
		dto.CreatedBy,
		status,
		dto.ApprovedBy,
		dto.ApprovedDate,
		dto.HandoverBy,
		dto.HandoverDate,
		dto.HandoverStyleID,
		quantities,
		dto.CreatedAt,
	)
}
