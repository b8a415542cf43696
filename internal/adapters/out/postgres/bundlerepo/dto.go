// Package bundlerepo persists bundles and reads the operation records that
// reference them.
package bundlerepo

import (
	"time"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BundleDTO is one bundle row. The consumption columns are all NULL while the
// bundle is available and all set once a loading transaction stamps it.
type BundleDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	CuttingEntryID int64  `gorm:"not null;index"`
	StyleID        string `gorm:"type:varchar(32);not null;index:idx_bundle_space"`
	ColourCode     string `gorm:"type:varchar(32);not null;index:idx_bundle_space"`
	Size           string `gorm:"type:varchar(16);not null"`
	Qty            int    `gorm:"not null"`
	StartingNo     int    `gorm:"not null"`
	EndingNo       int    `gorm:"not null"`

	LoadingTxID         *uuid.UUID `gorm:"type:uuid;index"`
	LoadingCategoryName *string    `gorm:"type:varchar(64)"`
	MinusQty            *int
	MinusReason         *string `gorm:"type:varchar(255)"`
	FinalQty            *int

	CreatedBy     string    `gorm:"type:varchar(32);not null"`
	LastChangedBy string    `gorm:"type:varchar(32);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (BundleDTO) TableName() string {
	return "bundles"
}

// OperationRecordDTO is a sewing operation booked against a bundle downstream.
// Its presence locks the bundle against deletion.
type OperationRecordDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	BundleID   int64     `gorm:"not null;index"`
	Operation  string    `gorm:"type:varchar(64);not null"`
	EmployeeID string    `gorm:"type:varchar(32);not null"`
	Qty        int       `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
}

func (OperationRecordDTO) TableName() string {
	return "operation_records"
}

func fromDomain(b *bundle.Bundle) BundleDTO {
	dto := BundleDTO{
		ID:             b.ID(),
		CuttingEntryID: b.CuttingID(),
		StyleID:        b.StyleID(),
		ColourCode:     b.ColourCode(),
		Size:           b.Size(),
		Qty:            b.Qty(),
		StartingNo:     b.Serial().Start(),
		EndingNo:       b.Serial().End(),
		CreatedBy:      b.CreatedBy(),
		LastChangedBy:  b.LastChangedBy(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}

	if c := b.Consumption(); c != nil {
		loadingID := c.LoadingID.Bytes()
		dto.LoadingTxID = &loadingID
		dto.LoadingCategoryName = &c.CategoryName
		dto.MinusQty = &c.MinusQty
		dto.MinusReason = &c.MinusReason
		dto.FinalQty = &c.FinalQty
	}
	return dto
}

func toDomain(dto BundleDTO) (*bundle.Bundle, error) {
	space, err := kernel.NewSerialSpace(dto.StyleID, dto.ColourCode)
	if err != nil {
		return nil, err
	}
	serial, err := kernel.NewSerialRange(dto.StartingNo, dto.EndingNo)
	if err != nil {
		return nil, err
	}

	var consumption *bundle.Consumption
	if dto.LoadingTxID != nil {
		consumption = &bundle.Consumption{
			LoadingID:    kernel.UUIDFromGoogle(*dto.LoadingTxID),
			CategoryName: deref(dto.LoadingCategoryName),
			MinusQty:     deref(dto.MinusQty),
			MinusReason:  deref(dto.MinusReason),
			FinalQty:     deref(dto.FinalQty),
		}
	}

	return bundle.RestoreBundle(
		dto.ID,
		dto.CuttingEntryID,
		space,
		dto.Size,
		dto.Qty,
		serial,
		consumption,
		dto.CreatedBy,
		dto.LastChangedBy,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
