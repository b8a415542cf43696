// Package cuttingrepo reads the cutting ledger. Entries are written by the
// cutting room; this service only reads and row-locks them.
package cuttingrepo

import (
	"time"

	"garment/internal/core/domain/model/cutting"
)

// CuttingEntryDTO is one cut lay of an order, for one size of a style/colour.
type CuttingEntryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    string    `gorm:"type:varchar(32);not null;index"`
	LayNo      int       `gorm:"not null"`
	StyleID    string    `gorm:"type:varchar(32);not null;index:idx_cutting_space"`
	ColourCode string    `gorm:"type:varchar(32);not null;index:idx_cutting_space"`
	Size       string    `gorm:"type:varchar(16);not null"`
	Qty        int       `gorm:"not null"`
	CutAt      time.Time `gorm:"not null"`
}

func (CuttingEntryDTO) TableName() string {
	return "cutting_entries"
}

func toDomain(dto CuttingEntryDTO) (*cutting.Entry, error) {
	return cutting.RestoreEntry(dto.ID, dto.OrderID, dto.LayNo, dto.StyleID, dto.ColourCode, dto.Size, dto.Qty)
}
