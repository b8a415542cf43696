// Package sizecategoryrepo persists size-categories as a typed lookup table in
// place of per-category tables.
package sizecategoryrepo

import (
	"garment/internal/core/domain/model/sizecategory"
)

// SizeCategoryDTO is one size-category, e.g. ALPHA or NUMERIC.
type SizeCategoryDTO struct {
	ID    int64                 `gorm:"primaryKey;autoIncrement"`
	Name  string                `gorm:"type:varchar(64);not null;uniqueIndex"`
	Sizes []SizeCategorySizeDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (SizeCategoryDTO) TableName() string {
	return "size_categories"
}

// SizeCategorySizeDTO is one size of a category; Position keeps the display order.
type SizeCategorySizeDTO struct {
	CategoryID int64  `gorm:"primaryKey"`
	Size       string `gorm:"type:varchar(16);primaryKey"`
	Position   int    `gorm:"not null"`
}

func (SizeCategorySizeDTO) TableName() string {
	return "size_category_sizes"
}

// FromDomain is exported for fixtures of other repositories' tests.
func FromDomain(c *sizecategory.SizeCategory) SizeCategoryDTO {
	sizes := make([]SizeCategorySizeDTO, 0, len(c.Sizes()))
	for i, size := range c.Sizes() {
		sizes = append(sizes, SizeCategorySizeDTO{CategoryID: c.ID(), Size: size, Position: i})
	}
	return SizeCategoryDTO{ID: c.ID(), Name: c.Name(), Sizes: sizes}
}

// ToDomain expects Sizes sorted by Position.
func ToDomain(dto SizeCategoryDTO) (*sizecategory.SizeCategory, error) {
	sizes := make([]string, 0, len(dto.Sizes))
	for _, s := range dto.Sizes {
		sizes = append(sizes, s.Size)
	}
	return sizecategory.RestoreSizeCategory(dto.ID, dto.Name, sizes)
}
