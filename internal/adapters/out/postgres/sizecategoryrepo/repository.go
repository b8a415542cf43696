package sizecategoryrepo

import (
	"context"
	"errors"
	"strings"

	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSizeCategoryRepository implements ports.SizeCategoryRepository using GORM.
type GormSizeCategoryRepository struct {
	db *gorm.DB
}

func NewGormSizeCategoryRepository(db *gorm.DB) *GormSizeCategoryRepository {
	return &GormSizeCategoryRepository{db: db}
}

// GetByName resolves a category case-insensitively.
func (r *GormSizeCategoryRepository) GetByName(ctx context.Context, name string) (*sizecategory.SizeCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("sizeCategory")
	}

	var dto SizeCategoryDTO
	if err := r.query(ctx).First(&dto, "lower(name) = lower(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sizeCategory", name)
		}
		return nil, err
	}
	return ToDomain(dto)
}

func (r *GormSizeCategoryRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Sizes", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
