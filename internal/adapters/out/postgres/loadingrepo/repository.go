package loadingrepo

import (
	"context"
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadingRepository implements ports.LoadingRepository using GORM.
type GormLoadingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormLoadingRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadingRepository {
	return &GormLoadingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the transaction together with its quantities.
func (r *GormLoadingRepository) Add(ctx context.Context, aggregate *loading.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(trackKey(aggregate.ID()), aggregate)
	return nil
}

// Update saves status and approval/handover columns. Quantities are fixed at creation.
func (r *GormLoadingRepository) Update(ctx context.Context, aggregate *loading.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadingTransactionDTO{}).
		Where("id = ? AND size_category_id = ?", dto.ID, dto.SizeCategoryID).
		Select("status", "approved_by", "approved_date", "handover_by", "handover_date", "handover_style_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loadingId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(trackKey(aggregate.ID()), aggregate)
	return nil
}

func (r *GormLoadingRepository) Delete(ctx context.Context, categoryID int64, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Delete(&LoadingQuantityDTO{}, "loading_tx_id = ?", id.Bytes()).Error; err != nil {
		return err
	}
	result := db.Delete(&LoadingTransactionDTO{}, "id = ? AND size_category_id = ?", id.Bytes(), categoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loadingId", id.String())
	}
	return nil
}

// GetForUpdate row-locks the transaction. A transaction of another category is
// reported as not found.
func (r *GormLoadingRepository) GetForUpdate(ctx context.Context, categoryID int64, id kernel.UUID) (*loading.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadingTransactionDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND size_category_id = ?", id.Bytes(), categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loadingId", id.String())
		}
		return nil, err
	}

	if err = r.db.WithContext(ctx).
		Where("loading_tx_id = ?", dto.ID).
		Order("position").
		Find(&dto.Quantities).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func trackKey(id kernel.UUID) string {
	return "loading:" + id.String()
}
