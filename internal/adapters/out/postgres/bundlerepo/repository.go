package bundlerepo

import (
	"context"
	"errors"
	"fmt"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBundleRepository implements ports.BundleRepository using GORM.
type GormBundleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormBundleRepository(db *gorm.DB, tracker aggregateTracker) *GormBundleRepository {
	return &GormBundleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the bundle and assigns the generated id to the aggregate.
func (r *GormBundleRepository) Add(ctx context.Context, aggregate *bundle.Bundle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(trackKey(aggregate.ID()), aggregate)
	return nil
}

// Update writes every column, so a released bundle gets its consumption columns nulled.
func (r *GormBundleRepository) Update(ctx context.Context, aggregate *bundle.Bundle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BundleDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at", "created_by").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bundleId", dto.ID)
	}

	r.tracker.TrackAggregate(trackKey(aggregate.ID()), aggregate)
	return nil
}

func (r *GormBundleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&BundleDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bundleId", id)
	}
	return nil
}

func (r *GormBundleRepository) GetForUpdate(ctx context.Context, id int64) (*bundle.Bundle, error) {
	var dto BundleDTO
	if err := r.locked(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bundleId", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetManyForUpdate locks rows in id order so concurrent loadings over
// overlapping selections queue instead of deadlocking.
func (r *GormBundleRepository) GetManyForUpdate(ctx context.Context, ids []int64) ([]*bundle.Bundle, error) {
	if len(ids) == 0 {
		return []*bundle.Bundle{}, nil
	}

	var dtos []BundleDTO
	if err := r.locked(ctx).Where("id = ANY(?)", pq.Array(ids)).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("bundleId", id)
		}
	}
	return toDomainList(dtos)
}

func (r *GormBundleRepository) GetByLoadingForUpdate(ctx context.Context, loadingID kernel.UUID) ([]*bundle.Bundle, error) {
	if err := loadingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BundleDTO
	if err := r.locked(ctx).Where("loading_tx_id = ?", loadingID.Bytes()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// LockSerialSpace takes pg_advisory_xact_lock on a 64-bit hash of the space key.
// The lock is released with the surrounding transaction.
func (r *GormBundleRepository) LockSerialSpace(ctx context.Context, space kernel.SerialSpace) error {
	if err := space.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", space.Key()).Error; err != nil {
		return fmt.Errorf("lock serial space %s: %w", space.Key(), err)
	}
	return nil
}

func (r *GormBundleRepository) ListInSerialSpace(ctx context.Context, space kernel.SerialSpace) ([]*bundle.Bundle, error) {
	var dtos []BundleDTO
	if err := r.db.WithContext(ctx).
		Where("style_id = ? AND colour_code = ?", space.StyleID(), space.ColourCode()).
		Order("starting_no").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormBundleRepository) BundledQty(ctx context.Context, cuttingID int64) (int, error) {
	var total int
	if err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(qty), 0)::bigint FROM bundles WHERE cutting_entry_id = ?", cuttingID).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormBundleRepository) IsUsedDownstream(ctx context.Context, id int64) (bool, error) {
	var used bool
	if err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM operation_records WHERE bundle_id = ?)", id).
		Scan(&used).Error; err != nil {
		return false, err
	}
	return used, nil
}

func (r *GormBundleRepository) locked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func toDomainList(dtos []BundleDTO) ([]*bundle.Bundle, error) {
	bundles := make([]*bundle.Bundle, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

func trackKey(id int64) string {
	return fmt.Sprintf("bundle:%d", id)
}
