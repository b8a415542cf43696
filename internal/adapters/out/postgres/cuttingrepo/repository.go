package cuttingrepo

import (
	"context"
	"errors"
	"strings"

	"garment/internal/core/domain/model/cutting"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCuttingRepository implements ports.CuttingRepository using GORM.
type GormCuttingRepository struct {
	db *gorm.DB
}

func NewGormCuttingRepository(db *gorm.DB) *GormCuttingRepository {
	return &GormCuttingRepository{db: db}
}

func (r *GormCuttingRepository) Get(ctx context.Context, id int64) (*cutting.Entry, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE row lock; it only serializes inside a transaction.
func (r *GormCuttingRepository) GetForUpdate(ctx context.Context, id int64) (*cutting.Entry, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCuttingRepository) CutQuantity(ctx context.Context, orderID, size string) (int, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return 0, errs.NewValueIsRequiredError("orderId")
	}
	size = strings.TrimSpace(size)
	if size == "" {
		return 0, errs.NewValueIsRequiredError("size")
	}

	var total int
	err := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(qty), 0)::bigint FROM cutting_entries WHERE order_id = ? AND size = ?",
		orderID, size,
	).Scan(&total).Error
	return total, err
}

func (r *GormCuttingRepository) get(db *gorm.DB, id int64) (*cutting.Entry, error) {
	var dto CuttingEntryDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cuttingId", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
