// Package ports defines the persistence contracts of the garment core.
// Implementations live in the postgres adapter; every repository returned by a
// UnitOfWork is bound to that unit's database transaction.
package ports

import (
	"context"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/cutting"
	"garment/internal/core/domain/model/employee"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/model/order"
	"garment/internal/core/domain/model/sizecategory"
)

// CuttingRepository reads the cutting ledger.
type CuttingRepository interface {
	// Get returns the entry or an ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*cutting.Entry, error)

	// GetForUpdate returns the entry and row-locks it until the transaction ends,
	// serializing capacity checks against the same entry.
	GetForUpdate(ctx context.Context, id int64) (*cutting.Entry, error)

	// CutQuantity sums every lay cut for the order in that size; 0 when nothing was cut.
	CutQuantity(ctx context.Context, orderID, size string) (int, error)
}

// BundleRepository persists bundle aggregates.
type BundleRepository interface {
	// Add inserts a new bundle and assigns its generated id.
	Add(ctx context.Context, b *bundle.Bundle) error

	// Update saves shape, consumption and audit fields of an existing bundle.
	Update(ctx context.Context, b *bundle.Bundle) error

	// Delete removes the bundle row.
	Delete(ctx context.Context, id int64) error

	// GetForUpdate returns the bundle row-locked, or an ObjectNotFoundError.
	GetForUpdate(ctx context.Context, id int64) (*bundle.Bundle, error)

	// GetManyForUpdate row-locks the given bundles in id order. A missing id is an
	// ObjectNotFoundError.
	GetManyForUpdate(ctx context.Context, ids []int64) ([]*bundle.Bundle, error)

	// GetByLoadingForUpdate row-locks every bundle consumed by the loading transaction.
	GetByLoadingForUpdate(ctx context.Context, loadingID kernel.UUID) ([]*bundle.Bundle, error)

	// LockSerialSpace takes a transaction-scoped advisory lock on the serial space.
	// Concurrent creates and updates in the same space queue behind it.
	LockSerialSpace(ctx context.Context, space kernel.SerialSpace) error

	// ListInSerialSpace returns every bundle numbered in the serial space.
	ListInSerialSpace(ctx context.Context, space kernel.SerialSpace) ([]*bundle.Bundle, error)

	// BundledQty sums the qty of all bundles cut from the cutting entry.
	BundledQty(ctx context.Context, cuttingID int64) (int, error)

	// IsUsedDownstream reports whether operation records reference the bundle.
	IsUsedDownstream(ctx context.Context, id int64) (bool, error)
}

// LoadingRepository persists loading transactions. Lookups are scoped by the
// size-category id the transaction belongs to.
type LoadingRepository interface {
	Add(ctx context.Context, t *loading.Transaction) error
	Update(ctx context.Context, t *loading.Transaction) error
	Delete(ctx context.Context, categoryID int64, id kernel.UUID) error

	// GetForUpdate returns the transaction row-locked, or an ObjectNotFoundError when
	// no transaction with that id exists in the category.
	GetForUpdate(ctx context.Context, categoryID int64, id kernel.UUID) (*loading.Transaction, error)
}

// OrderRepository reads production orders.
type OrderRepository interface {
	Get(ctx context.Context, id string) (*order.Order, error)
}

// EmployeeRepository reads the identity and role oracle.
type EmployeeRepository interface {
	Get(ctx context.Context, empID string) (*employee.Employee, error)
}

// SizeCategoryRepository resolves size-categories by name.
type SizeCategoryRepository interface {
	GetByName(ctx context.Context, name string) (*sizecategory.SizeCategory, error)
}
