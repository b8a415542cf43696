package postgres

import (
	"context"
	"fmt"

	"garment/internal/adapters/out/postgres/bundlerepo"
	"garment/internal/adapters/out/postgres/cuttingrepo"
	"garment/internal/adapters/out/postgres/employeerepo"
	"garment/internal/adapters/out/postgres/loadingrepo"
	"garment/internal/adapters/out/postgres/orderrepo"
	"garment/internal/adapters/out/postgres/sizecategoryrepo"

	"gorm.io/gorm"
)

// Models lists every table of the store in dependency order.
func Models() []any {
	return []any{
		&sizecategoryrepo.SizeCategoryDTO{},
		&sizecategoryrepo.SizeCategorySizeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderSizeQuantityDTO{},
		&employeerepo.EmployeeDTO{},
		&cuttingrepo.CuttingEntryDTO{},
		&bundlerepo.BundleDTO{},
		&bundlerepo.OperationRecordDTO{},
		&loadingrepo.LoadingTransactionDTO{},
		&loadingrepo.LoadingQuantityDTO{},
	}
}

// TableNames lists the tables created by Migrate, children before parents.
func TableNames() []string {
	return []string{
		"loading_transaction_quantities",
		"loading_transactions",
		"operation_records",
		"bundles",
		"cutting_entries",
		"employees",
		"order_size_quantities",
		"orders",
		"size_category_sizes",
		"size_categories",
	}
}

// Migrate creates or alters every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
