// Package commands contains the write side of the garment core: bundle
// allocation and the loading-transaction state machine. Every handler runs in
// one unit of work; any error rolls the whole unit back.
package commands

import (
	"context"

	"garment/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	BundleRepoFactory interface {
		BundleRepository() ports.BundleRepository
	}

	CuttingRepoFactory interface {
		CuttingRepository() ports.CuttingRepository
	}

	LoadingRepoFactory interface {
		LoadingRepository() ports.LoadingRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	SizeCategoryRepoFactory interface {
		SizeCategoryRepository() ports.SizeCategoryRepository
	}

	// BundleUoW serves the bundle allocator: bundles and the cutting ledger.
	BundleUoW interface {
		TxManager
		BundleRepoFactory
		CuttingRepoFactory
	}

	BundleUoWFactory interface {
		Create() BundleUoW
	}

	// LoadingUoW serves the loading engine, which stamps bundles while it writes
	// loading transactions.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tx, err := uow.LoadingRepository().GetForUpdate(ctx, categoryID, id)
	//   // ... transition and save
	//
	//   err = uow.Commit(ctx)
	LoadingUoW interface {
		TxManager
		LoadingRepoFactory
		BundleRepoFactory
		CuttingRepoFactory
		OrderRepoFactory
		EmployeeRepoFactory
		SizeCategoryRepoFactory
	}

	LoadingUoWFactory interface {
		Create() LoadingUoW
	}
)
