package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Callers Begin, defer Rollback and
// Commit on success; Rollback after Commit is a no-op error.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	BundleRepository() BundleRepository
	CuttingRepository() CuttingRepository
	LoadingRepository() LoadingRepository
	OrderRepository() OrderRepository
	EmployeeRepository() EmployeeRepository
	SizeCategoryRepository() SizeCategoryRepository
}
