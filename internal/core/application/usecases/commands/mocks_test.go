package commands_test

import (
	"context"
	"testing"
	"time"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/cutting"
	"garment/internal/core/domain/model/employee"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/model/order"
	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBundleRepository struct{ mock.Mock }

func (m *MockBundleRepository) Add(ctx context.Context, b *bundle.Bundle) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBundleRepository) Update(ctx context.Context, b *bundle.Bundle) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBundleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBundleRepository) GetForUpdate(ctx context.Context, id int64) (*bundle.Bundle, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*bundle.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBundleRepository) GetManyForUpdate(ctx context.Context, ids []int64) ([]*bundle.Bundle, error) {
	args := m.Called(ctx, ids)
	if b := args.Get(0); b != nil {
		return b.([]*bundle.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBundleRepository) GetByLoadingForUpdate(ctx context.Context, loadingID kernel.UUID) ([]*bundle.Bundle, error) {
	args := m.Called(ctx, loadingID)
	if b := args.Get(0); b != nil {
		return b.([]*bundle.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBundleRepository) LockSerialSpace(ctx context.Context, space kernel.SerialSpace) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *MockBundleRepository) ListInSerialSpace(ctx context.Context, space kernel.SerialSpace) ([]*bundle.Bundle, error) {
	args := m.Called(ctx, space)
	if b := args.Get(0); b != nil {
		return b.([]*bundle.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBundleRepository) BundledQty(ctx context.Context, cuttingID int64) (int, error) {
	args := m.Called(ctx, cuttingID)
	return args.Int(0), args.Error(1)
}

func (m *MockBundleRepository) IsUsedDownstream(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCuttingRepository struct{ mock.Mock }

func (m *MockCuttingRepository) Get(ctx context.Context, id int64) (*cutting.Entry, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*cutting.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCuttingRepository) GetForUpdate(ctx context.Context, id int64) (*cutting.Entry, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*cutting.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCuttingRepository) CutQuantity(ctx context.Context, orderID, size string) (int, error) {
	args := m.Called(ctx, orderID, size)
	return args.Int(0), args.Error(1)
}

type MockLoadingRepository struct{ mock.Mock }

func (m *MockLoadingRepository) Add(ctx context.Context, t *loading.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockLoadingRepository) Update(ctx context.Context, t *loading.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockLoadingRepository) Delete(ctx context.Context, categoryID int64, id kernel.UUID) error {
	args := m.Called(ctx, categoryID, id)
	return args.Error(0)
}

func (m *MockLoadingRepository) GetForUpdate(ctx context.Context, categoryID int64, id kernel.UUID) (*loading.Transaction, error) {
	args := m.Called(ctx, categoryID, id)
	if t := args.Get(0); t != nil {
		return t.(*loading.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Get(ctx context.Context, empID string) (*employee.Employee, error) {
	args := m.Called(ctx, empID)
	if e := args.Get(0); e != nil {
		return e.(*employee.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSizeCategoryRepository struct{ mock.Mock }

func (m *MockSizeCategoryRepository) GetByName(ctx context.Context, name string) (*sizecategory.SizeCategory, error) {
	args := m.Called(ctx, name)
	if c := args.Get(0); c != nil {
		return c.(*sizecategory.SizeCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies both BundleUoW and LoadingUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

func (m *MockUoW) CuttingRepository() ports.CuttingRepository {
	args := m.Called()
	return args.Get(0).(ports.CuttingRepository)
}

func (m *MockUoW) LoadingRepository() ports.LoadingRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadingRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) SizeCategoryRepository() ports.SizeCategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.SizeCategoryRepository)
}

type MockBundleUoWFactory struct{ mock.Mock }

func (m *MockBundleUoWFactory) Create() commands.BundleUoW {
	args := m.Called()
	return args.Get(0).(commands.BundleUoW)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

// repos bundles every mocked repository behind one MockUoW.
type repos struct {
	uow      *MockUoW
	bundles  *MockBundleRepository
	cutting  *MockCuttingRepository
	loadings *MockLoadingRepository
	orders   *MockOrderRepository
	people   *MockEmployeeRepository
	sizes    *MockSizeCategoryRepository
}

func newRepos() repos {
	r := repos{
		uow:      new(MockUoW),
		bundles:  new(MockBundleRepository),
		cutting:  new(MockCuttingRepository),
		loadings: new(MockLoadingRepository),
		orders:   new(MockOrderRepository),
		people:   new(MockEmployeeRepository),
		sizes:    new(MockSizeCategoryRepository),
	}
	r.uow.On("BundleRepository").Return(r.bundles).Maybe()
	r.uow.On("CuttingRepository").Return(r.cutting).Maybe()
	r.uow.On("LoadingRepository").Return(r.loadings).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("EmployeeRepository").Return(r.people).Maybe()
	r.uow.On("SizeCategoryRepository").Return(r.sizes).Maybe()
	return r
}

func (r repos) bundleFactory() *MockBundleUoWFactory {
	f := new(MockBundleUoWFactory)
	f.On("Create").Return(r.uow).Once()
	return f
}

func (r repos) loadingFactory() *MockLoadingUoWFactory {
	f := new(MockLoadingUoWFactory)
	f.On("Create").Return(r.uow).Once()
	return f
}

func (r repos) assert(t *testing.T) {
	t.Helper()
	r.uow.AssertExpectations(t)
	r.bundles.AssertExpectations(t)
	r.cutting.AssertExpectations(t)
	r.loadings.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.people.AssertExpectations(t)
	r.sizes.AssertExpectations(t)
}

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newEntry(t *testing.T, id int64, orderID, size string, qty int) *cutting.Entry {
	t.Helper()
	e, err := cutting.RestoreEntry(id, orderID, 1, "ST-100", "BLK", size, qty)
	require.NoError(t, err)
	return e
}

func newRange(t *testing.T, start, end int) kernel.SerialRange {
	t.Helper()
	r, err := kernel.NewSerialRange(start, end)
	require.NoError(t, err)
	return r
}

func newBundle(t *testing.T, id, cuttingID int64, size string, start, end int) *bundle.Bundle {
	t.Helper()
	space, err := kernel.NewSerialSpace("ST-100", "BLK")
	require.NoError(t, err)
	b, err := bundle.RestoreBundle(id, cuttingID, space, size, end-start+1, newRange(t, start, end),
		nil, "E-1", "E-1", testNow, testNow)
	require.NoError(t, err)
	return b
}

func newEmployee(t *testing.T, id, department string, level int, status employee.Status) *employee.Employee {
	t.Helper()
	e, err := employee.RestoreEmployee(id, "Name "+id, department, level, status)
	require.NoError(t, err)
	return e
}

func newCategory(t *testing.T) *sizecategory.SizeCategory {
	t.Helper()
	c, err := sizecategory.RestoreSizeCategory(3, "ALPHA", []string{"S", "M", "L"})
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	q, err := kernel.NewSizeQuantities(
		kernel.SizeQty{Size: "S", Qty: 100},
		kernel.SizeQty{Size: "M", Qty: 200},
		kernel.SizeQty{Size: "L", Qty: 100},
	)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "ST-100", newCategory(t), q)
	require.NoError(t, err)
	return o
}

func newTransaction(t *testing.T, status loading.Status) *loading.Transaction {
	t.Helper()
	q, err := kernel.NewSizeQuantities(kernel.SizeQty{Size: "M", Qty: 40})
	require.NoError(t, err)
	tx, err := loading.RestoreTransaction(
		kernel.NewUUID(), "ORD-1", "ST-100", loading.CategoryRef{ID: 3, Name: "ALPHA"}, 4,
		"E-1", "E-1", status, nil, nil, nil, nil, nil, q, testNow,
	)
	require.NoError(t, err)
	return tx
}
