package commands_test

import (
	"errors"
	"testing"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/domain/model/bundle"
	"garment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBundleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 40, 61, 100, "E-1")
	require.NoError(t, err)

	r := newRepos()
	entry := newEntry(t, 1, "ORD-1", "M", 100)
	existing := []*bundle.Bundle{newBundle(t, 10, 1, "M", 1, 60)}

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(1)).Return(entry, nil).Once(),
		r.bundles.On("LockSerialSpace", mock.Anything, entry.Space()).Return(nil).Once(),
		r.bundles.On("BundledQty", mock.Anything, int64(1)).Return(60, nil).Once(),
		r.bundles.On("ListInSerialSpace", mock.Anything, entry.Space()).Return(existing, nil).Once(),
		r.bundles.On("Add", mock.Anything, mock.AnythingOfType("*bundle.Bundle")).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	b, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 40, b.Qty())
	assert.Equal(t, "M", b.Size())
	assert.Equal(t, "E-1", b.CreatedBy())
	assert.False(t, b.IsConsumed())
	r.assert(t)
}

// Cutting entry of 100 with a bundle at 1..60: 50..90 overlaps before capacity is considered.
func TestCreateBundleCommandHandler_Handle_RangeConflict(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 41, 50, 90, "E-1")
	require.NoError(t, err)

	r := newRepos()
	entry := newEntry(t, 1, "ORD-1", "M", 100)
	existing := []*bundle.Bundle{newBundle(t, 10, 1, "M", 1, 60)}

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(1)).Return(entry, nil).Once(),
		r.bundles.On("LockSerialSpace", mock.Anything, entry.Space()).Return(nil).Once(),
		r.bundles.On("BundledQty", mock.Anything, int64(1)).Return(60, nil).Once(),
		r.bundles.On("ListInSerialSpace", mock.Anything, entry.Space()).Return(existing, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrRangeConflict)
	r.bundles.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assert(t)
}

func TestCreateBundleCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 41, 61, 101, "E-1")
	require.NoError(t, err)

	r := newRepos()
	entry := newEntry(t, 1, "ORD-1", "M", 100)
	existing := []*bundle.Bundle{newBundle(t, 10, 1, "M", 1, 60)}

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(1)).Return(entry, nil).Once(),
		r.bundles.On("LockSerialSpace", mock.Anything, entry.Space()).Return(nil).Once(),
		r.bundles.On("BundledQty", mock.Anything, int64(1)).Return(60, nil).Once(),
		r.bundles.On("ListInSerialSpace", mock.Anything, entry.Space()).Return(existing, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)

	var capErr *errs.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	r.assert(t)
}

func TestCreateBundleCommandHandler_Handle_QtyMismatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 10, 1, 20, "E-1")
	require.NoError(t, err)

	r := newRepos()
	entry := newEntry(t, 1, "ORD-1", "M", 100)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(1)).Return(entry, nil).Once(),
		r.bundles.On("LockSerialSpace", mock.Anything, entry.Space()).Return(nil).Once(),
		r.bundles.On("BundledQty", mock.Anything, int64(1)).Return(0, nil).Once(),
		r.bundles.On("ListInSerialSpace", mock.Anything, entry.Space()).Return([]*bundle.Bundle{}, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	r.assert(t)
}

func TestCreateBundleCommandHandler_Handle_CuttingNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(9, 10, 1, 10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(9)).
			Return(nil, errs.NewObjectNotFoundError("cuttingId", int64(9))).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assert(t)
}

func TestCreateBundleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockBundleUoWFactory)
	h := commands.NewCreateBundleCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateBundleCommand{})
	require.ErrorIs(t, err, commands.ErrCreateBundleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBundleCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 10, 1, 10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
	r.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateBundleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBundleCommand(1, 10, 1, 10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	entry := newEntry(t, 1, "ORD-1", "M", 100)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.cutting.On("GetForUpdate", mock.Anything, int64(1)).Return(entry, nil).Once(),
		r.bundles.On("LockSerialSpace", mock.Anything, entry.Space()).Return(nil).Once(),
		r.bundles.On("BundledQty", mock.Anything, int64(1)).Return(0, nil).Once(),
		r.bundles.On("ListInSerialSpace", mock.Anything, entry.Space()).Return(nil, nil).Once(),
		r.bundles.On("Add", mock.Anything, mock.AnythingOfType("*bundle.Bundle")).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateBundleCommandHandler(r.bundleFactory())
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	r.assert(t)
}
