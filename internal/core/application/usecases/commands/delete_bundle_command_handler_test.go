package commands_test

import (
	"testing"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteBundleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteBundleCommand(10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	b := newBundle(t, 10, 1, "M", 1, 60)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.bundles.On("GetForUpdate", mock.Anything, int64(10)).Return(b, nil).Once(),
		r.bundles.On("IsUsedDownstream", mock.Anything, int64(10)).Return(false, nil).Once(),
		r.bundles.On("Delete", mock.Anything, int64(10)).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteBundleCommandHandler(r.bundleFactory())
	require.NoError(t, h.Handle(ctx, cmd))
	r.assert(t)
}

func TestDeleteBundleCommandHandler_Handle_UsedDownstream(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteBundleCommand(10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	b := newBundle(t, 10, 1, "M", 1, 60)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.bundles.On("GetForUpdate", mock.Anything, int64(10)).Return(b, nil).Once(),
		r.bundles.On("IsUsedDownstream", mock.Anything, int64(10)).Return(true, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteBundleCommandHandler(r.bundleFactory())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrLocked)
	r.bundles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	r.assert(t)
}

func TestDeleteBundleCommandHandler_Handle_Consumed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteBundleCommand(10, "E-1")
	require.NoError(t, err)

	r := newRepos()
	b := newBundle(t, 10, 1, "M", 1, 60)
	require.NoError(t, b.Consume(kernel.NewUUID(), "ALPHA", 0, "", "E-1", testNow))

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.bundles.On("GetForUpdate", mock.Anything, int64(10)).Return(b, nil).Once(),
		r.bundles.On("IsUsedDownstream", mock.Anything, int64(10)).Return(false, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteBundleCommandHandler(r.bundleFactory())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrLocked)
	r.assert(t)
}
