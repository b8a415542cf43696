package http_test

import (
	"context"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/application/usecases/queries"
	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/loading"

	"github.com/stretchr/testify/mock"
)

type MockCreateBundleHandler struct{ mock.Mock }

func (m *MockCreateBundleHandler) Handle(ctx context.Context, cmd commands.CreateBundleCommand) (*bundle.Bundle, error) {
	args := m.Called(ctx, cmd)
	if b := args.Get(0); b != nil {
		return b.(*bundle.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeleteBundleHandler struct{ mock.Mock }

func (m *MockDeleteBundleHandler) Handle(ctx context.Context, cmd commands.DeleteBundleCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockApproveLoadingHandler struct{ mock.Mock }

func (m *MockApproveLoadingHandler) Handle(
	ctx context.Context, cmd commands.ApproveLoadingTransactionCommand,
) (*loading.Transaction, error) {
	args := m.Called(ctx, cmd)
	if t := args.Get(0); t != nil {
		return t.(*loading.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCreateLoadingHandler struct{ mock.Mock }

func (m *MockCreateLoadingHandler) Handle(
	ctx context.Context, cmd commands.CreateLoadingTransactionCommand,
) (*loading.Transaction, error) {
	args := m.Called(ctx, cmd)
	if t := args.Get(0); t != nil {
		return t.(*loading.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBundleStatsHandler struct{ mock.Mock }

func (m *MockBundleStatsHandler) Handle(
	ctx context.Context, query queries.BundleStatsBySizeQuery,
) (*queries.BundleStatsBySizeResponse, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.(*queries.BundleStatsBySizeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecommendationHandler struct{ mock.Mock }

func (m *MockRecommendationHandler) Handle(
	ctx context.Context, query queries.GetRecommendationQuery,
) (*queries.GetRecommendationResponse, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.(*queries.GetRecommendationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDashboardHandler struct{ mock.Mock }

func (m *MockDashboardHandler) Handle(
	ctx context.Context, query queries.GetLoadingDashboardQuery,
) (*queries.GetLoadingDashboardResponse, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.(*queries.GetLoadingDashboardResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
