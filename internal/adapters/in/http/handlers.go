package http

import (
	"context"
	"io"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/application/usecases/queries"
	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/loading"
)

// The server depends on these narrow handler contracts; the command and query
// handlers of the application layer satisfy them.
type (
	CreateBundleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBundleCommand) (*bundle.Bundle, error)
	}
	UpdateBundleHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateBundleCommand) (*bundle.Bundle, error)
	}
	DeleteBundleHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteBundleCommand) error
	}
	CreateLoadingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLoadingTransactionCommand) (*loading.Transaction, error)
	}
	ApproveLoadingHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveLoadingTransactionCommand) (*loading.Transaction, error)
	}
	RejectLoadingHandler interface {
		Handle(ctx context.Context, cmd commands.RejectLoadingTransactionCommand) error
	}
	HandoverLoadingHandler interface {
		Handle(ctx context.Context, cmd commands.HandoverLoadingTransactionCommand) (*loading.Transaction, error)
	}

	NextStartingNumberHandler interface {
		Handle(ctx context.Context, query queries.NextStartingNumberQuery) (int, error)
	}
	BundleStatsHandler interface {
		Handle(ctx context.Context, query queries.BundleStatsBySizeQuery) (*queries.BundleStatsBySizeResponse, error)
	}
	AvailableBundlesHandler interface {
		Handle(ctx context.Context, query queries.ListAvailableBundlesQuery) ([]queries.AvailableBundle, error)
	}
	VerifyEmployeeHandler interface {
		Handle(ctx context.Context, query queries.VerifyEmployeeQuery) (*queries.EmployeeView, error)
	}
	RecommendationHandler interface {
		Handle(ctx context.Context, query queries.GetRecommendationQuery) (*queries.GetRecommendationResponse, error)
	}
	DashboardHandler interface {
		Handle(ctx context.Context, query queries.GetLoadingDashboardQuery) (*queries.GetLoadingDashboardResponse, error)
	}

	// StatsExporter renders bundling stats as a downloadable workbook.
	StatsExporter interface {
		FileName(orderID string) string
		Write(w io.Writer, stats *queries.BundleStatsBySizeResponse) error
	}
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	CreateBundle    CreateBundleHandler
	UpdateBundle    UpdateBundleHandler
	DeleteBundle    DeleteBundleHandler
	CreateLoading   CreateLoadingHandler
	ApproveLoading  ApproveLoadingHandler
	RejectLoading   RejectLoadingHandler
	HandoverLoading HandoverLoadingHandler

	NextStartingNumber NextStartingNumberHandler
	BundleStats        BundleStatsHandler
	AvailableBundles   AvailableBundlesHandler
	VerifyEmployee     VerifyEmployeeHandler
	Recommendation     RecommendationHandler
	Dashboard          DashboardHandler

	StatsExporter StatsExporter
}
