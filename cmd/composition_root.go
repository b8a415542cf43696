package cmd

import (
	"context"
	"fmt"

	httpin "garment/internal/adapters/in/http"
	"garment/internal/adapters/in/http/api"
	"garment/internal/adapters/out/postgres"
	"garment/internal/adapters/out/postgres/cuttingrepo"
	"garment/internal/adapters/out/xlsx"
	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/application/usecases/queries"
	"garment/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) bundleUoWFactory() commands.BundleUoWFactory {
	return FuncBundleUoWFactory(func() commands.BundleUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) loadingUoWFactory() commands.LoadingUoWFactory {
	return FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateBundleCommandHandler() commands.CreateBundleCommandHandler {
	return commands.NewCreateBundleCommandHandler(c.bundleUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBundleCommandHandler() commands.UpdateBundleCommandHandler {
	return commands.NewUpdateBundleCommandHandler(c.bundleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBundleCommandHandler() commands.DeleteBundleCommandHandler {
	return commands.NewDeleteBundleCommandHandler(c.bundleUoWFactory())
}

func (c *CompositionRoot) CreateCreateLoadingTransactionCommandHandler() commands.CreateLoadingTransactionCommandHandler {
	return commands.NewCreateLoadingTransactionCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateApproveLoadingTransactionCommandHandler() commands.ApproveLoadingTransactionCommandHandler {
	return commands.NewApproveLoadingTransactionCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateRejectLoadingTransactionCommandHandler() commands.RejectLoadingTransactionCommandHandler {
	return commands.NewRejectLoadingTransactionCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateHandoverLoadingTransactionCommandHandler() commands.HandoverLoadingTransactionCommandHandler {
	return commands.NewHandoverLoadingTransactionCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateNextStartingNumberQueryHandler() queries.NextStartingNumberQueryHandler {
	return queries.NewNextStartingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateBundleStatsBySizeQueryHandler() queries.BundleStatsBySizeQueryHandler {
	return queries.NewBundleStatsBySizeQueryHandler(c.gormDB, cuttingrepo.NewGormCuttingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListAvailableBundlesQueryHandler() queries.ListAvailableBundlesQueryHandler {
	return queries.NewListAvailableBundlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateVerifyEmployeeQueryHandler() queries.VerifyEmployeeQueryHandler {
	return queries.NewVerifyEmployeeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecommendationQueryHandler() queries.GetRecommendationQueryHandler {
	return queries.NewGetRecommendationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadingDashboardQueryHandler() queries.GetLoadingDashboardQueryHandler {
	return queries.NewGetLoadingDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateBundle:    c.CreateCreateBundleCommandHandler(),
		UpdateBundle:    c.CreateUpdateBundleCommandHandler(),
		DeleteBundle:    c.CreateDeleteBundleCommandHandler(),
		CreateLoading:   c.CreateCreateLoadingTransactionCommandHandler(),
		ApproveLoading:  c.CreateApproveLoadingTransactionCommandHandler(),
		RejectLoading:   c.CreateRejectLoadingTransactionCommandHandler(),
		HandoverLoading: c.CreateHandoverLoadingTransactionCommandHandler(),

		NextStartingNumber: c.CreateNextStartingNumberQueryHandler(),
		BundleStats:        c.CreateBundleStatsBySizeQueryHandler(),
		AvailableBundles:   c.CreateListAvailableBundlesQueryHandler(),
		VerifyEmployee:     c.CreateVerifyEmployeeQueryHandler(),
		Recommendation:     c.CreateGetRecommendationQueryHandler(),
		Dashboard:          c.CreateGetLoadingDashboardQueryHandler(),

		StatsExporter: xlsx.NewBundleStatsExporter(),
	}, c.logger.Named("http"))
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	e, err := httpin.NewRouter(c.CreateHTTPServer(), doc, c.configs.JWTSecret, c.logger.Named("access"))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLoadingDashboardQueryHandler(),
		c.configs.StaleLoadingSchedule,
		c.configs.StaleLoadingAfter,
		c.logger.Named("jobs"),
	)
}

type FuncBundleUoWFactory func() commands.BundleUoW

func (f FuncBundleUoWFactory) Create() commands.BundleUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}
