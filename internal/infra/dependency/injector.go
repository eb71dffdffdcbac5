// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/spendtrack/backend/config"
	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/application/usecase/category"
	"github.com/spendtrack/backend/internal/application/usecase/dashboard"
	"github.com/spendtrack/backend/internal/application/usecase/receipt"
	"github.com/spendtrack/backend/internal/application/usecase/spendlimit"
	"github.com/spendtrack/backend/internal/application/usecase/transaction"
	"github.com/spendtrack/backend/internal/infra/server/router"
	"github.com/spendtrack/backend/internal/integration/adapters"
	"github.com/spendtrack/backend/internal/integration/entrypoint/controller"
	"github.com/spendtrack/backend/internal/integration/entrypoint/middleware"
	"github.com/spendtrack/backend/internal/integration/persistence"
)

// Infrastructure holds the connected backing services the application runs on.
type Infrastructure struct {
	DB      *gorm.DB
	Cache   adapter.Cache
	Storage adapter.ObjectStorage
	// Clock overrides the dashboard's notion of today. Nil uses the system clock.
	Clock dashboard.Clock
	// HealthChecks are exposed on GET /health.
	HealthChecks map[string]controller.HealthCheck
}

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	SeedCategories *category.SeedCategoriesUseCase
	RateLimiter    *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, infra Infrastructure) *Injector {
	db := infra.DB

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	receiptRepo := persistence.NewReceiptRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	categoryRepo := persistence.NewCachedCategoryRepository(
		persistence.NewCategoryRepository(db), infra.Cache, cfg.Cache.TTL,
	)
	spendLimitRepo := persistence.NewCachedSpendLimitRepository(
		persistence.NewSpendLimitRepository(db), infra.Cache, cfg.Cache.TTL,
	)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Audience)
	sanitizer := adapters.NewTextSanitizer()

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	upsertTransactionUseCase := transaction.NewUpsertTransactionUseCase(transactionRepo, categoryRepo, sanitizer)
	deleteTransactionsUseCase := transaction.NewDeleteTransactionsUseCase(transactionRepo, infra.Storage)

	// Create spend limit use cases
	listSpendLimitsUseCase := spendlimit.NewListSpendLimitsUseCase(spendLimitRepo)
	upsertSpendLimitUseCase := spendlimit.NewUpsertSpendLimitUseCase(spendLimitRepo, categoryRepo)

	// Create receipt use cases
	listReceiptsUseCase := receipt.NewListReceiptsUseCase(receiptRepo, infra.Storage, cfg.Upload.URLExpiry)
	uploadReceiptsUseCase := receipt.NewUploadReceiptsUseCase(transactionRepo, receiptRepo, infra.Storage, cfg.Upload.MaxImageBytes)
	deleteReceiptsUseCase := receipt.NewDeleteReceiptsUseCase(receiptRepo, infra.Storage)

	// Create dashboard use cases
	getDataRangeUseCase := dashboard.NewGetDataRangeUseCase(dashboardRepo)
	getBalanceSeriesUseCase := dashboard.NewGetBalanceSeriesUseCase(dashboardRepo, infra.Clock)
	getCategorySpendUseCase := dashboard.NewGetCategorySpendSeriesUseCase(dashboardRepo, spendLimitRepo, infra.Clock)
	getSpendBreakdownUseCase := dashboard.NewGetSpendBreakdownUseCase(dashboardRepo, categoryRepo, infra.Clock)
	getMonthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(dashboardRepo, infra.Clock)
	exportBalanceChartUseCase := dashboard.NewExportBalanceChartUseCase(getBalanceSeriesUseCase)
	exportBreakdownChartUseCase := dashboard.NewExportBreakdownChartUseCase(getSpendBreakdownUseCase)

	// Create controllers
	healthController := controller.NewHealthController(infra.HealthChecks)

	categoryController := controller.NewCategoryController(listCategoriesUseCase)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		upsertTransactionUseCase,
		deleteTransactionsUseCase,
	)

	spendLimitController := controller.NewSpendLimitController(
		listSpendLimitsUseCase,
		upsertSpendLimitUseCase,
	)

	receiptController := controller.NewReceiptController(
		listReceiptsUseCase,
		uploadReceiptsUseCase,
		deleteReceiptsUseCase,
		cfg.Upload.MaxImageBytes,
	)

	dashboardController := controller.NewDashboardController(
		getDataRangeUseCase,
		getBalanceSeriesUseCase,
		getCategorySpendUseCase,
		getSpendBreakdownUseCase,
		getMonthlySummaryUseCase,
		exportBalanceChartUseCase,
		exportBreakdownChartUseCase,
	)

	// Create middleware
	uploadRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.Window,
		cfg.RateLimit.Enabled,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		spendLimitController,
		receiptController,
		dashboardController,
		uploadRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		SeedCategories: seedCategoriesUseCase,
		RateLimiter:    uploadRateLimiter,
	}
}
