// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/integration/entrypoint/controller"
	"github.com/spendtrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	spendLimitController  *controller.SpendLimitController
	receiptController     *controller.ReceiptController
	dashboardController   *controller.DashboardController
	uploadRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	spendLimitController *controller.SpendLimitController,
	receiptController *controller.ReceiptController,
	dashboardController *controller.DashboardController,
	uploadRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		spendLimitController:  spendLimitController,
		receiptController:     receiptController,
		dashboardController:   dashboardController,
		uploadRateLimiter:     uploadRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires a
// bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	if r.categoryController != nil {
		v1.GET("/categories", r.categoryController.List)
	}

	if r.transactionController != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.PUT("", r.transactionController.Upsert)
			transactions.DELETE("", r.transactionController.Delete)
		}
	}

	if r.spendLimitController != nil {
		limits := v1.Group("/spend-limits")
		{
			limits.GET("", r.spendLimitController.List)
			limits.PUT("", r.spendLimitController.Upsert)
		}
	}

	if r.receiptController != nil {
		upload := []gin.HandlerFunc{r.receiptController.Upload}
		if r.uploadRateLimiter != nil {
			upload = append([]gin.HandlerFunc{r.uploadRateLimiter.Middleware()}, upload...)
		}
		v1.POST("/transactions/:id/receipts", upload...)

		receipts := v1.Group("/receipts")
		{
			receipts.GET("", r.receiptController.List)
			receipts.DELETE("", r.receiptController.Delete)
		}
	}

	if r.dashboardController != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/data-range", r.dashboardController.GetDataRange)
			dashboard.GET("/balance-series", r.dashboardController.GetBalanceSeries)
			dashboard.GET("/balance-series/chart.png", r.dashboardController.GetBalanceChart)
			dashboard.GET("/category-spend", r.dashboardController.GetCategorySpend)
			dashboard.GET("/breakdown", r.dashboardController.GetBreakdown)
			dashboard.GET("/breakdown/chart.png", r.dashboardController.GetBreakdownChart)
			dashboard.GET("/monthly-summary", r.dashboardController.GetMonthlySummary)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
