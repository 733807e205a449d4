package routes

import (
	"github.com/gin-gonic/gin"

	"podium/internal/handlers"
	"podium/internal/middleware"
)

// SetupRoutes wires the public funnel and the guarded back office. Every
// route under /api/admin and /api/sync goes through the auth middleware;
// there are no per-route opt-outs.
func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	dealHandler *handlers.DealHandler,
	projectHandler *handlers.ProjectHandler,
	financeHandler *handlers.FinanceHandler,
	syncHandler *handlers.SyncHandler,
	reconcileHandler *handlers.ReconcileHandler,
	migrationHandler *handlers.MigrationHandler,
	documentHandler *handlers.DocumentHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/api/auth/login", authHandler.Login)
	r.POST("/api/auth/refresh", authHandler.Refresh)
	r.POST("/api/bookings", bookingHandler.Submit)

	// ---- sync endpoints (used by the admin pages)
	sync := r.Group("/api/sync", middleware.AuthMiddleware(), middleware.ReadOnlyGuard())
	{
		sync.POST("/budget", syncHandler.SyncBudget)
		sync.GET("/budget", syncHandler.CompanyReport)
	}

	// ---- back office
	admin := r.Group("/api/admin", middleware.AuthMiddleware(), middleware.ReadOnlyGuard())

	deals := admin.Group("/deals")
	{
		deals.POST("/", dealHandler.Create)
		deals.GET("/", dealHandler.List)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
		deals.POST("/:id/status", dealHandler.UpdateStatus)
	}

	projects := admin.Group("/projects")
	{
		projects.POST("/", projectHandler.Create)
		projects.POST("/from-deal", projectHandler.CreateFromDeal)
		projects.GET("/", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
		projects.POST("/:id/status", projectHandler.UpdateStatus)
		projects.PUT("/:id/stage-tasks", projectHandler.UpdateStageTasks)

		projects.POST("/:id/documents", documentHandler.Generate)
		projects.GET("/:id/documents", documentHandler.ListByProject)
	}

	documents := admin.Group("/documents")
	{
		documents.GET("/:docid/download", documentHandler.Download)
		documents.POST("/:docid/email", documentHandler.EmailInvoice)
	}

	// finance forms and tooling (finance/admin only)
	finances := admin.Group("/finances", middleware.FinanceGuard())
	{
		finances.PUT("/deals/:id", financeHandler.UpdateDealFinance)
		finances.PUT("/projects/:id", financeHandler.UpdateProjectFinance)
	}

	admin.POST("/sync-finance", middleware.FinanceGuard(), reconcileHandler.Run)
	admin.GET("/sync-finance", reconcileHandler.Status)

	admin.GET("/migrate-speaker-fees", migrationHandler.Preview)
	admin.POST("/migrate-speaker-fees", middleware.FinanceGuard(), migrationHandler.Apply)

	reports := admin.Group("/reports")
	{
		reports.GET("/summary", reportHandler.GetSummary)
	}

	return r
}
