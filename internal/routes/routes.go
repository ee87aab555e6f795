package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	"github.com/BruksfildServices01/valet-reports/internal/config"
	"github.com/BruksfildServices01/valet-reports/internal/handlers"
	infraRepo "github.com/BruksfildServices01/valet-reports/internal/infra/repository"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
	"github.com/BruksfildServices01/valet-reports/internal/middleware"
	"github.com/BruksfildServices01/valet-reports/internal/session"
	"github.com/BruksfildServices01/valet-reports/internal/timezone"
	ucAccount "github.com/BruksfildServices01/valet-reports/internal/usecase/account"
	ucLocation "github.com/BruksfildServices01/valet-reports/internal/usecase/location"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
	ucShift "github.com/BruksfildServices01/valet-reports/internal/usecase/shift"
)

// Deps are the process wide singletons the HTTP layer is built on.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions *session.Manager
	Storage  storage.Storage
	Audit    *audit.Dispatcher
	Logger   *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(d.Config.ReportTimezone)

	userRepo := infraRepo.NewUserGormRepository(d.DB)
	locationRepo := infraRepo.NewLocationGormRepository(d.DB)
	shiftRepo := infraRepo.NewShiftGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)

	auditLogs := audit.New(d.DB)

	// ======================================================
	// 🧠 USE CASES - ACCOUNTS & LOCATIONS
	// ======================================================
	registerUC := ucAccount.NewRegister(userRepo, d.Audit)
	loginUC := ucAccount.NewLogin(userRepo)

	listLocationsUC := ucLocation.NewListLocations(locationRepo)
	createLocationUC := ucLocation.NewCreateLocation(locationRepo, d.Audit)
	deleteLocationUC := ucLocation.NewDeleteLocation(locationRepo, d.Audit)

	// ======================================================
	// 🧠 USE CASES - SHIFT REPORTS
	// ======================================================
	submitShiftUC := ucShift.NewSubmitShift(shiftRepo, d.Storage, d.Audit, d.Logger)
	listMyShiftsUC := ucShift.NewListMyShifts(shiftRepo)
	getShiftUC := ucShift.NewGetShift(shiftRepo)
	editShiftUC := ucShift.NewEditShift(shiftRepo, d.Audit)
	deleteShiftUC := ucShift.NewDeleteShift(shiftRepo, d.Storage, d.Audit, d.Logger)

	// ======================================================
	// 🧠 USE CASES - REPORTING
	// ======================================================
	listReportsUC := ucReport.NewListReports(reportRepo)
	exportUC := ucReport.NewExportReports(reportRepo, loc)
	dayViewUC := ucReport.NewDayView(reportRepo, loc)
	leaderboardUC := ucReport.NewLeaderboard(reportRepo)
	chartsUC := ucReport.NewCharts(reportRepo, loc)
	galleryUC := ucReport.NewScreenshotGallery(reportRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		d.Sessions,
		!d.Config.IsDevelopment(),
	)
	meHandler := handlers.NewMeHandler(userRepo)

	locationHandler := handlers.NewLocationHandler(
		listLocationsUC,
		createLocationUC,
		deleteLocationUC,
	)

	shiftHandler := handlers.NewShiftHandler(submitShiftUC, listMyShiftsUC, loc)

	adminReportHandler := handlers.NewAdminReportHandler(
		listReportsUC,
		getShiftUC,
		editShiftUC,
		deleteShiftUC,
		loc,
	)

	exportHandler := handlers.NewExportHandler(exportUC, d.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dayViewUC, leaderboardUC, chartsUC)
	screenshotHandler := handlers.NewScreenshotHandler(galleryUC, d.Storage)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogs, loc)

	requireLogin := middleware.RequireLogin(d.Sessions)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// 🔐 VALET (ANY LOGGED IN USER)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(requireLogin)
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/locations", locationHandler.List)

			secured.POST("/shifts", shiftHandler.Submit)
			secured.GET("/shifts", shiftHandler.ListMine)

			secured.GET("/uploads/*key", screenshotHandler.Serve)
		}

		// ------------------------------
		// 🛡️ ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireLogin, middleware.RequireAdmin())
		{
			admin.GET("/locations", locationHandler.List)
			admin.POST("/locations", locationHandler.Create)
			admin.DELETE("/locations/:id", locationHandler.Delete)

			admin.GET("/reports", adminReportHandler.List)
			admin.GET("/reports/:id", adminReportHandler.Get)
			admin.PUT("/reports/:id", adminReportHandler.Update)
			admin.DELETE("/reports/:id", adminReportHandler.Delete)

			admin.GET("/export", exportHandler.Bulk)
			admin.GET("/export-weekly", exportHandler.Weekly)
			admin.GET("/export-weekly.xlsx", exportHandler.WeeklyWorkbook)

			admin.GET("/day-view", dashboardHandler.DayView)
			admin.GET("/leaderboard", dashboardHandler.Leaderboard)
			admin.GET("/charts", dashboardHandler.Charts)
			admin.GET("/charts-compare", dashboardHandler.Compare)

			admin.GET("/screenshots", screenshotHandler.Gallery)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
