package app

import (
	"database/sql"
	"fmt"
	"log"

	"podium/internal/config"
	"podium/internal/handlers"
	"podium/internal/middleware"
	"podium/internal/pdf"
	"podium/internal/repositories"
	"podium/internal/routes"
	"podium/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "podium/docs"
)

func Run() {
	cfg := config.LoadConfig()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret is not configured")
	}
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		// alerts are optional; run without them
		log.Printf("telegram disabled: %v", err)
		telegramService = nil
	}

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)
	dealService := services.NewDealService(dealRepo)
	projectService := services.NewProjectService(projectRepo, dealRepo)
	bookingService := services.NewBookingService(dealRepo, emailService, telegramService, cfg.Email.OfficeEmail)

	financeService := services.NewFinanceService(dealRepo, projectRepo)
	reconcileService := services.NewReconcileService(dealRepo, projectRepo, telegramService)
	migrationService := services.NewMigrationService(dealRepo, projectRepo)
	reportService := services.NewReportService(dealRepo, projectRepo)

	pdfGen := pdf.NewDocumentGenerator(cfg.Files.RootDir)
	documentService := services.NewDocumentService(documentRepo, projectRepo, pdfGen, emailService)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	dealHandler := handlers.NewDealHandler(dealService)
	projectHandler := handlers.NewProjectHandler(projectService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	syncHandler := handlers.NewSyncHandler(financeService)
	reconcileHandler := handlers.NewReconcileHandler(reconcileService)
	migrationHandler := handlers.NewMigrationHandler(migrationService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		bookingHandler,
		dealHandler,
		projectHandler,
		financeHandler,
		syncHandler,
		reconcileHandler,
		migrationHandler,
		documentHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
