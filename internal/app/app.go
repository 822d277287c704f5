package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"secinstall/internal/config"
	"secinstall/internal/handlers"
	"secinstall/internal/migrations"
	"secinstall/internal/repositories"
	"secinstall/internal/routes"
	"secinstall/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "secinstall/docs"
)

func Run() {
	cfg := config.LoadConfig()

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

	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("failed to apply migrations: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	financialLogRepo := repositories.NewFinancialLogRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	legalDocumentRepo := repositories.NewLegalDocumentRepository(db)
	rateRepo := repositories.NewRateRepository(db)
	referralRepo := repositories.NewReferralRepository(db)

	// === Services ===
	authService := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMn)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.OfficeEmail,
	)
	// nil when unconfigured; notifications are skipped
	telegram := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	userService := services.NewUserService(userRepo, emailService, authService)
	inquiryService := services.NewInquiryService(inquiryRepo, emailService, telegram)
	leadService := services.NewLeadService(leadRepo, telegram)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo)
	lifecycleService := services.NewLifecycleService(db, inquiryRepo, leadRepo, clientRepo)
	expenseService := services.NewExpenseService(db, expenseRepo, financialLogRepo)
	invoiceService := services.NewInvoiceService(db, invoiceRepo, financialLogRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	legalDocumentService := services.NewLegalDocumentService(legalDocumentRepo)
	rateService := services.NewRateService(rateRepo)
	referralService := services.NewReferralService(referralRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	leadHandler := handlers.NewLeadHandler(leadService, lifecycleService)
	clientHandler := handlers.NewClientHandler(clientService, lifecycleService)
	projectHandler := handlers.NewProjectHandler(projectService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	legalDocumentHandler := handlers.NewLegalDocumentHandler(legalDocumentService)
	rateHandler := handlers.NewRateHandler(rateService)
	referralHandler := handlers.NewReferralHandler(referralService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		userHandler,
		inquiryHandler,
		leadHandler,
		clientHandler,
		projectHandler,
		expenseHandler,
		invoiceHandler,
		inventoryHandler,
		legalDocumentHandler,
		rateHandler,
		referralHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
