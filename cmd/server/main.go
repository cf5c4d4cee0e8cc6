package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"harvest-admin.backend/internal/config"
	"harvest-admin.backend/internal/infrastructure/jobs"
	"harvest-admin.backend/internal/infrastructure/repositories"
	"harvest-admin.backend/internal/interfaces/http/handlers"
	"harvest-admin.backend/internal/interfaces/http/middleware"
	"harvest-admin.backend/internal/usecases"
	"harvest-admin.backend/pkg/jwt"
	"harvest-admin.backend/pkg/logger"
	"harvest-admin.backend/pkg/metrics"
	"harvest-admin.backend/pkg/push"
	"harvest-admin.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize metrics
	m := metrics.New("harvest-admin")

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sellerRepo := repositories.NewSellerRepository(db)
	archiveRepo := repositories.NewDeletedUserArchiveRepository(db)
	productRepo := repositories.NewProductRepository(db)
	archivedProductRepo := repositories.NewArchivedProductRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	statsCache := redis.NewCache(redis.GetClient(), "harvest")
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	userUsecase := usecases.NewUserUsecase(userRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo, userRepo)
	lifecycleUsecase := usecases.NewUserLifecycleUsecase(userRepo, sellerRepo, archiveRepo, productRepo, archivedProductRepo, transactionRepo, auditRepo, uow)
	approvalUsecase := usecases.NewApprovalUsecase(userRepo, sellerRepo, productRepo, notificationUsecase)
	productUsecase := usecases.NewProductUsecase(productRepo)
	transactionUsecase := usecases.NewTransactionUsecase(transactionRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, productRepo, transactionRepo, statsCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase, lifecycleUsecase, approvalUsecase, m)
	sellerHandler := handlers.NewSellerHandler(approvalUsecase)
	productHandler := handlers.NewProductHandler(productUsecase, approvalUsecase)
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	auditHandler := handlers.NewAuditHandler(lifecycleUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatchJob := jobs.NewNotificationDispatchJob(notificationRepo, push.NewLogSender(), m)
	if cfg.Jobs.DispatchEnabled {
		go dispatchJob.Start(ctx)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r, m)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		userHandler:         userHandler,
		sellerHandler:       sellerHandler,
		productHandler:      productHandler,
		transactionHandler:  transactionHandler,
		auditHandler:        auditHandler,
		dashboardHandler:    dashboardHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if cfg.Jobs.DispatchEnabled {
			dispatchJob.Stop()
		}
		cancel()
	}()

	// Start server
	log.Printf("🚀 Harvest Admin Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
