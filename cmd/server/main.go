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

	"agency-platform.backend/internal/config"
	"agency-platform.backend/internal/infrastructure/jobs"
	"agency-platform.backend/internal/infrastructure/notifications"
	"agency-platform.backend/internal/infrastructure/repositories"
	"agency-platform.backend/internal/interfaces/http/handlers"
	"agency-platform.backend/internal/interfaces/http/middleware"
	"agency-platform.backend/internal/usecases"
	"agency-platform.backend/pkg/jwt"
	"agency-platform.backend/pkg/logger"
	"agency-platform.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
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
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
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

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	agencyRepo := repositories.NewAgencyRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	verificationPaymentRepo := repositories.NewVerificationPaymentRepository(db)
	pointsRepo := repositories.NewPointsMovementRepository(db)
	membershipRepo := repositories.NewMembershipRequestRepository(db)
	registrationRepo := repositories.NewAgencyRegistrationRepository(db)
	featuredRepo := repositories.NewFeaturedPlacementRepository(db)
	uow := repositories.NewUnitOfWork(db)

	notifier := notifications.NewLoggingGateway()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, agencyRepo)
	activityUsecase := usecases.NewActivityUsecase(profileRepo, agencyRepo, visitRepo, contactRepo)
	rankingUsecase := usecases.NewRankingUsecase(profileRepo, featuredRepo)
	pointsUsecase := usecases.NewPointsUsecase(agencyRepo, pointsRepo, uow)
	verificationUsecase := usecases.NewVerificationUsecase(profileRepo, agencyRepo, verificationRepo, verificationPaymentRepo, userRepo, pointsUsecase, uow, notifier)
	membershipUsecase := usecases.NewMembershipUsecase(membershipRepo, profileRepo, agencyRepo, userRepo, verificationRepo, uow, notifier)
	registrationUsecase := usecases.NewAgencyRegistrationUsecase(registrationRepo, userRepo, agencyRepo, uow, notifier, cfg.Admin.NotificationEmail)
	agencyUsecase := usecases.NewAgencyUsecase(agencyRepo, profileRepo, verificationRepo, membershipRepo, featuredRepo, uow)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	activityRecorder := jobs.NewActivityRecorder(activityUsecase)
	activityRecorder.Start(ctx)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	discoveryHandler := handlers.NewDiscoveryHandler(rankingUsecase, profileUsecase, activityUsecase, activityRecorder)
	profileHandler := handlers.NewProfileHandler(profileUsecase, activityUsecase)
	agencyHandler := handlers.NewAgencyHandler(agencyUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	pointsHandler := handlers.NewPointsHandler(pointsUsecase, agencyUsecase)
	membershipHandler := handlers.NewMembershipHandler(membershipUsecase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase)
	webhookHandler := handlers.NewWebhookHandler(verificationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		discoveryHandler:    discoveryHandler,
		profileHandler:      profileHandler,
		agencyHandler:       agencyHandler,
		verificationHandler: verificationHandler,
		pointsHandler:       pointsHandler,
		membershipHandler:   membershipHandler,
		registrationHandler: registrationHandler,
		webhookHandler:      webhookHandler,
		authMiddleware:      authMiddleware,
		optionalAuth:        optionalAuth,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		activityRecorder.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Agency Platform Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
