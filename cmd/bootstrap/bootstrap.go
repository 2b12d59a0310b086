package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-admin-api/config"
	deliveryHttp "clinic-admin-api/internal/delivery/http"
	"clinic-admin-api/internal/delivery/http/handler"
	"clinic-admin-api/internal/delivery/http/middleware"
	"clinic-admin-api/internal/infrastructure/cache"
	"clinic-admin-api/internal/infrastructure/database"
	"clinic-admin-api/internal/jobs"
	"clinic-admin-api/internal/repository"
	"clinic-admin-api/internal/service"
	"clinic-admin-api/internal/usecase"
	"clinic-admin-api/pkg/jwt"
	"clinic-admin-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Scheduler   *jobs.Scheduler
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, scheduler := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Scheduler = scheduler

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and jobs
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *jobs.Scheduler) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	clinicRepo := repository.NewClinicRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	feeChangeRequestRepo := repository.NewFeeChangeRequestRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	eventService := service.NewEventService(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient, auditService)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo, auditService, eventService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, clinicRepo, auditService, eventService)
	doctorImportUsecase := usecase.NewDoctorImportUsecase(db, log, doctorRepo, clinicRepo, auditService, eventService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService, eventService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, auditService, eventService)
	feedbackUsecase := usecase.NewFeedbackUsecase(db, log, feedbackRepo, patientRepo, appointmentRepo, auditService, eventService)
	feeChangeRequestUsecase := usecase.NewFeeChangeRequestUsecase(db, log, feeChangeRequestRepo, doctorRepo, auditService, eventService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, doctorImportUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, customValidator)
	feeChangeRequestHandler := handler.NewFeeChangeRequestHandler(feeChangeRequestUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		clinicHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		feedbackHandler,
		feeChangeRequestHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Initialize job scheduler
	scheduler := jobs.NewScheduler(db, log, appointmentRepo, eventService)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, scheduler
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start background jobs
	if app.Config.App.JobsEnabled {
		if err := app.Scheduler.Start(); err != nil {
			logrus.Fatalf("Failed to start job scheduler: %v", err)
		}
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop background jobs first so nothing writes during teardown
	if app.Config.App.JobsEnabled {
		app.Scheduler.Stop()
	}

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
