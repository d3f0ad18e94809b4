package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-appointment-system/config"
	deliveryHttp "doctor-appointment-system/internal/delivery/http"
	"doctor-appointment-system/internal/delivery/http/handler"
	"doctor-appointment-system/internal/delivery/http/middleware"
	"doctor-appointment-system/internal/infrastructure/cache"
	"doctor-appointment-system/internal/infrastructure/database"
	"doctor-appointment-system/internal/repository"
	"doctor-appointment-system/internal/service"
	"doctor-appointment-system/internal/usecase"
	"doctor-appointment-system/pkg/jwt"
	"doctor-appointment-system/pkg/validator"

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

	// All day/month/year windows are computed in the clinic's zone
	clinicLocation, err := time.LoadLocation(cfg.Clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic timezone %q: %w", cfg.Clinic.Timezone, err)
	}

	// Run schema migrations before opening the GORM connection
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

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

	// Seed fixed roles and the bootstrap admin account
	seedService := service.NewSeedService(db, logrus.StandardLogger(), cfg,
		repository.NewRoleRepository(), repository.NewUserRepository(), repository.NewAdminProfileRepository())
	if err := seedService.Seed(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed initial data: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, clinicLocation)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clinicLocation *time.Location) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	adminProfileRepo := repository.NewAdminProfileRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	receptionistProfileRepo := repository.NewReceptionistProfileRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	paymentRepo := repository.NewPaymentRepository()
	reviewRepo := repository.NewReviewRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	unavailabilityRepo := repository.NewDoctorUnavailabilityRepository()
	notificationRepo := repository.NewNotificationRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	uploadService := service.NewUploadService(cfg.Upload.Dir, log)

	// Initialize usecases
	resolver := usecase.NewProfileResolver(doctorProfileRepo, patientProfileRepo, receptionistProfileRepo, adminProfileRepo)

	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, jwtService, redisClient)
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(db, log, doctorProfileRepo)

	adminDashboardUsecase := usecase.NewAdminDashboardUsecase(db, log, clinicLocation, resolver,
		userRepo, specialtyRepo, appointmentRepo, paymentRepo)
	doctorDashboardUsecase := usecase.NewDoctorDashboardUsecase(db, log, clinicLocation, resolver,
		appointmentRepo, paymentRepo, reviewRepo, scheduleRepo, unavailabilityRepo)
	patientDashboardUsecase := usecase.NewPatientDashboardUsecase(db, log, clinicLocation, resolver,
		appointmentRepo, paymentRepo, notificationRepo, directoryUsecase)
	receptionistDashboardUsecase := usecase.NewReceptionistDashboardUsecase(db, log, clinicLocation, resolver,
		appointmentRepo, paymentRepo, patientProfileRepo, doctorProfileRepo, notificationRepo, directoryUsecase)

	adminProfileUsecase := usecase.NewAdminProfileUsecase(db, log, userRepo, adminProfileRepo, auditService, uploadService)
	adminDoctorUsecase := usecase.NewAdminDoctorUsecase(db, log, userRepo, doctorProfileRepo, specialtyRepo, auditService, uploadService)
	adminPatientUsecase := usecase.NewAdminPatientUsecase(db, log, userRepo, patientProfileRepo, auditService, uploadService)
	adminReceptionistUsecase := usecase.NewAdminReceptionistUsecase(db, log, userRepo, receptionistProfileRepo, auditService, uploadService)
	adminSpecialtyUsecase := usecase.NewAdminSpecialtyUsecase(db, log, specialtyRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	dashboardHandler := handler.NewDashboardHandler(adminDashboardUsecase, doctorDashboardUsecase, patientDashboardUsecase, receptionistDashboardUsecase)
	directoryHandler := handler.NewDoctorDirectoryHandler(directoryUsecase, customValidator)
	adminProfileHandler := handler.NewAdminProfileHandler(adminProfileUsecase, uploadService, customValidator)
	doctorHandler := handler.NewDoctorHandler(adminDoctorUsecase, uploadService, customValidator)
	patientHandler := handler.NewPatientHandler(adminPatientUsecase, uploadService, customValidator)
	receptionistHandler := handler.NewReceptionistHandler(adminReceptionistUsecase, uploadService, customValidator)
	specialtyHandler := handler.NewSpecialtyHandler(adminSpecialtyUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(cfg.Upload.Dir, authHandler, dashboardHandler, directoryHandler,
		adminProfileHandler, doctorHandler, patientHandler, receptionistHandler, specialtyHandler,
		authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
