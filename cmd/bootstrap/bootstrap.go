package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/I2oman/HospitalAssessment/config"
	deliveryHttp "github.com/I2oman/HospitalAssessment/internal/delivery/http"
	"github.com/I2oman/HospitalAssessment/internal/delivery/http/handler"
	"github.com/I2oman/HospitalAssessment/internal/delivery/http/middleware"
	"github.com/I2oman/HospitalAssessment/internal/infrastructure/database"
	"github.com/I2oman/HospitalAssessment/internal/repository"
	"github.com/I2oman/HospitalAssessment/internal/usecase"
	"github.com/I2oman/HospitalAssessment/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	customValidator := validator.NewValidator()

	// Repositories (leaves-first dependency order)
	insuranceRepo := repository.NewInsuranceRepository()
	doctorRepo := repository.NewDoctorRepository()
	drugRepo := repository.NewDrugRepository()
	patientRepo := repository.NewPatientRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	visitRepo := repository.NewVisitRepository()

	log := logrus.StandardLogger()

	// Usecases
	insuranceUsecase := usecase.NewInsuranceUsecase(db, log, insuranceRepo, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, prescriptionRepo, visitRepo)
	drugUsecase := usecase.NewDrugUsecase(db, log, drugRepo, prescriptionRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, insuranceRepo, prescriptionRepo, visitRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, drugRepo, doctorRepo, patientRepo)
	visitUsecase := usecase.NewVisitUsecase(db, log, visitRepo, doctorRepo, patientRepo)

	// Handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	drugHandler := handler.NewDrugHandler(drugUsecase, customValidator)
	insuranceHandler := handler.NewInsuranceHandler(insuranceUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, visitUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)

	// Middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		doctorHandler,
		drugHandler,
		insuranceHandler,
		patientHandler,
		prescriptionHandler,
		visitHandler,
		loggingMiddleware,
		corsMiddleware,
	)

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the database connection. Safe to call more than once and
// when the connection was never opened.
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		logrus.Info("Database connection closed")
	}
}
