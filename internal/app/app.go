package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/config"
	v1 "job-finder-backend/internal/delivery/http/v1"
	"job-finder-backend/internal/repository/postgres"
	"job-finder-backend/internal/usecase"
	"job-finder-backend/pkg/database"
	"job-finder-backend/pkg/email"
	"job-finder-backend/pkg/logger"
	"job-finder-backend/pkg/password"
	"job-finder-backend/pkg/redis"
	"job-finder-backend/pkg/token"
)

const shutdownTimeout = 5 * time.Second

// Application holds everything a service binary needs. All four services
// share the same wiring; only the router and port differ.
type Application struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Deps   v1.RouterDeps
}

// Bootstrap loads configuration and wires repositories and usecases.
func Bootstrap() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	if cfg.RedisURL != "" {
		if err := redis.Initialize(cfg); err != nil {
			logger.Log.Warn("redis unavailable; rate limiting falls back to in-memory", "error", err)
		}
	}

	userRepo := postgres.NewUserRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	payDetailRepo := postgres.NewPayDetailRepository(dbPool)
	deductionRepo := postgres.NewDeductionRepository(dbPool)
	payslipRepo := postgres.NewPayslipRepository(dbPool)

	tokens := token.NewManager(cfg)
	hasher := password.NewHasher(cfg)
	notifier := email.NewService(cfg)
	if !notifier.IsConfigured() {
		logger.Log.Warn("email service not fully configured; notification emails will be skipped")
	}
	templates := email.NewTemplates(cfg.ProductName)

	deps := v1.RouterDeps{
		Config: cfg,
		Tokens: tokens,

		AuthUC: usecase.NewAuthUsecase(
			userRepo, adminRepo, candidateRepo, recruiterRepo,
			tokens, hasher, notifier, templates, cfg,
		),
		UserUC:        usecase.NewUserUsecase(userRepo, hasher, notifier, templates),
		AdminUC:       usecase.NewAdminUsecase(adminRepo, userRepo),
		CandidateUC:   usecase.NewCandidateUsecase(candidateRepo),
		RecruiterUC:   usecase.NewRecruiterUsecase(recruiterRepo),
		JobUC:         usecase.NewJobUsecase(jobRepo, recruiterRepo),
		ApplicationUC: usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, recruiterRepo),
		PayrollUC:     usecase.NewPayrollUsecase(employeeRepo, payDetailRepo, deductionRepo, payslipRepo),
	}

	return &Application{Config: cfg, DB: dbPool, Deps: deps}, nil
}

// Close releases the shared resources.
func (a *Application) Close() {
	a.DB.Close()
	redis.Close()
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Serve(name, port string, handler http.Handler) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		logger.Log.Info("server starting", "service", name, "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "service", name, "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down", "service", name)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", "service", name, "error", err)
	}
	logger.Log.Info("server stopped", "service", name)
}
