package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createRegistrationHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/create_registration"
	getAvailableDatesHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/get_available_dates"
	getParticipantsHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/get_participants"
	getRecaptchaConfigHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/get_recaptcha_config"
	getStatisticsHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/get_statistics"
	updateRecaptchaSettingsHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/update_recaptcha_settings"
	validateRecaptchaHandler "github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers/validate_recaptcha"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/middleware"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/config"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	registrationRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/registration"
	settingsRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/settings"
	recaptchaClient "github.com/mariankubacka/latte-art-bookings-praha/internal/integrations/recaptcha"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/capacity"
	registrationsService "github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations"
	settingsService "github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings"
	createRegistrationUC "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/create_registration"
	getAvailableDatesUC "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_available_dates"
	getStatisticsUC "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_statistics"
	validateRecaptchaUC "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/validate_recaptcha"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/dbmetrics"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/logger"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/metrics"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/simpletxmanager"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/txmanager"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting latte-art-bookings...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Calendar rules come from configuration only; nothing downstream
	// re-derives operating days, holidays or the horizon.
	operatingDays, err := cfg.Booking.OperatingWeekdays()
	if err != nil {
		log.Fatal("Invalid operating days: %v", err)
	}
	holidays := cfg.Booking.Holidays
	if len(holidays) == 0 {
		holidays = domain.DefaultCzechHolidays
	}
	rules := domain.NewCalendarRules(operatingDays, cfg.Booking.HorizonDays, holidays, cfg.Booking.CapacityPerDate)
	log.Info("Calendar rules: %d operating days, horizon %d days, %d holidays, capacity %d",
		len(operatingDays), cfg.Booking.HorizonDays, len(holidays), cfg.Booking.CapacityPerDate)

	verifyClient := recaptchaClient.NewClient(
		cfg.Recaptcha.VerifyURL,
		time.Duration(cfg.Recaptcha.Timeout)*time.Second,
		log,
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		registrationRepository *registrationRepo.Repository
		settingsRepository     *settingsRepo.Repository
		txMgr                  TxManager
	)

	queryTimeout := time.Duration(cfg.Database.QueryTimeout) * time.Second

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		registrationRepository = registrationRepo.NewRepository(wrappedDB, queryTimeout)
		settingsRepository = settingsRepo.NewRepository(wrappedDB, queryTimeout)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		registrationRepository = registrationRepo.NewRepository(db, queryTimeout)
		settingsRepository = settingsRepo.NewRepository(db, queryTimeout)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	ledger := capacity.NewLedger(
		registrationRepository,
		time.Duration(cfg.Booking.CapacityCacheTTL)*time.Second,
		&capacity.RealClock{},
		log,
	)

	registrationsSvc := registrationsService.NewService(registrationRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	validateRecaptchaUseCase := validateRecaptchaUC.NewUseCase(
		settingsRepository,
		verifyClient,
		cfg.Recaptcha.MinScore,
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		rules,
		ledger,
		types.TimeString(cfg.Booking.CourseStart),
		types.TimeString(cfg.Booking.CourseEnd),
		log,
	)

	createRegistrationUseCase := createRegistrationUC.NewUseCase(
		registrationRepository,
		settingsRepository,
		validateRecaptchaUseCase,
		ledger,
		txMgr,
		rules,
		time.Duration(cfg.Recaptcha.ChallengeTimeout)*time.Second,
		log,
	)

	getStatisticsUseCase := getStatisticsUC.NewUseCase(
		registrationRepository,
		rules,
		cfg.Booking.CoursePriceCZK,
		log,
	)

	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createRegistration := createRegistrationHandler.NewHandler(createRegistrationUseCase, log)
	validateRecaptcha := validateRecaptchaHandler.NewHandler(validateRecaptchaUseCase, log)
	getRecaptchaConfig := getRecaptchaConfigHandler.NewHandler(settingsSvc, log)
	getParticipants := getParticipantsHandler.NewHandler(registrationsSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(getStatisticsUseCase, log)
	updateRecaptchaSettings := updateRecaptchaSettingsHandler.NewHandler(settingsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/registrations", createRegistration.Handle).Methods(http.MethodPost)
	api.HandleFunc("/recaptcha/validate", validateRecaptcha.Handle).Methods(http.MethodPost)
	api.HandleFunc("/recaptcha/site-key", getRecaptchaConfig.Handle).Methods(http.MethodGet)

	// Admin routes, guarded by the shared token.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))
	admin.HandleFunc("/registrations", getParticipants.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/recaptcha-settings", updateRecaptchaSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
