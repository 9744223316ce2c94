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

	createBookingHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/create_booking"
	createDeactivationHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/create_deactivation"
	createOverrideHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/create_override"
	deleteBookingGroupHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/delete_booking_group"
	getAvailableSlotsHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/get_available_slots"
	getBookingGroupHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/get_booking_group"
	getEventHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/get_event"
	getWorkingHoursHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/get_working_hours"
	listDeactivationsHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/list_deactivations"
	listOverridesHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/list_overrides"
	listSectionEventsHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/list_section_events"
	setDeactivationActiveHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/set_deactivation_active"
	setOverrideActiveHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/set_override_active"
	updateEventStatusHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/update_event_status"
	updateOverrideHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/update_override"
	updateWorkingHoursHandler "github.com/fablab-portal/SchedulingService/internal/api/handlers/update_working_hours"
	"github.com/fablab-portal/SchedulingService/internal/api/middleware"
	"github.com/fablab-portal/SchedulingService/internal/config"
	eventsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/events"
	scheduleRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/schedule"
	sectionsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/sections"
	eventsService "github.com/fablab-portal/SchedulingService/internal/service/events"
	scheduleService "github.com/fablab-portal/SchedulingService/internal/service/schedule"
	sectionsService "github.com/fablab-portal/SchedulingService/internal/service/sections"
	createBookingUC "github.com/fablab-portal/SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/fablab-portal/SchedulingService/internal/usecase/get_available_slots"
	"github.com/fablab-portal/SchedulingService/pkg/dbmetrics"
	"github.com/fablab-portal/SchedulingService/pkg/logger"
	"github.com/fablab-portal/SchedulingService/pkg/metrics"
	"github.com/fablab-portal/SchedulingService/pkg/simpletxmanager"
	"github.com/fablab-portal/SchedulingService/pkg/txmanager"
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

	log.Info("Starting SchedulingService...")
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

	var (
		eventsRepository   *eventsRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		sectionsRepository *sectionsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventsRepository = eventsRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		sectionsRepository = sectionsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventsRepository = eventsRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		sectionsRepository = sectionsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	sectionsSvc := sectionsService.NewService(sectionsRepository, log)
	eventsSvc := eventsService.NewService(eventsRepository, txMgr, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		eventsRepository,
		scheduleRepository,
		sectionsRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		eventsRepository,
		scheduleRepository,
		sectionsRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEvent := getEventHandler.NewHandler(eventsSvc, log)
	listSectionEvents := listSectionEventsHandler.NewHandler(eventsSvc, log)
	updateEventStatus := updateEventStatusHandler.NewHandler(eventsSvc, log)
	getBookingGroup := getBookingGroupHandler.NewHandler(eventsSvc, log)
	deleteBookingGroup := deleteBookingGroupHandler.NewHandler(eventsSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createOverride := createOverrideHandler.NewHandler(scheduleSvc, log)
	listOverrides := listOverridesHandler.NewHandler(scheduleSvc, log)
	updateOverride := updateOverrideHandler.NewHandler(scheduleSvc, log)
	setOverrideActive := setOverrideActiveHandler.NewHandler(scheduleSvc, log)
	createDeactivation := createDeactivationHandler.NewHandler(sectionsSvc, log)
	listDeactivations := listDeactivationsHandler.NewHandler(sectionsSvc, log)
	setDeactivationActive := setDeactivationActiveHandler.NewHandler(sectionsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the portal front-end reads availability and the
	// schedule without a user context.
	api.HandleFunc("/sections/{section}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/overrides",
		listOverrides.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sections/{section}/deactivations",
		listDeactivations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sections/{section}/events",
		listSectionEvents.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/groups/{groupId}", getBookingGroup.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/groups/{groupId}", deleteBookingGroup.Handle).Methods(http.MethodDelete)

	// Events
	protected.HandleFunc("/events/{id}", getEvent.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/events/{id}/status", updateEventStatus.Handle).Methods(http.MethodPatch)

	// Schedule administration
	protected.HandleFunc("/schedule/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/overrides", createOverride.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/overrides/{id}", updateOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/overrides/{id}/active", setOverrideActive.Handle).Methods(http.MethodPatch)

	// Section administration
	protected.HandleFunc("/sections/{section}/deactivations", createDeactivation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sections/deactivations/{id}/active", setDeactivationActive.Handle).Methods(http.MethodPatch)

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
