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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	applyIncidentBlockHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/apply_incident_block"
	approveReservationHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/approve_reservation"
	cancelReservationHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/cancel_reservation"
	closeIncidentHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/close_incident"
	createBlockHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/create_block"
	createReservationHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/create_reservation"
	createSpaceHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/create_space"
	deactivateSpaceHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/deactivate_space"
	deleteBlockHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/delete_block"
	getAuditLogHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_audit_log"
	getAvailableSpacesHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_available_spaces"
	getPolicyConfigHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_policy_config"
	getReservationHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_space"
	getSpaceCalendarHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_space_calendar"
	getUserReservationsHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/get_user_reservations"
	listIncidentsHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/list_incidents"
	listSpacesHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/list_spaces"
	rejectReservationHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/reject_reservation"
	reportIncidentHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/report_incident"
	resolveIncidentHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/resolve_incident"
	updatePolicyConfigHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/update_policy_config"
	updateSpaceHandler "github.com/m04kA/UDP-ReservationService/internal/api/handlers/update_space"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/config"
	auditRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/audit"
	incidentRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/incident"
	notificationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/notification"
	policyRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/policy"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	auditService "github.com/m04kA/UDP-ReservationService/internal/service/audit"
	incidentsService "github.com/m04kA/UDP-ReservationService/internal/service/incidents"
	notificationsService "github.com/m04kA/UDP-ReservationService/internal/service/notifications"
	policyService "github.com/m04kA/UDP-ReservationService/internal/service/policy"
	reservationsService "github.com/m04kA/UDP-ReservationService/internal/service/reservations"
	spacesService "github.com/m04kA/UDP-ReservationService/internal/service/spaces"
	applyIncidentBlockUC "github.com/m04kA/UDP-ReservationService/internal/usecase/apply_incident_block"
	approveReservationUC "github.com/m04kA/UDP-ReservationService/internal/usecase/approve_reservation"
	createBlockUC "github.com/m04kA/UDP-ReservationService/internal/usecase/create_block"
	createReservationUC "github.com/m04kA/UDP-ReservationService/internal/usecase/create_reservation"
	getAvailableSpacesUC "github.com/m04kA/UDP-ReservationService/internal/usecase/get_available_spaces"
	"github.com/m04kA/UDP-ReservationService/migrations"
	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/logger"
	"github.com/m04kA/UDP-ReservationService/pkg/metrics"
	"github.com/m04kA/UDP-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting UDP-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("sqlite", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (path=%s)", cfg.Database.Path)

	// Применяем миграции
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Оборачиваем соединение: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.New(db)
	}

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	spaceRepository := spaceRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB)
	incidentRepository := incidentRepo.NewRepository(wrappedDB)
	auditRepository := auditRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)

	txMgr := txmanager.New(wrappedDB)

	// Инициализируем сервисы
	auditSvc := auditService.NewService(auditRepository, userRepository, &auditService.RealTimeProvider{}, log)
	notificationsSvc := notificationsService.NewService(notificationRepository, &notificationsService.RealTimeProvider{}, log)
	spacesSvc := spacesService.NewService(spaceRepository, userRepository, auditSvc, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		spaceRepository,
		userRepository,
		notificationsSvc,
		auditSvc,
		log,
	)
	incidentsSvc := incidentsService.NewService(
		incidentRepository,
		spaceRepository,
		userRepository,
		notificationsSvc,
		auditSvc,
		log,
	)
	policySvc := policyService.NewService(policyRepository, userRepository, auditSvc, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		userRepository,
		policyRepository,
		auditSvc,
		txMgr,
		log,
	)
	approveReservationUseCase := approveReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		userRepository,
		notificationsSvc,
		auditSvc,
		txMgr,
		log,
	)
	createBlockUseCase := createBlockUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		userRepository,
		auditSvc,
		txMgr,
		log,
	)
	applyIncidentBlockUseCase := applyIncidentBlockUC.NewUseCase(
		reservationRepository,
		incidentRepository,
		spaceRepository,
		userRepository,
		notificationsSvc,
		auditSvc,
		txMgr,
		log,
	)
	getAvailableSpacesUseCase := getAvailableSpacesUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	rejectReservation := rejectReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	createBlock := createBlockHandler.NewHandler(createBlockUseCase, log)
	deleteBlock := deleteBlockHandler.NewHandler(reservationsSvc, log)
	applyIncidentBlock := applyIncidentBlockHandler.NewHandler(applyIncidentBlockUseCase, log)
	getAvailableSpaces := getAvailableSpacesHandler.NewHandler(getAvailableSpacesUseCase, log)
	getSpaceCalendar := getSpaceCalendarHandler.NewHandler(reservationsSvc, log)
	createSpace := createSpaceHandler.NewHandler(spacesSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spacesSvc, log)
	getSpace := getSpaceHandler.NewHandler(spacesSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spacesSvc, log)
	deactivateSpace := deactivateSpaceHandler.NewHandler(spacesSvc, log)
	reportIncident := reportIncidentHandler.NewHandler(incidentsSvc, log)
	resolveIncident := resolveIncidentHandler.NewHandler(incidentsSvc, log)
	closeIncident := closeIncidentHandler.NewHandler(incidentsSvc, log)
	listIncidents := listIncidentsHandler.NewHandler(incidentsSvc, log)
	getPolicyConfig := getPolicyConfigHandler.NewHandler(policySvc, log)
	updatePolicyConfig := updatePolicyConfigHandler.NewHandler(policySvc, log)
	getAuditLog := getAuditLogHandler.NewHandler(auditSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных пространств на интервал
	api.HandleFunc("/spaces/available", getAvailableSpaces.Handle).Methods(http.MethodGet)

	// Каталог пространств
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)

	// Карточка пространства
	api.HandleFunc("/spaces/{id}", getSpace.Handle).Methods(http.MethodGet)

	// Календарь занятости пространства
	api.HandleFunc("/spaces/{id}/calendar", getSpaceCalendar.Handle).Methods(http.MethodGet)

	// Текущая политика резервирования
	api.HandleFunc("/config", getPolicyConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Резервации ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}/approve", approveReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}/reject", rejectReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Блокировки (для администраторов) ---
	protected.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocks/{id}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Управление пространствами (для администраторов) ---
	protected.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces/{id}", updateSpace.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/spaces/{id}", deactivateSpace.Handle).Methods(http.MethodDelete)

	// --- Инциденты ---
	protected.HandleFunc("/incidents", reportIncident.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/incidents", listIncidents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/incidents/{id}/block", applyIncidentBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/incidents/{id}/resolve", resolveIncident.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/incidents/{id}/close", closeIncident.Handle).Methods(http.MethodPost)

	// --- Конфигурация и аудит (для администраторов) ---
	protected.HandleFunc("/config", updatePolicyConfig.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/audit", getAuditLog.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
