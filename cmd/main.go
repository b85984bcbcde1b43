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

	applyTemplateHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/apply_template"
	createBookingHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/create_booking"
	createTemplateHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/create_template"
	deleteTemplateHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/delete_template"
	getAvailabilityHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/get_booking"
	listAppointmentsHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/list_appointments"
	listConflictsHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/list_conflicts"
	listTemplatesHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/list_templates"
	paymentWebhookHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/payment_webhook"
	rescheduleHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/reschedule_appointment"
	resolveConflictHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/resolve_conflict"
	suggestSlotsHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/suggest_slots"
	updateSlotHandler "github.com/m04kA/TSB-SchedulingService/internal/api/handlers/update_availability_slot"
	"github.com/m04kA/TSB-SchedulingService/internal/api/middleware"
	"github.com/m04kA/TSB-SchedulingService/internal/api/webhooksig"
	"github.com/m04kA/TSB-SchedulingService/internal/config"
	availabilityRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
	templateRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/template"
	calendarSyncClient "github.com/m04kA/TSB-SchedulingService/internal/integrations/calendarsync"
	notifierClient "github.com/m04kA/TSB-SchedulingService/internal/integrations/notifier"
	availabilityService "github.com/m04kA/TSB-SchedulingService/internal/service/availability"
	bookingsService "github.com/m04kA/TSB-SchedulingService/internal/service/bookings"
	calendarService "github.com/m04kA/TSB-SchedulingService/internal/service/calendar"
	confirmPaymentUC "github.com/m04kA/TSB-SchedulingService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/TSB-SchedulingService/internal/usecase/create_booking"
	detectConflictsUC "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
	suggestSlotsUC "github.com/m04kA/TSB-SchedulingService/internal/usecase/suggest_slots"
	"github.com/m04kA/TSB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/TSB-SchedulingService/pkg/logger"
	"github.com/m04kA/TSB-SchedulingService/pkg/metrics"
	"github.com/m04kA/TSB-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/TSB-SchedulingService/pkg/txmanager"
)

// TxManager общий интерфейс обоих менеджеров транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting TSB-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов (обе интеграции best-effort)
	var calendarSync *calendarSyncClient.Client
	if cfg.CalendarSync.Enabled {
		calendarSync = calendarSyncClient.NewClient(
			cfg.CalendarSync.URL,
			cfg.CalendarSync.EventTypeID,
			time.Duration(cfg.CalendarSync.Timeout)*time.Second,
			log,
		)
		log.Info("CalendarSync client initialized (url=%s timeout=%ds)", cfg.CalendarSync.URL, cfg.CalendarSync.Timeout)
	}

	var notifier *notifierClient.Client
	if cfg.Notifier.Enabled {
		notifier = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		templateRepository     *templateRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		templateRepository,
		txMgr,
		cfg.Schedule.HourStart,
		cfg.Schedule.HourEnd,
		log,
	)
	calendarSvc := calendarService.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	suggestSlotsUseCase := suggestSlotsUC.NewUsecase(
		availabilitySvc,
		calendarSvc,
		&suggestSlotsUC.RealTimeProvider{},
		log,
		cfg.Schedule.HourStart,
		cfg.Schedule.HourEnd,
		cfg.Schedule.SuggestionWindowDays,
	)

	// Детектор конфликтов один на процесс: живой список делят все handlers
	conflictDetector := detectConflictsUC.NewUsecase(
		availabilitySvc,
		calendarSvc,
		&detectConflictsUC.RealTimeProvider{},
		log,
		cfg.Schedule.SuggestionWindowDays,
	)

	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		availabilitySvc,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
		cfg.Schedule.HourStart,
		cfg.Schedule.HourEnd,
	)

	// Выключенная интеграция передается как nil-интерфейс
	var calendarForConfirm confirmPaymentUC.CalendarSync
	if calendarSync != nil {
		calendarForConfirm = calendarSync
	}
	var notifierForConfirm confirmPaymentUC.Notifier
	if notifier != nil {
		notifierForConfirm = notifier
	}

	confirmPaymentUseCase := confirmPaymentUC.NewUsecase(
		bookingRepository,
		calendarForConfirm,
		notifierForConfirm,
		log,
	)

	webhookVerifier := webhooksig.NewVerifier(cfg.Payments.WebhookSecret)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateSlot := updateSlotHandler.NewHandler(availabilitySvc, conflictDetector, log)
	createTemplate := createTemplateHandler.NewHandler(availabilitySvc, log)
	listTemplates := listTemplatesHandler.NewHandler(availabilitySvc, log)
	deleteTemplate := deleteTemplateHandler.NewHandler(availabilitySvc, log)
	applyTemplate := applyTemplateHandler.NewHandler(availabilitySvc, conflictDetector, log)
	listAppointments := listAppointmentsHandler.NewHandler(calendarSvc, log)
	reschedule := rescheduleHandler.NewHandler(calendarSvc, conflictDetector, log)
	listConflicts := listConflictsHandler.NewHandler(conflictDetector, log)
	resolveConflict := resolveConflictHandler.NewHandler(availabilitySvc, conflictDetector, log)
	suggestSlots := suggestSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, webhookVerifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности мастера - её видят клиенты при выборе времени
	api.HandleFunc("/artists/{artistId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Подбор слотов для нового сеанса
	api.HandleFunc("/artists/{artistId}/suggested-slots", suggestSlots.Handle).Methods(http.MethodGet)

	// Создание pending бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// События платёжного процессора (аутентификация HMAC-подписью)
	api.HandleFunc("/webhooks/payment", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сетка доступности ---
	protected.HandleFunc("/artists/{artistId}/availability/slots", updateSlot.Handle).Methods(http.MethodPut)

	// --- Шаблоны ---
	protected.HandleFunc("/artists/{artistId}/templates", createTemplate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/artists/{artistId}/templates", listTemplates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/artists/{artistId}/templates/{templateId}", deleteTemplate.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/artists/{artistId}/templates/{templateId}/apply", applyTemplate.Handle).Methods(http.MethodPost)

	// --- Календарь ---
	protected.HandleFunc("/artists/{artistId}/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{bookingId}/reschedule", reschedule.Handle).Methods(http.MethodPatch)

	// --- Конфликты ---
	protected.HandleFunc("/artists/{artistId}/conflicts", listConflicts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/artists/{artistId}/conflicts/resolve", resolveConflict.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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
