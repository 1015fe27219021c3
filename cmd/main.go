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

	cancelBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/cancel_booking"
	changeEnquiryStatusHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/change_enquiry_status"
	checkConflictsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_booking"
	createEnquiryHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_enquiry"
	getBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_booking"
	getEnquiryHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_enquiry"
	updateSessionsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_sessions"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	enquiryRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/enquiry"
	clientServiceClient "github.com/m04kA/SMC-VenueService/internal/integrations/clientservice"
	bookingsService "github.com/m04kA/SMC-VenueService/internal/service/bookings"
	enquiriesService "github.com/m04kA/SMC-VenueService/internal/service/enquiries"
	recordsService "github.com/m04kA/SMC-VenueService/internal/service/records"
	changeEnquiryStatusUC "github.com/m04kA/SMC-VenueService/internal/usecase/change_enquiry_status"
	checkConflictsUC "github.com/m04kA/SMC-VenueService/internal/usecase/check_conflicts"
	createBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	updateSessionsUC "github.com/m04kA/SMC-VenueService/internal/usecase/update_sessions"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
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

	log.Info("Starting SMC-VenueService...")
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

	// Инициализируем клиента справочника клиентов CRM
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ClientService=%s timeout=%ds)",
		cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		enquiryRepository *enquiryRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		enquiryRepository = enquiryRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		enquiryRepository = enquiryRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	recordsSvc := recordsService.NewService(enquiryRepository, bookingRepository, log)
	enquiriesSvc := enquiriesService.NewService(enquiryRepository, clientClient, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	checkConflictsUseCase := checkConflictsUC.NewUseCase(recordsSvc, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		recordsSvc,
		clientClient,
		txMgr,
		metricsCollector,
		log,
	)
	changeEnquiryStatusUseCase := changeEnquiryStatusUC.NewUseCase(
		enquiryRepository,
		recordsSvc,
		txMgr,
		metricsCollector,
		log,
	)
	updateSessionsUseCase := updateSessionsUC.NewUseCase(
		enquiryRepository,
		bookingRepository,
		recordsSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	createEnquiry := createEnquiryHandler.NewHandler(enquiriesSvc, log)
	getEnquiry := getEnquiryHandler.NewHandler(enquiriesSvc, log)
	changeEnquiryStatus := changeEnquiryStatusHandler.NewHandler(changeEnquiryStatusUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	updateSessions := updateSessionsHandler.NewHandler(updateSessionsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Предпросмотр конфликтов по набору сессий (dry-run, ничего не меняет)
	api.HandleFunc("/conflict-checks", checkConflicts.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	// Создание заявки
	protected.HandleFunc("/enquiries", createEnquiry.Handle).Methods(http.MethodPost)

	// Получение заявки по ID
	protected.HandleFunc("/enquiries/{enquiryId}", getEnquiry.Handle).Methods(http.MethodGet)

	// Смена статуса заявки (переходы в converted/booked проходят проверку конфликтов)
	protected.HandleFunc("/enquiries/{enquiryId}/status", changeEnquiryStatus.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Сессии ---
	// Полная замена набора сессий заявки или бронирования
	protected.HandleFunc("/records/{kind}/{recordId}/sessions", updateSessions.Handle).Methods(http.MethodPut)

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
