package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/book_slots"
	cancelAllReservationsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/cancel_all_reservations"
	cancelReservationHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/cancel_reservation"
	cancelReservationsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/cancel_reservations"
	createReservationHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/create_reservation"
	deleteDeskHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/delete_desk"
	getDeskSlotsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/get_desk_slots"
	getGroupedReservationsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/get_grouped_reservations"
	getUserReservationsHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/get_user_reservations"
	listDesksHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/list_desks"
	loadDesksHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/load_desks"
	renameDeskHandler "github.com/m04kA/SMC-DeskService/internal/api/handlers/rename_desk"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/config"
	deskRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/desk"
	"github.com/m04kA/SMC-DeskService/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/reservation"
	desksService "github.com/m04kA/SMC-DeskService/internal/service/desks"
	reservationsService "github.com/m04kA/SMC-DeskService/internal/service/reservations"
	bookSlotsUC "github.com/m04kA/SMC-DeskService/internal/usecase/book_slots"
	createReservationUC "github.com/m04kA/SMC-DeskService/internal/usecase/create_reservation"
	getDeskSlotsUC "github.com/m04kA/SMC-DeskService/internal/usecase/get_desk_slots"
	"github.com/m04kA/SMC-DeskService/internal/worker/cleanup"
	"github.com/m04kA/SMC-DeskService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskService/pkg/logger"
	"github.com/m04kA/SMC-DeskService/pkg/metrics"
	"github.com/m04kA/SMC-DeskService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("DESK_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-DeskService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}
	log.Info("Booking timezone: %s", location)

	// Инициализируем метрики (если включены)
	// При выключенных метриках metricsCollector остаётся nil, методы Observe* его игнорируют
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		version, err := migrations.Up(db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is at version %d", version)
	}

	// Оборачиваем БД: с метриками запросов и пула или прозрачным прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	deskRepository := deskRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	deskSvc := desksService.NewService(
		deskRepository,
		reservationRepository,
		txMgr,
		location,
		log,
	)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		deskRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем use cases
	getDeskSlotsUseCase := getDeskSlotsUC.NewUseCase(
		deskRepository,
		reservationRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		deskRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	bookSlotsUseCase := bookSlotsUC.NewUseCase(createReservationUseCase, log)

	// Инициализируем handlers
	listDesks := listDesksHandler.NewHandler(deskSvc, log)
	loadDesks := loadDesksHandler.NewHandler(deskSvc, log)
	renameDesk := renameDeskHandler.NewHandler(deskSvc, log)
	deleteDesk := deleteDeskHandler.NewHandler(deskSvc, log)
	getDeskSlots := getDeskSlotsHandler.NewHandler(getDeskSlotsUseCase, location, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, location, log)
	bookSlots := bookSlotsHandler.NewHandler(bookSlotsUseCase, location, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getGroupedReservations := getGroupedReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	cancelReservations := cancelReservationsHandler.NewHandler(reservationSvc, log)
	cancelAllReservations := cancelAllReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют Bearer JWT
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Столы ---
	api.HandleFunc("/desks", listDesks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/desks/load", loadDesks.Handle).Methods(http.MethodPost)
	api.HandleFunc("/desks/{deskId}", renameDesk.Handle).Methods(http.MethodPut)
	api.HandleFunc("/desks/{deskId}", deleteDesk.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/desks/{deskId}/slots", getDeskSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/batch", bookSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", cancelAllReservations.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/grouped", getGroupedReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/cancel", cancelReservations.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Фоновая очистка старых бронирований
	workerCtx, stopWorker := context.WithCancel(context.Background())
	var workerWG sync.WaitGroup
	if cfg.Cleanup.Enabled {
		worker := cleanup.NewWorker(
			reservationRepository,
			metricsCollector,
			cfg.Cleanup.Interval(),
			cfg.Cleanup.Retention(),
			log,
		)
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			worker.Run(workerCtx)
		}()
		log.Info("Cleanup worker started (interval=%s, retention=%s)", cfg.Cleanup.Interval(), cfg.Cleanup.Retention())
	}

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем очистку и сбор метрик connection pool
	stopWorker()
	workerWG.Wait()
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
