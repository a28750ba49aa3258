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

	checkAvailabilityHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/check_availability"
	createBayHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/create_bay"
	createTeamHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/create_team"
	deleteBayHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/delete_bay"
	deleteTeamHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/delete_team"
	findAvailableBayHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/find_available_bay"
	getCapacityInfoHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_capacity_info"
	getCapacitySlotsHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_capacity_slots"
	listBaysHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/list_bays"
	listTeamsHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/list_teams"
	"github.com/m04kA/SMC-CapacityService/internal/api/middleware"
	"github.com/m04kA/SMC-CapacityService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/booking"
	resourceRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/resource"
	catalogService "github.com/m04kA/SMC-CapacityService/internal/service/catalog"
	checkAvailabilityUC "github.com/m04kA/SMC-CapacityService/internal/usecase/check_availability"
	enumerateSlotsUC "github.com/m04kA/SMC-CapacityService/internal/usecase/enumerate_slots"
	findAvailableBayUC "github.com/m04kA/SMC-CapacityService/internal/usecase/find_available_bay"
	getCapacityUC "github.com/m04kA/SMC-CapacityService/internal/usecase/get_capacity"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/logger"
	"github.com/m04kA/SMC-CapacityService/pkg/metrics"
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

	log.Info("Starting SMC-CapacityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Инициализируем репозитории (с метриками или без)
	var (
		resourceRepository *resourceRepo.Repository
		bookingRepository  *bookingRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервис каталога ресурсов
	catalogSvc := catalogService.NewService(resourceRepository, log)

	// Инициализируем use cases
	searchWindowHours := cfg.Availability.SearchWindowHours

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		catalogSvc,
		bookingRepository,
		searchWindowHours,
		log,
	)
	findAvailableBayUseCase := findAvailableBayUC.NewUseCase(
		catalogSvc,
		bookingRepository,
		searchWindowHours,
		log,
	)
	getCapacityUseCase := getCapacityUC.NewUseCase(
		catalogSvc,
		bookingRepository,
		searchWindowHours,
		log,
	)
	enumerateSlotsUseCase := enumerateSlotsUC.NewUseCase(
		catalogSvc,
		bookingRepository,
		searchWindowHours,
		cfg.Availability.DefaultSlotIntervalMinutes,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findAvailableBay := findAvailableBayHandler.NewHandler(findAvailableBayUseCase, log)
	getCapacityInfo := getCapacityInfoHandler.NewHandler(getCapacityUseCase, log)
	getCapacitySlots := getCapacitySlotsHandler.NewHandler(enumerateSlotsUseCase, log)
	listBays := listBaysHandler.NewHandler(catalogSvc, log)
	listTeams := listTeamsHandler.NewHandler(catalogSvc, log)
	createBay := createBayHandler.NewHandler(catalogSvc, log)
	deleteBay := deleteBayHandler.NewHandler(catalogSvc, log)
	createTeam := createTeamHandler.NewHandler(catalogSvc, log)
	deleteTeam := deleteTeamHandler.NewHandler(catalogSvc, log)

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

	// Проверка доступности ресурса в интервале времени
	api.HandleFunc("/resources/{resourceType}/{resourceId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Подбор первого свободного бокса под класс автомобиля
	api.HandleFunc("/bays/find-available", findAvailableBay.Handle).Methods(http.MethodGet)

	// Снимок загрузки боксов на момент времени
	api.HandleFunc("/capacity", getCapacityInfo.Handle).Methods(http.MethodGet)

	// Перечисление слотов с доступной вместимостью
	api.HandleFunc("/capacity/slots", getCapacitySlots.Handle).Methods(http.MethodGet)

	// Каталог ресурсов
	api.HandleFunc("/bays", listBays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teams", listTeams.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление каталогом ресурсов ---
	protected.HandleFunc("/bays", createBay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bays/{bayId}", deleteBay.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/teams", createTeam.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/teams/{teamId}", deleteTeam.Handle).Methods(http.MethodDelete)

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
