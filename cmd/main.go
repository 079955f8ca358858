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

	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	getNextSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_next_slots"
	getPreviousSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_previous_slots"
	getSlotDurationsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_slot_durations"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment"
	calendarClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/calendarservice"
	icsClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/icalfeed"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	getAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// calendarSource общий интерфейс двух реализаций источника календаря
type calendarSource interface {
	getAvailabilityUC.CalendarSource
	availabilityService.EventSource
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Загружаем недельный шаблон доступности
	template, err := config.LoadTemplate(cfg.Availability.TemplateFile)
	if err != nil {
		log.Fatal("Failed to load availability template: %v", err)
	}
	log.Info("Availability template loaded from %s", cfg.Availability.TemplateFile)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем источник календаря
	calendarTimeout := time.Duration(cfg.Calendar.Timeout) * time.Second
	var calendar calendarSource
	switch cfg.Calendar.Mode {
	case "ics":
		calendar = icsClient.NewClient(cfg.Calendar.URL, calendarTimeout, log)
	default:
		calendar = calendarClient.NewClient(cfg.Calendar.URL, calendarTimeout, log)
	}
	log.Info("Calendar source initialized (mode=%s, url=%s, timeout=%ds)",
		cfg.Calendar.Mode, cfg.Calendar.URL, cfg.Calendar.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)

	// Инициализируем сервис доступности
	availabilitySvc := availabilityService.NewService(
		calendar,
		availabilityService.Defaults{
			StepMinutes:      cfg.Availability.AppointmentIntervalMinutes,
			MaxMinutesAhead:  cfg.Availability.MaxMinutesAhead,
			MaxMinutesBefore: cfg.Availability.MaxMinutesBefore,
			Durations:        cfg.Availability.Durations,
		},
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase, err := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		calendar,
		template,
		getAvailabilityUC.Options{
			TimeZone:        cfg.Availability.TimeZone,
			StepMinutes:     cfg.Availability.AppointmentIntervalMinutes,
			PaddingMinutes:  cfg.Availability.PaddingMinutes,
			LeadTimeMinutes: cfg.Availability.LeadTimeMinutes,
		},
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize availability use case: %v", err)
	}

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getNextSlots := getNextSlotsHandler.NewHandler(availabilitySvc, log)
	getPreviousSlots := getPreviousSlotsHandler.NewHandler(availabilitySvc, log)
	getSlotDurations := getSlotDurationsHandler.NewHandler(availabilitySvc, cfg.Availability.Durations, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты по недельному шаблону
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Доступные слоты по контейнерным событиям
	api.HandleFunc("/availability/containers", getAvailability.HandleContainers).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Admin "book next / book previous": слоты вокруг якорного события
	protected.HandleFunc("/slots/next", getNextSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/previous", getPreviousSlots.Handle).Methods(http.MethodPost)

	// Мультидлительный просчёт с одной выборкой календаря
	protected.HandleFunc("/slots/durations", getSlotDurations.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
