package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyGestureHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/apply_gesture"
	getBayCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_bay_calendar"
	getEmployeeCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_employee_calendar"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	workshopServiceClient "github.com/m04kA/SMC-CalendarService/internal/integrations/workshopservice"
	applyGestureUC "github.com/m04kA/SMC-CalendarService/internal/usecase/apply_gesture"
	renderCalendarUC "github.com/m04kA/SMC-CalendarService/internal/usecase/render_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// Интерфейсные переменные остаются nil при выключенных метриках,
	// чтобы проверки metrics != nil в usecases работали корректно
	var (
		metricsCollector *metrics.Metrics
		renderMetrics    renderCalendarUC.Metrics
		gestureMetrics   applyGestureUC.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		renderMetrics = metricsCollector
		gestureMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Временная сетка календаря
	grid, err := timegrid.New(
		cfg.Calendar.StartHour,
		cfg.Calendar.EndHour,
		float64(cfg.Calendar.PixelsPerHour),
		cfg.Calendar.SnapStepMinutes,
	)
	if err != nil {
		log.Fatal("Failed to build time grid: %v", err)
	}
	log.Info("Time grid: %02d:00-%02d:00, %dpx/h, snap %dmin",
		cfg.Calendar.StartHour, cfg.Calendar.EndHour,
		cfg.Calendar.PixelsPerHour, cfg.Calendar.SnapStepMinutes)

	// Тайм-зона календаря: все дневные колонки и дни недели считаются в ней
	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Failed to load calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	// Инициализируем клиента WorkshopService (система записи)
	workshopClient := workshopServiceClient.NewClient(
		cfg.WorkshopService.URL,
		time.Duration(cfg.WorkshopService.Timeout)*time.Second,
		log,
	)
	log.Info("WorkshopService client initialized (url=%s timeout=%ds)",
		cfg.WorkshopService.URL, cfg.WorkshopService.Timeout)

	// Инициализируем use cases
	renderCalendarUseCase := renderCalendarUC.NewUseCase(
		workshopClient,
		grid,
		location,
		renderMetrics,
		log,
	)

	applyGestureUseCase := applyGestureUC.NewUseCase(
		workshopClient,
		grid,
		location,
		gestureMetrics,
		log,
	)

	// Инициализируем handlers
	getBayCalendar := getBayCalendarHandler.NewHandler(renderCalendarUseCase, log)
	getEmployeeCalendar := getEmployeeCalendarHandler.NewHandler(renderCalendarUseCase, log)
	applyGesture := applyGestureHandler.NewHandler(applyGestureUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь бокса
	api.HandleFunc("/workshops/{workshopId}/bays/{bayId}/calendar",
		getBayCalendar.Handle).Methods(http.MethodGet)

	// Календарь сотрудника (с подложкой рабочих часов и отсутствий)
	api.HandleFunc("/workshops/{workshopId}/employees/{userId}/calendar",
		getEmployeeCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Разбор жеста указателя (quick-create / перенос / ресайз)
	protected.HandleFunc("/calendar/gestures", applyGesture.Handle).Methods(http.MethodPost)

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
