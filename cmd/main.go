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

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/wedding-composer/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/m04kA/wedding-composer/internal/api/handlers/check_slot_availability"
	createBookingHandler "github.com/m04kA/wedding-composer/internal/api/handlers/create_booking"
	createComposerHandler "github.com/m04kA/wedding-composer/internal/api/handlers/create_composer"
	createUserHandler "github.com/m04kA/wedding-composer/internal/api/handlers/create_user"
	getAvailableSlotsHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_calendar"
	getComposerHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_composer"
	getPricingConfigHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_pricing_config"
	getUserHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_user_bookings"
	getUserComposersHandler "github.com/m04kA/wedding-composer/internal/api/handlers/get_user_composers"
	paymentWebhookHandler "github.com/m04kA/wedding-composer/internal/api/handlers/payment_webhook"
	quotePriceHandler "github.com/m04kA/wedding-composer/internal/api/handlers/quote_price"
	submitComposerHandler "github.com/m04kA/wedding-composer/internal/api/handlers/submit_composer"
	updateComposerHandler "github.com/m04kA/wedding-composer/internal/api/handlers/update_composer"
	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/app"
	"github.com/m04kA/wedding-composer/internal/config"
	bookingRepo "github.com/m04kA/wedding-composer/internal/infra/storage/booking"
	composerRepo "github.com/m04kA/wedding-composer/internal/infra/storage/composer"
	pricingRepo "github.com/m04kA/wedding-composer/internal/infra/storage/pricing"
	userRepo "github.com/m04kA/wedding-composer/internal/infra/storage/user"
	"github.com/m04kA/wedding-composer/internal/integrations/paymentgateway"
	bookingsService "github.com/m04kA/wedding-composer/internal/service/bookings"
	composersService "github.com/m04kA/wedding-composer/internal/service/composers"
	pricingService "github.com/m04kA/wedding-composer/internal/service/pricing"
	usersService "github.com/m04kA/wedding-composer/internal/service/users"
	checkSlotUC "github.com/m04kA/wedding-composer/internal/usecase/check_slot_availability"
	confirmPaymentUC "github.com/m04kA/wedding-composer/internal/usecase/confirm_payment"
	getAvailableSlotsUC "github.com/m04kA/wedding-composer/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/wedding-composer/internal/usecase/get_calendar"
	quotePriceUC "github.com/m04kA/wedding-composer/internal/usecase/quote_price"
	submitPaymentUC "github.com/m04kA/wedding-composer/internal/usecase/submit_payment"
	"github.com/m04kA/wedding-composer/migrations"
	"github.com/m04kA/wedding-composer/pkg/dbmetrics"
	"github.com/m04kA/wedding-composer/pkg/logger"
	"github.com/m04kA/wedding-composer/pkg/metrics"
	"github.com/m04kA/wedding-composer/pkg/txmanager"
)

// domainMetrics счётчики оплат, которые используют use cases
type domainMetrics interface {
	IncPaymentSession(eventType string)
	IncPaymentCompleted(eventType string)
	IncSlotConflict(stage string)
}

func main() {
	configPath := os.Getenv("WEDDING_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting wedding-composer...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики: без Prometheus use cases получают заглушку
	var (
		metricsCollector *metrics.Metrics
		useCaseMetrics   domainMetrics = metrics.Noop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		useCaseMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	if cfg.Database.AutoMigrate {
		migrator, err := app.NewMigrator(db, migrations.FS, ".", log)
		if err != nil {
			log.Fatal("Failed to create migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	composerRepository := composerRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Платёжный шлюз
	gateway := paymentgateway.NewClient(paymentgateway.Options{
		BaseURL:    cfg.Payment.URL,
		APIKey:     cfg.Payment.APIKey,
		Timeout:    time.Duration(cfg.Payment.Timeout) * time.Second,
		Currency:   cfg.Payment.Currency,
		SuccessURL: cfg.Payment.SuccessURL,
		CancelURL:  cfg.Payment.CancelURL,
	}, log)
	if cfg.Payment.PaymentEnabled() {
		log.Info("Payment gateway client initialized (url=%s, timeout=%ds)", cfg.Payment.URL, cfg.Payment.Timeout)
	} else {
		log.Warn("Payment gateway is not configured, submit will respond 503")
	}

	location := cfg.Booking.Location()

	// Инициализируем сервисы
	composerSvc := composersService.NewService(composerRepository, pricingRepository, txMgr, uuid.NewString, log)
	pricingSvc := pricingService.NewService(pricingRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(composerRepository, location, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(composerRepository, location, log)
	checkSlotUseCase := checkSlotUC.NewUseCase(composerRepository, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(pricingRepository, log)
	submitPaymentUseCase := submitPaymentUC.NewUseCase(
		composerRepository,
		pricingRepository,
		gateway,
		txMgr,
		useCaseMetrics,
		location,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		composerRepository,
		txMgr,
		useCaseMetrics,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(pricingSvc, log)
	createComposer := createComposerHandler.NewHandler(composerSvc, log)
	getComposer := getComposerHandler.NewHandler(composerSvc, log)
	updateComposer := updateComposerHandler.NewHandler(composerSvc, log)
	submitComposer := submitComposerHandler.NewHandler(submitPaymentUseCase, log)
	getUserComposers := getUserComposersHandler.NewHandler(composerSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, location, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := wrappedDB.PingContext(req.Context()); err != nil {
			log.Error("GET /health - Database unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Доступность ---
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkSlot.Handle).Methods(http.MethodGet)

	// --- Цены ---
	api.HandleFunc("/pricing/quote", quotePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/pricing/{eventType}", getPricingConfig.Handle).Methods(http.MethodGet)

	// --- Регистрация ---
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// COMPOSER ROUTES (X-User-ID необязателен)
	// ============================================================

	composerRoutes := api.PathPrefix("/composers").Subrouter()
	composerRoutes.Use(middleware.OptionalAuth)

	composerRoutes.HandleFunc("", createComposer.Handle).Methods(http.MethodPost)
	composerRoutes.HandleFunc("/{composerId}", getComposer.Handle).Methods(http.MethodGet)
	composerRoutes.HandleFunc("/{composerId}", updateComposer.Handle).Methods(http.MethodPatch)
	composerRoutes.HandleFunc("/{composerId}/submit", submitComposer.Handle).Methods(http.MethodPost)

	// ============================================================
	// PAYMENT WEBHOOK (общий секрет шлюза)
	// ============================================================

	webhook := api.PathPrefix("/payments").Subrouter()
	webhook.Use(middleware.WebhookSecret(cfg.Payment.WebhookSecret))
	webhook.HandleFunc("/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Пользователи ---
	protected.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/composers", getUserComposers.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
