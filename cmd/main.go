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

	cancelBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_car"
	getCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_car"
	getProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_bookings"
	listCarsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_cars"
	loginUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/login_user"
	registerUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/register_user"
	updateCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_car"
	updateCarAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_car_availability"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/auth"
	"github.com/m04kA/SMC-RentalService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	carsService "github.com/m04kA/SMC-RentalService/internal/service/cars"
	usersService "github.com/m04kA/SMC-RentalService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Менеджер аутентификации (bcrypt + JWT)
	authManager := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		carRepository     *carRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		carRepository = carRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		carRepository = carRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	carSvc := carsService.NewService(carRepository, bookingRepository, log)
	userSvc := usersService.NewService(userRepository, authManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		carRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getProfile := getProfileHandler.NewHandler(userSvc, log)
	listCars := listCarsHandler.NewHandler(carSvc, log)
	getCar := getCarHandler.NewHandler(carSvc, log)
	createCar := createCarHandler.NewHandler(carSvc, log)
	updateCar := updateCarHandler.NewHandler(carSvc, log)
	updateCarAvailability := updateCarAvailabilityHandler.NewHandler(carSvc, log)
	deleteCar := deleteCarHandler.NewHandler(carSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId:[0-9]+}", getCar.Handle).Methods(http.MethodGet)

	// Управление каталогом
	api.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cars/{carId:[0-9]+}", updateCar.Handle).Methods(http.MethodPut)
	api.HandleFunc("/cars/{carId:[0-9]+}/availability", updateCarAvailability.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/cars/{carId:[0-9]+}", deleteCar.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(authManager))

	// Профиль текущего пользователя
	protected.HandleFunc("/auth/profile", getProfile.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings/my-bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
