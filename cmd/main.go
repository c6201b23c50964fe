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
	"github.com/redis/go-redis/v9"

	availabilityWindowsHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/availability_windows"
	createBookingHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/create_booking"
	createDowntimeHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/create_downtime"
	createVehicleHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/create_vehicle"
	dashboardSummaryHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/dashboard_summary"
	deleteBookingHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/delete_booking"
	deleteDowntimeHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/delete_downtime"
	deleteVehicleHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/delete_vehicle"
	getBookingHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/get_booking"
	getDowntimeHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/get_downtime"
	getVehicleHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/get_vehicle"
	listBookingsHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/list_bookings"
	listDowntimeHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/list_downtime"
	listVehiclesHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/list_vehicles"
	todayBookingsHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/today_bookings"
	updateBookingHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/update_booking"
	updateDowntimeHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/update_downtime"
	updateVehicleHandler "github.com/dmkvsk/JSR-FleetService/internal/api/handlers/update_vehicle"
	"github.com/dmkvsk/JSR-FleetService/internal/api/middleware"
	"github.com/dmkvsk/JSR-FleetService/internal/config"
	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/internal/infra/memstore"
	bookingRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/booking"
	downtimeRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/downtime"
	vehicleRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
	"github.com/dmkvsk/JSR-FleetService/internal/jobs/fleetmetrics"
	bookingsService "github.com/dmkvsk/JSR-FleetService/internal/service/bookings"
	downtimeService "github.com/dmkvsk/JSR-FleetService/internal/service/downtime"
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
	availabilityWindowsUC "github.com/dmkvsk/JSR-FleetService/internal/usecase/availability_windows"
	createBookingUC "github.com/dmkvsk/JSR-FleetService/internal/usecase/create_booking"
	updateBookingUC "github.com/dmkvsk/JSR-FleetService/internal/usecase/update_booking"
	"github.com/dmkvsk/JSR-FleetService/pkg/dbmetrics"
	"github.com/dmkvsk/JSR-FleetService/pkg/logger"
	"github.com/dmkvsk/JSR-FleetService/pkg/metrics"
	"github.com/dmkvsk/JSR-FleetService/pkg/simpletxmanager"
	"github.com/dmkvsk/JSR-FleetService/pkg/txmanager"
)

// Интерфейсы хранилища, под которые подходят оба бэкенда:
// PostgreSQL репозитории и in-memory store.
type vehicleStorage interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByBrand(ctx context.Context, brand string) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, upd *domain.VehicleUpdate) (*domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int64) error
}

type bookingStorage interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListActive(ctx context.Context) ([]domain.Booking, error)
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	Update(ctx context.Context, id int64, upd *domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type downtimeStorage interface {
	Create(ctx context.Context, d *domain.DowntimeBlock) (*domain.DowntimeBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.DowntimeBlock, error)
	List(ctx context.Context) ([]domain.DowntimeBlock, error)
	ListActive(ctx context.Context) ([]domain.DowntimeBlock, error)
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.DowntimeBlock, error)
	CountActiveByType(ctx context.Context, downtimeType domain.DowntimeType) (int64, error)
	Update(ctx context.Context, id int64, upd *domain.DowntimeUpdate) (*domain.DowntimeBlock, error)
	Delete(ctx context.Context, id int64) error
}

// realClock системное время для сервисов
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
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

	log.Info("Starting JSR-FleetService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем хранилище: PostgreSQL или in-memory,
	// в зависимости от storage.engine в конфигурации
	var (
		vehicleRepository  vehicleStorage
		bookingRepository  bookingStorage
		downtimeRepository downtimeStorage
		txMgr              TxManager
	)

	if cfg.Storage.Engine == config.EngineMemory {
		store := memstore.New()
		vehicleRepository = store.Vehicles()
		bookingRepository = store.Bookings()
		downtimeRepository = store.Downtime()
		txMgr = memstore.NewTransactionManager()
		log.Info("Using in-memory storage engine")
	} else {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			// Инициализируем репозитории с обёрткой метрик
			vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
			bookingRepository = bookingRepo.NewRepository(wrappedDB)
			downtimeRepository = downtimeRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			// Инициализируем репозитории без метрик
			vehicleRepository = vehicleRepo.NewRepository(db)
			bookingRepository = bookingRepo.NewRepository(db)
			downtimeRepository = downtimeRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	clock := realClock{}

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(
		vehicleRepository,
		bookingRepository,
		downtimeRepository,
		clock,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		clock,
		log,
	)
	downtimeSvc := downtimeService.NewService(
		downtimeRepository,
		vehicleRepository,
		clock,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		downtimeRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		downtimeRepository,
		txMgr,
		log,
	)
	availabilityWindowsUseCase := availabilityWindowsUC.NewUseCase(
		vehicleRepository,
		bookingRepository,
		downtimeRepository,
		log,
	)

	// Инициализируем handlers
	createVehicle := createVehicleHandler.NewHandler(fleetSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(fleetSvc, log)
	getVehicle := getVehicleHandler.NewHandler(fleetSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(fleetSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(fleetSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	todayBookings := todayBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createDowntime := createDowntimeHandler.NewHandler(downtimeSvc, log)
	listDowntime := listDowntimeHandler.NewHandler(downtimeSvc, log)
	getDowntime := getDowntimeHandler.NewHandler(downtimeSvc, log)
	updateDowntime := updateDowntimeHandler.NewHandler(downtimeSvc, log)
	deleteDowntime := deleteDowntimeHandler.NewHandler(downtimeSvc, log)
	dashboardSummary := dashboardSummaryHandler.NewHandler(fleetSvc, log)
	availabilityWindows := availabilityWindowsHandler.NewHandler(availabilityWindowsUseCase, log)

	// Запускаем периодическое обновление fleet-гейджей
	var fleetJob *fleetmetrics.Job
	if cfg.Metrics.Enabled {
		fleetJob = fleetmetrics.New(fleetSvc, metricsCollector, log)
		if err := fleetJob.Start(cfg.Metrics.FleetSchedule); err != nil {
			log.Fatal("Failed to start fleet metrics job: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается X-Request-ID
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Rate limiter поверх Redis (если включен)
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		r.Use(middleware.RateLimit(redisClient, cfg.RateLimit.Limit, window, log))
		log.Info("Rate limiting enabled (%d requests per %s, redis=%s)",
			cfg.RateLimit.Limit, window, cfg.RateLimit.RedisAddr)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Флот ---
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// /bookings/today регистрируется раньше /bookings/{bookingId},
	// иначе "today" попадет в {bookingId}
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/today", todayBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Блоки простоя ---
	api.HandleFunc("/downtime", createDowntime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/downtime", listDowntime.Handle).Methods(http.MethodGet)
	api.HandleFunc("/downtime/{downtimeId}", getDowntime.Handle).Methods(http.MethodGet)
	api.HandleFunc("/downtime/{downtimeId}", updateDowntime.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/downtime/{downtimeId}", deleteDowntime.Handle).Methods(http.MethodDelete)

	// --- Аггрегации ---
	api.HandleFunc("/dashboard-summary", dashboardSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability-windows", availabilityWindows.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи и сбор метрик connection pool
	if fleetJob != nil {
		fleetJob.Stop()
		log.Info("Fleet metrics job stopped")
	}
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
