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

	bookDefenseHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/book_defense"
	createProfessorHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/create_professor"
	createRoomHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/create_room"
	deleteAvailabilityHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/delete_availability"
	deleteDefenseHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/delete_defense"
	deleteProfessorHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/delete_professor"
	deleteRoomHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/delete_room"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/get_available_slots"
	getInitialDataHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/get_initial_data"
	getWindowHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/get_window"
	listAvailabilityHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/list_availability"
	listDefensesHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/list_defenses"
	listProfessorsHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/list_professors"
	listRoomsHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/list_rooms"
	setWindowHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/set_window"
	upsertAvailabilityHandler "github.com/m04kA/SMC-DefenseService/internal/api/handlers/upsert_availability"
	"github.com/m04kA/SMC-DefenseService/internal/api/middleware"
	"github.com/m04kA/SMC-DefenseService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	defenseRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/defense"
	professorRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/professor"
	roomRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/room"
	studentRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/student"
	windowRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/window"
	"github.com/m04kA/SMC-DefenseService/internal/integrations/mailer"
	"github.com/m04kA/SMC-DefenseService/internal/notify"
	catalogService "github.com/m04kA/SMC-DefenseService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-DefenseService/internal/service/schedule"
	bookDefenseUC "github.com/m04kA/SMC-DefenseService/internal/usecase/book_defense"
	getAvailableSlotsUC "github.com/m04kA/SMC-DefenseService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenseService/pkg/logger"
	"github.com/m04kA/SMC-DefenseService/pkg/metrics"
	"github.com/m04kA/SMC-DefenseService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DefenseService/pkg/txmanager"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// discardMailer подменяет почтовый клиент при выключенном mailer:
// бронирования работают, письма не уходят
type discardMailer struct{}

func (discardMailer) Send(_ context.Context, _ mailer.Message) error { return nil }

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

	log.Info("Starting SMC-DefenseService...")
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

	// Почтовый клиент и очередь уведомлений
	var mailSender notify.MailSender
	if cfg.Mailer.Enabled {
		mailSender = mailer.NewClient(
			cfg.Mailer.BaseURL,
			cfg.Mailer.APIKey,
			cfg.Mailer.FromAddress,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (base_url=%s, timeout=%ds)", cfg.Mailer.BaseURL, cfg.Mailer.Timeout)
	} else {
		mailSender = discardMailer{}
		log.Warn("Mailer disabled, booking confirmations will not be sent")
	}
	dispatcher := notify.NewDispatcher(mailSender, cfg.Mailer.QueueSize, log)

	// Интерфейс transaction manager для сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		windowRepository       *windowRepo.Repository
		roomRepository         *roomRepo.Repository
		professorRepository    *professorRepo.Repository
		studentRepository      *studentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		defenseRepository      *defenseRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		windowRepository = windowRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		professorRepository = professorRepo.NewRepository(wrappedDB)
		studentRepository = studentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		defenseRepository = defenseRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		windowRepository = windowRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		professorRepository = professorRepo.NewRepository(db)
		studentRepository = studentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		defenseRepository = defenseRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сетка слотов из конфигурации
	dayStart, err := types.NewTimeStringFromString(cfg.Schedule.DayStart)
	if err != nil {
		log.Fatal("Invalid schedule.day_start: %v", err)
	}
	dayEnd, err := types.NewTimeStringFromString(cfg.Schedule.DayEnd)
	if err != nil {
		log.Fatal("Invalid schedule.day_end: %v", err)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		windowRepository,
		defenseRepository,
		roomRepository,
		professorRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		roomRepository,
		professorRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase, err := getAvailableSlotsUC.NewUseCase(
		windowRepository,
		roomRepository,
		professorRepository,
		availabilityRepository,
		defenseRepository,
		dayStart,
		dayEnd,
		cfg.Schedule.SlotMinutes,
		log,
	)
	if err != nil {
		log.Fatal("Failed to build slots use case: %v", err)
	}

	bookDefenseUseCase := bookDefenseUC.NewUseCase(
		studentRepository,
		defenseRepository,
		roomRepository,
		professorRepository,
		dispatcher,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getInitialData := getInitialDataHandler.NewHandler(scheduleSvc, log)
	bookDefense := bookDefenseHandler.NewHandler(bookDefenseUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(catalogSvc, log)
	upsertAvailability := upsertAvailabilityHandler.NewHandler(catalogSvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(catalogSvc, log)
	getWindow := getWindowHandler.NewHandler(scheduleSvc, log)
	setWindow := setWindowHandler.NewHandler(scheduleSvc, log)
	listDefenses := listDefensesHandler.NewHandler(scheduleSvc, log)
	deleteDefense := deleteDefenseHandler.NewHandler(scheduleSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	createRoom := createRoomHandler.NewHandler(catalogSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(catalogSvc, log)
	listProfessors := listProfessorsHandler.NewHandler(catalogSvc, log)
	createProfessor := createProfessorHandler.NewHandler(catalogSvc, log)
	deleteProfessor := deleteProfessorHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (студенты и профессора)
	// ============================================================

	// Доступные слоты для бронирования
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Первичные данные клиента одним запросом
	api.HandleFunc("/schedule/initial-data", getInitialData.Handle).Methods(http.MethodGet)

	// Бронирование защиты
	api.HandleFunc("/defenses", bookDefense.Handle).Methods(http.MethodPost)

	// Слоты доступности
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", upsertAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/{slotId}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Окно защит
	admin.HandleFunc("/window", getWindow.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/window", setWindow.Handle).Methods(http.MethodPut)

	// Защиты
	admin.HandleFunc("/defenses", listDefenses.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/defenses/{defenseId}", deleteDefense.Handle).Methods(http.MethodDelete)

	// Аудитории
	admin.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// Профессора
	admin.HandleFunc("/professors", listProfessors.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/professors", createProfessor.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/professors/{professorId}", deleteProfessor.Handle).Methods(http.MethodDelete)

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

	// Дожидаемся отправки уведомлений, уже стоящих в очереди
	dispatcher.Close()

	log.Info("Server stopped gracefully")
}
