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
	"github.com/rs/cors"

	bulkTemplateHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/bulk_template"
	bulkUploadHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/bulk_upload"
	cancelVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/cancel_visitor"
	checkAvailabilityHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/check_availability"
	completeVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/complete_visitor"
	dashboardStatsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/dashboard_stats"
	dashboardTrendsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/dashboard_trends"
	deleteVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/delete_visitor"
	exportVisitorsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/export_visitors"
	getAvailableSlotsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/get_available_slots"
	getVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/get_visitor"
	listDepartmentsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/list_departments"
	listVisitorsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/list_visitors"
	loginHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/login"
	refreshTokenHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/refresh_token"
	registerVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/register_visitor"
	rescheduleVisitorHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/reschedule_visitor"
	resendEmailHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/resend_email"
	searchVisitorsHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/search_visitors"
	verifyQRHandler "github.com/vmshq/VMS-VisitorService/internal/api/handlers/verify_qr"
	"github.com/vmshq/VMS-VisitorService/internal/api/middleware"
	"github.com/vmshq/VMS-VisitorService/internal/config"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailer"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	departmentRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/department"
	userRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/user"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
	visitorlogRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitorlog"
	authService "github.com/vmshq/VMS-VisitorService/internal/service/auth"
	dashboardService "github.com/vmshq/VMS-VisitorService/internal/service/dashboard"
	exportService "github.com/vmshq/VMS-VisitorService/internal/service/export"
	visitorsService "github.com/vmshq/VMS-VisitorService/internal/service/visitors"
	bulkUploadUC "github.com/vmshq/VMS-VisitorService/internal/usecase/bulk_upload"
	checkAvailabilityUC "github.com/vmshq/VMS-VisitorService/internal/usecase/check_availability"
	getAvailableSlotsUC "github.com/vmshq/VMS-VisitorService/internal/usecase/get_available_slots"
	registerVisitorUC "github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
	rescheduleVisitorUC "github.com/vmshq/VMS-VisitorService/internal/usecase/reschedule_visitor"
	verifyQRUC "github.com/vmshq/VMS-VisitorService/internal/usecase/verify_qr"
	"github.com/vmshq/VMS-VisitorService/internal/worker"
	"github.com/vmshq/VMS-VisitorService/pkg/dbmetrics"
	"github.com/vmshq/VMS-VisitorService/pkg/logger"
	"github.com/vmshq/VMS-VisitorService/pkg/metrics"
	"github.com/vmshq/VMS-VisitorService/pkg/simpletxmanager"
	"github.com/vmshq/VMS-VisitorService/pkg/txmanager"
)

// serviceMetrics привязывает имя сервиса к счетчикам pkg/metrics
type serviceMetrics struct {
	m       *metrics.Metrics
	service string
}

func (s *serviceMetrics) ObserveHTTPRequest(method, path string, status int, durationSeconds float64) {
	s.m.ObserveHTTPRequest(s.service, method, path, status, time.Duration(durationSeconds*float64(time.Second)))
}

func (s *serviceMetrics) IncMailEnqueued() { s.m.IncMailEnqueued(s.service) }

func (s *serviceMetrics) IncMailFailed() { s.m.IncMailFailed(s.service) }

// noopMetrics используется при выключенных метриках
type noopMetrics struct{}

func (noopMetrics) ObserveHTTPRequest(method, path string, status int, durationSeconds float64) {}

func (noopMetrics) IncMailEnqueued() {}

func (noopMetrics) IncMailFailed() {}

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

	log.Info("Starting VMS-VisitorService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	stopMetricsCh := make(chan struct{})

	var svcMetrics interface {
		ObserveHTTPRequest(method, path string, status int, durationSeconds float64)
		IncMailEnqueued()
		IncMailFailed()
	} = noopMetrics{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New()
		svcMetrics = &serviceMetrics{m: metricsCollector, service: cfg.Metrics.ServiceName}
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

	// Подключаемся к redis очереди почтовых задач (если включена)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable, mail queue falls back to memory: %v", err)
		} else {
			log.Info("Connected to redis at %s", cfg.Redis.Addr)
		}
		defer redisClient.Close()
	}

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		visitorRepository    *visitorRepo.Repository
		departmentRepository *departmentRepo.Repository
		logRepository        *visitorlogRepo.Repository
		userRepository       *userRepo.Repository
		txMgr                TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		visitorRepository = visitorRepo.NewRepository(wrappedDB)
		departmentRepository = departmentRepo.NewRepository(wrappedDB)
		logRepository = visitorlogRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		visitorRepository = visitorRepo.NewRepository(db)
		departmentRepository = departmentRepo.NewRepository(db)
		logRepository = visitorlogRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Очередь email-задач и отправка почты
	mailQueue := mailqueue.NewQueue(redisClient, cfg.Redis.QueueKey, svcMetrics, log)
	smtpMailer := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Password, cfg.SMTP.RatePerMinute)

	// Инициализируем сервисы
	visitorSvc := visitorsService.NewService(
		visitorRepository,
		departmentRepository,
		logRepository,
		mailQueue,
		log,
	)
	dashboardSvc := dashboardService.NewService(visitorRepository, log)
	exportSvc := exportService.NewService(visitorRepository, log)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	registerVisitorUseCase := registerVisitorUC.NewUseCase(
		visitorRepository,
		departmentRepository,
		logRepository,
		mailQueue,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(visitorRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(visitorRepository, log)
	verifyQRUseCase := verifyQRUC.NewUseCase(visitorRepository, logRepository, log)
	bulkUploadUseCase := bulkUploadUC.NewUseCase(registerVisitorUseCase, log)
	rescheduleVisitorUseCase := rescheduleVisitorUC.NewUseCase(
		visitorRepository,
		logRepository,
		mailQueue,
		txMgr,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	refreshToken := refreshTokenHandler.NewHandler(authSvc, log)
	registerVisitor := registerVisitorHandler.NewHandler(registerVisitorUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	verifyQR := verifyQRHandler.NewHandler(verifyQRUseCase, log)
	bulkUpload := bulkUploadHandler.NewHandler(bulkUploadUseCase, log)
	rescheduleVisitor := rescheduleVisitorHandler.NewHandler(rescheduleVisitorUseCase, log)
	listDepartments := listDepartmentsHandler.NewHandler(visitorSvc, log)
	getVisitor := getVisitorHandler.NewHandler(visitorSvc, log)
	listVisitors := listVisitorsHandler.NewHandler(visitorSvc, log)
	searchVisitors := searchVisitorsHandler.NewHandler(visitorSvc, log)
	completeVisitor := completeVisitorHandler.NewHandler(visitorSvc, log)
	cancelVisitor := cancelVisitorHandler.NewHandler(visitorSvc, log)
	deleteVisitor := deleteVisitorHandler.NewHandler(visitorSvc, log)
	resendEmail := resendEmailHandler.NewHandler(visitorSvc, log)
	exportVisitors := exportVisitorsHandler.NewHandler(exportSvc, log)
	bulkTemplate := bulkTemplateHandler.NewHandler(exportSvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(dashboardSvc, log)
	dashboardTrends := dashboardTrendsHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.Logging(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(svcMetrics))
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

	// Аутентификация персонала
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Самостоятельная регистрация визита
	api.HandleFunc("/visitors", registerVisitor.Handle).Methods(http.MethodPost)

	// Занятость слотов на дату и проверка конкретного слота
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Справочник отделов (нужен публичной форме регистрации)
	api.HandleFunc("/departments", listDepartments.Handle).Methods(http.MethodGet)

	// Сканер на проходной
	api.HandleFunc("/visitors/verify-qr", verifyQR.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен персонала)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// Продление токена по действующему Bearer
	protected.HandleFunc("/auth/refresh", refreshToken.Handle).Methods(http.MethodPost)

	// --- Реестр посетителей ---
	protected.HandleFunc("/visitors", listVisitors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/search", searchVisitors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/export", exportVisitors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/bulk-template", bulkTemplate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/bulk-upload", bulkUpload.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visitors/{id}", getVisitor.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/{id}", deleteVisitor.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/visitors/{id}/complete", completeVisitor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visitors/{id}/cancel", cancelVisitor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visitors/{id}/reschedule", rescheduleVisitor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visitors/{id}/resend-email", resendEmail.Handle).Methods(http.MethodPost)

	// --- Панель персонала ---
	protected.HandleFunc("/dashboard/stats", dashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/trends", dashboardTrends.Handle).Methods(http.MethodGet)

	// CORS для фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Фоновые воркеры: отправка писем и закрытие просроченных визитов
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	mailWorker := worker.NewMailWorker(
		visitorRepository,
		smtpMailer,
		mailQueue,
		worker.RetryPolicy{
			MaxRetries:   cfg.SMTP.MaxRetries,
			InitialDelay: time.Duration(cfg.SMTP.InitialDelaySec) * time.Second,
		},
		svcMetrics,
		log,
	)
	go mailWorker.Start(workerCtx)

	sweeper := worker.NewSweeper(visitorRepository, logRepository, &worker.RealTimeProvider{}, time.Hour, log)
	go sweeper.Start(workerCtx)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	stopWorkers()

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
