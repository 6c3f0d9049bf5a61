package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/staff_attendance/internal/config"
	"github.com/locvowork/staff_attendance/internal/database"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/handler"
	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/locvowork/staff_attendance/internal/repository"
	"github.com/locvowork/staff_attendance/internal/service"
	"github.com/locvowork/staff_attendance/internal/service/serviceutils"
)

type App struct {
	Echo   *echo.Echo
	Config *config.EnvConfig
	Store  domain.KVStore
	Seeder *database.DataSeeder

	Attendance *service.AttendanceService
	Staff      *service.StaffService
	Auth       *service.AuthService
	Reports    *service.ReportService

	closeStore func() error
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

// Initialize loads the environment, then wires the store, services and routes.
func (a *App) Initialize(ctx context.Context) error {
	cfg, err := config.LoadEnvConfig()
	if err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	return a.InitializeWithConfig(ctx, cfg)
}

// InitializeWithConfig wires the app from an already loaded configuration.
func (a *App) InitializeWithConfig(ctx context.Context, cfg *config.EnvConfig) error {
	a.Config = cfg

	cutoff, err := service.ParseLateCutoff(cfg.LATE_CUTOFF)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, database.StoreOptions{
		Driver:  cfg.STORE_DRIVER,
		FileDir: cfg.STORE_FILE_DIR,
		Postgres: database.Config{
			Host:            cfg.DB_HOST,
			Port:            cfg.DB_PORT,
			User:            cfg.DB_USER,
			Password:        cfg.DB_PASSWORD,
			DBName:          cfg.DB_NAME,
			SSLMode:         cfg.DB_SSL_MODE,
			MaxOpenConns:    cfg.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    cfg.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: cfg.DB_CONN_MAX_LIFETIME,
		},
		DatastoreProjectID: cfg.DATASTORE_PROJECT_ID,
		MongoURI:           cfg.MONGO_URI,
		MongoDatabase:      cfg.MONGO_DATABASE,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.STORE_DRIVER, err)
	}
	a.Store = store
	a.closeStore = closeStore
	logger.InfoLog(ctx, "Opened %s store", cfg.STORE_DRIVER)

	if err := a.initServices(ctx, cfg, cutoff); err != nil {
		a.Close()
		return err
	}

	a.RegisterMiddlewares()
	a.RegisterRoutes()
	return nil
}

var openStore = database.OpenStore

func (a *App) initServices(ctx context.Context, cfg *config.EnvConfig, cutoff service.LateCutoff) error {
	opts := []service.AttendanceOption{service.WithLateCutoff(cutoff)}

	// the search index is optional
	if cfg.ELASTIC_URL != "" {
		index, err := database.NewElasticSearchClient(ctx, cfg.ELASTIC_URL, cfg.ELASTIC_INDEX)
		if err != nil {
			logger.WarnLog(ctx, "Elasticsearch unavailable, searching in memory: %v", err)
		} else {
			opts = append(opts, service.WithRecordIndex(index))
		}
	}

	clock := service.SystemClock{}
	a.Seeder = database.NewDataSeeder(cfg.SEED_VALUE)

	a.Attendance = service.NewAttendanceService(repository.NewAttendanceRepository(a.Store), a.Seeder, clock, opts...)
	if err := a.Attendance.Initialize(ctx); err != nil {
		return err
	}

	a.Staff = service.NewStaffService(repository.NewStaffRepository(a.Store), a.Seeder, service.UUIDGenerator{})
	if err := a.Staff.Initialize(ctx); err != nil {
		return err
	}

	auth, err := service.NewAuthService(repository.NewSessionRepository(a.Store), clock, service.AuthConfig{
		Secret:   cfg.AUTH_JWT_SECRET,
		TokenTTL: cfg.AUTH_TOKEN_TTL,
	}, service.DemoCredentials)
	if err != nil {
		return err
	}
	a.Auth = auth

	a.Reports = service.NewReportService(a.Attendance, a.Staff, cfg.REPORT_TEMPLATE_PATH)
	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes() {
	a.Echo.GET("/health", func(c echo.Context) error {
		return serviceutils.ResponseSuccess(c, http.StatusOK, "ok", map[string]string{
			"store": a.Config.STORE_DRIVER,
		})
	})

	handler.RegisterRoutes(a.Echo, handler.Handlers{
		Verifier:   a.Auth,
		Auth:       handler.NewAuthHandler(a.Auth),
		Attendance: handler.NewAttendanceHandler(a.Attendance),
		Admin:      handler.NewAdminHandler(a.Attendance, a.Staff, a.Reports),
	})
}

func (a *App) Run() error {
	defer a.Close()
	return a.Echo.Start(":" + a.Config.APP_PORT)
}

// Close releases the store connection.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	return err
}
