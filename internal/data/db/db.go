package db

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/exocatalog/internal/platform/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver     string
	SQLitePath string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresName     string
	PostgresSSLMode  string

	// SQLLogLevel overrides the gorm logger level ("silent", "error", "warn", "info").
	SQLLogLevel string
}

type Service struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

func NewService(cfg Config, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DatabaseService")

	gormCfg := &gorm.Config{
		Logger: newGormLogger(cfg.SQLLogLevel),
	}

	var (
		dialector gorm.Dialector
		dsn       string
	)
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", DriverSQLite:
		driver = DriverSQLite
		dsn = SQLiteDSN(cfg.SQLitePath)
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dsn = PostgresDSN(cfg)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// One connection keeps in-memory databases shared and serializes writers.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}

	serviceLog.Info("Database connected", "driver", driver, "dsn", dsn)
	return &Service{db: db, driver: driver, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Driver() string { return s.driver }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLiteDSN builds a DSN with foreign key enforcement. An empty path opens an in-memory database.
func SQLiteDSN(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on"
}

func PostgresDSN(cfg Config) string {
	sslmode := cfg.PostgresSSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.PostgresUser, cfg.PostgresPassword),
		Host:     cfg.PostgresHost + ":" + cfg.PostgresPort,
		Path:     "/" + cfg.PostgresName,
		RawQuery: "sslmode=" + url.QueryEscape(sslmode),
	}
	return u.String()
}

func newGormLogger(level string) gormLogger.Interface {
	lvl := gormLogger.Warn
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		lvl = gormLogger.Silent
	case "error":
		lvl = gormLogger.Error
	case "info":
		lvl = gormLogger.Info
	}
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  lvl,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
