package database

import (
	"context"
	"fmt"
	"time"

	"realestate-listings/internal/models"
	"realestate-listings/pkg/config"
	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var SQL *gorm.DB

// open the relational store selected by cfg.SQL.Driver and size its pool.
func InitSQL(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.SQL.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.SQL.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.SQL.DSN)
	default:
		return fmt.Errorf("unsupported sql driver %q", cfg.SQL.Driver)
	}

	start := time.Now()
	db, err := Open(dialector, cfg.Log.Level)
	metrics.SQLOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SQLErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to open %s database: %v", cfg.SQL.Driver, err)
		return fmt.Errorf("failed to open %s database: %v", cfg.SQL.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.SQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.SQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		metrics.SQLErrorsTotal.WithLabelValues("ping", "").Inc()
		return fmt.Errorf("failed to ping %s database: %v", cfg.SQL.Driver, err)
	}

	if cfg.SQL.AutoMigrate {
		if err := Migrate(db); err != nil {
			return err
		}
	}

	SQL = db
	logger.GlobalLogger.Printf("%s database connected successfully.", cfg.SQL.Driver)
	return nil
}

// Open wraps gorm.Open with the settings every dialect shares: translated
// constraint errors and a gorm logger at the application's level.
func Open(dialector gorm.Dialector, level string) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel(level)),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch logger.ParseLevel(level) {
	case logger.DEBUG:
		return gormlogger.Info
	case logger.INFO, logger.WARN:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(&models.User{}, &models.PropertyRecord{}, &models.WriteIntent{})
	metrics.SQLOperationDuration.WithLabelValues("migrate", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SQLErrorsTotal.WithLabelValues("migrate", "").Inc()
		logger.GlobalLogger.Errorf("failed to migrate schema: %v", err)
		return fmt.Errorf("failed to migrate schema: %v", err)
	}
	return nil
}

// PingSQL reports whether the relational pool can reach the server.
func PingSQL(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func CloseSQL() {
	if SQL == nil {
		return
	}
	sqlDB, err := SQL.DB()
	if err != nil {
		logger.GlobalLogger.Errorf("Error closing SQL database: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.GlobalLogger.Errorf("Error closing SQL database: %v", err)
	} else {
		logger.GlobalLogger.Println("SQL database connection closed")
	}
}
