package database

import (
	"fmt"
	"itemstore/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host,
			cfg.Username,
			cfg.Password,
			cfg.DatabaseName,
			cfg.Port)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDatabase(zapLogger *zap.Logger) error {
	dialector, err := Dialector(config.Cfg.Database)
	if err != nil {
		return err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(zapLogger, config.Cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("gorm open error: %w", err)
	}

	if config.Cfg.Database.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("sqlDB initialization error: %w", err)
		}
		// sqlite allows a single writer, keep every statement on one connection
		sqlDB.SetMaxOpenConns(1)
	}
	DB = db
	return nil
}

func CloseDatabase() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("error closing database connection: %w", err)
	}
	return nil
}
