package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// NewGormLogger routes GORM's SQL log into zap. Lookups that find nothing are
// an expected outcome here and are never logged.
func NewGormLogger(zapLogger *zap.Logger, level string) logger.Interface {
	logLevel := logger.Warn
	if level == "debug" {
		logLevel = logger.Info
	}
	return logger.New(
		zap.NewStdLog(zapLogger.Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
