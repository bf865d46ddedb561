package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FieldDescription = "description"
	FieldPrecio      = "precio"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Item     ItemConfig
	LogLevel string
}
type ServerConfig struct {
	Port        string
	CorsOrigins []string
}
type DatabaseConfig struct {
	Driver       string
	Path         string
	Host         string
	Username     string
	Password     string
	DatabaseName string
	Port         string
	SeedFile     string
}

// ItemConfig selects which free-text column the service reads and exposes.
type ItemConfig struct {
	Field string
}

var Cfg = Config{}

func (config *Config) Init() error {
	// .env is optional, the environment always wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "./test.db")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("ITEM_FIELD", FieldDescription)
	v.SetDefault("LOG_LEVEL", "info")

	config.Server = ServerConfig{
		Port:        v.GetString("SERVER_PORT"),
		CorsOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}
	config.Database = DatabaseConfig{
		Driver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
		Path:         v.GetString("DATABASE_PATH"),
		Host:         v.GetString("DATABASE_HOST"),
		Username:     v.GetString("DATABASE_USER"),
		Password:     v.GetString("DATABASE_PASSWORD"),
		DatabaseName: v.GetString("DATABASE_NAME"),
		Port:         v.GetString("DATABASE_PORT"),
		SeedFile:     v.GetString("SEED_FILE"),
	}
	config.Item = ItemConfig{
		Field: strings.ToLower(v.GetString("ITEM_FIELD")),
	}
	config.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))

	return config.Validate()
}

func (config *Config) Validate() error {
	switch config.Item.Field {
	case FieldDescription, FieldPrecio:
	default:
		return fmt.Errorf("unsupported ITEM_FIELD %q, expected %q or %q",
			config.Item.Field, FieldDescription, FieldPrecio)
	}
	switch config.Database.Driver {
	case DriverSQLite:
		if config.Database.Path == "" {
			return errors.New("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if config.Database.Host == "" || config.Database.DatabaseName == "" {
			return errors.New("DATABASE_HOST and DATABASE_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", config.Database.Driver)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
