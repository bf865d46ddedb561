package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itemstore/config"
	"itemstore/controllers"
	"itemstore/database"
	"itemstore/logging"
	"itemstore/middleware"
	"itemstore/models"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func initRouter(r *gin.Engine) {
	r.GET("/healthcheck", func(c *gin.Context) {})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	items := r.Group("/items")
	items.Use(middleware.Session)
	{
		items.POST("/", controllers.CreateItem)
		items.GET("/", controllers.ListItems)
		items.GET("/:item_id", controllers.GetItem)
		items.DELETE("/:item_id", controllers.DeleteItem)
	}
}

func newServer(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.Metrics)
	if origins := config.Cfg.Server.CorsOrigins; len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	initRouter(r)
	return r
}

func MigrateDB() error {
	if err := database.DB.AutoMigrate(&models.Item{}); err != nil {
		return err
	}
	return nil
}

// LoadItems seeds the table from a JSON array. Ids already present are left
// untouched.
func LoadItems(path string, logger *zap.Logger) error {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return readErr
	}
	var items []models.Item
	if err := json.Unmarshal(content, &items); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}
	loaded := 0
	for _, item := range items {
		res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if res.Error != nil {
			return fmt.Errorf("seed item %d: %w", item.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			logger.Debug("Seed item already present", zap.Int("id", item.ID))
			continue
		}
		loaded++
	}
	logger.Info("Seed items loaded", zap.String("file", path), zap.Int("loaded", loaded), zap.Int("total", len(items)))
	return nil
}

func main() {
	if err := config.Cfg.Init(); err != nil {
		panic("[Error] invalid configuration: " + err.Error())
	}
	logger := logging.NewLogger(config.Cfg.LogLevel)
	defer logger.Sync()

	if config.Cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := database.InitDatabase(logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.CloseDatabase(); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}()
	if err := MigrateDB(); err != nil {
		logger.Fatal("Failed to create schema", zap.Error(err))
	}
	if seed := config.Cfg.Database.SeedFile; seed != "" {
		if err := LoadItems(seed, logger); err != nil {
			logger.Fatal("Failed to load seed items", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Cfg.Server.Port),
		Handler: newServer(logger),
	}
	go func() {
		logger.Info("Starting API server",
			zap.String("addr", srv.Addr),
			zap.String("driver", config.Cfg.Database.Driver),
			zap.String("item_field", config.Cfg.Item.Field))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
