package database

import (
	"itemstore/config"
	"itemstore/models"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

func TestDialector(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		d, err := Dialector(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "items.db"})
		require.NoError(t, err)
		assert.IsType(t, &sqlite.Dialector{}, d)
		assert.Equal(t, "sqlite", d.Name())
	})
	t.Run("postgres", func(t *testing.T) {
		d, err := Dialector(config.DatabaseConfig{
			Driver: config.DriverPostgres, Host: "db", Username: "u", Password: "p", DatabaseName: "items", Port: "5432",
		})
		require.NoError(t, err)
		pg, ok := d.(*postgres.Dialector)
		require.True(t, ok)
		assert.Equal(t, "host=db user=u password=p dbname=items port=5432 sslmode=disable", pg.Config.DSN)
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := Dialector(config.DatabaseConfig{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestInitDatabaseSQLite(t *testing.T) {
	previous := config.Cfg
	t.Cleanup(func() { config.Cfg = previous })

	config.Cfg.Database = config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "items.db"),
	}
	require.NoError(t, InitDatabase(zap.NewNop()))
	t.Cleanup(func() { assert.NoError(t, CloseDatabase()) })

	sqlDB, err := DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Ping())
}

func TestSessionFallback(t *testing.T) {
	previous := config.Cfg
	t.Cleanup(func() { config.Cfg = previous })
	config.Cfg.Database = config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "items.db"),
	}
	require.NoError(t, InitDatabase(zap.NewNop()))
	t.Cleanup(func() { assert.NoError(t, CloseDatabase()) })

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	opened := Session(c)
	require.NotNil(t, opened)
	assert.Equal(t, c.Request.Context(), opened.Statement.Context)

	SetSession(c, opened)
	assert.Same(t, opened, Session(c))

	ClearSession(c)
	assert.NotSame(t, opened, Session(c))
}

func TestGormLoggerSkipsNotFound(t *testing.T) {
	previous := config.Cfg
	t.Cleanup(func() { config.Cfg = previous })
	config.Cfg.Database = config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "items.db"),
	}
	core, logs := observer.New(zap.DebugLevel)
	require.NoError(t, InitDatabase(zap.New(core)))
	t.Cleanup(func() { assert.NoError(t, CloseDatabase()) })
	require.NoError(t, DB.AutoMigrate(&models.Item{}))
	logs.TakeAll()

	_, err := models.GetItemByID(DB, 999)
	require.ErrorIs(t, err, models.ErrItemNotFound)
	assert.Zero(t, logs.Len())

	// real storage failures still reach zap
	require.Error(t, DB.Exec("SELECT * FROM missing_table").Error)
	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "gorm", entries[0].LoggerName)
	assert.Contains(t, entries[0].Message, "missing_table")
}
