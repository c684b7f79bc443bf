package db

import (
	"context"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/paymentqa/paytest-backend/pkg/config"
	"github.com/paymentqa/paytest-backend/pkg/enums"
	pkgerrors "github.com/paymentqa/paytest-backend/pkg/errors"
	"github.com/paymentqa/paytest-backend/pkg/logger"
	"github.com/paymentqa/paytest-backend/pkg/migrate"
)

// Client wraps the GORM connection to the embedded store.
type Client struct {
	conn *gorm.DB
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New opens (or creates) the store at the configured path, pins the pool to a
// single connection and applies the schema migrations. Only the embedded
// sqlite engine is supported; anything else fails with UNSUPPORTED_ENGINE.
func New(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Client, error) {
	engine, err := enums.ParseEngine(cfg.Engine)
	if err != nil || engine != enums.EngineSQLite {
		return nil, pkgerrors.New(pkgerrors.CodeUnsupportedEngine,
			fmt.Sprintf("unsupported storage engine %q", cfg.Engine))
	}
	if cfg.Path == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store path is required")
	}

	dsn := cfg.Path
	if cfg.BusyTimeout > 0 {
		dsn = fmt.Sprintf("%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeout.Milliseconds())
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "opening store")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "getting sql db handle")
	}

	// The store assumes a single caller over a single logical connection. A
	// pool would also hand each in-memory connection its own database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := migrate.Up(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "initializing schema")
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "path", cfg.Path)
		logg.Info(ctx, "record store opened")
	}

	return &Client{conn: conn}, nil
}

// DB returns the underlying GORM connection.
func (c *Client) DB() *gorm.DB {
	return c.conn
}

// Ping verifies the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
