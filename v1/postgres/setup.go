package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

// healthCheckInterval is how often MonitorConnection pings the server.
const healthCheckInterval = 10 * time.Second

// Postgres is a wrapper around gorm.DB that provides connection monitoring
// and automatic reconnection.
//
// Concurrency: the active *gorm.DB is stored in an atomic pointer and can be
// swapped during reconnection without blocking readers.
type Postgres struct {
	cfg            Config
	log            logger.Logger
	client         atomic.Pointer[gorm.DB]
	shutdownSignal chan struct{}

	closeShutdownOnce sync.Once
}

// NewPostgres connects to the database described by cfg.
//
// Example:
//
//	pg, err := postgres.NewPostgres(postgres.Config{
//	    Connection: postgres.Connection{
//	        Host:    "localhost",
//	        Port:    "5432",
//	        User:    "postgres",
//	        DbName:  "artifacts",
//	        SSLMode: "disable",
//	    },
//	}, log)
func NewPostgres(cfg Config, log logger.Logger) (*Postgres, error) {
	if log == nil {
		log = logger.NewNop()
	}
	cfg.ConnectionDetails = cfg.ConnectionDetails.withDefaults()

	conn, err := connectToPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL database", nil, map[string]interface{}{
		"host":   cfg.Connection.Host,
		"dbname": cfg.Connection.DbName,
	})

	pg := &Postgres{
		cfg:            cfg,
		log:            log,
		shutdownSignal: make(chan struct{}),
	}
	pg.client.Store(conn)
	return pg, nil
}

// DSN returns the libpq keyword/value connection string for c.
func (c Config) DSN() string {
	timeout := c.ConnectionDetails.withDefaults().ConnectTimeout
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Connection.Host,
		c.Connection.Port,
		c.Connection.User,
		c.Connection.Password,
		c.Connection.DbName,
		c.Connection.SSLMode,
		int(timeout.Seconds()))
}

// connectToPostgres opens the connection with GORM and configures the pool.
func connectToPostgres(cfg Config) (*gorm.DB, error) {
	database, err := gorm.Open(
		postgres.Open(cfg.DSN()),
		&gorm.Config{
			TranslateError: true,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	details := cfg.ConnectionDetails.withDefaults()
	databaseInstance.SetMaxOpenConns(details.MaxOpenConns)
	databaseInstance.SetMaxIdleConns(details.MaxIdleConns)
	databaseInstance.SetConnMaxLifetime(details.ConnMaxLifetime)

	return database, nil
}

// DB returns the current connection.
func (p *Postgres) DB() *gorm.DB {
	return p.client.Load()
}

// MonitorConnection pings the database every healthCheckInterval and
// reconnects when the ping fails. It returns when ctx is done or the
// connection is shut down.
func (p *Postgres) MonitorConnection(ctx context.Context) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownSignal:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.healthCheck(ctx); err != nil {
				p.log.Warn("PostgreSQL health check failed, reconnecting", err, nil)
				p.reconnect()
			}
		}
	}
}

func (p *Postgres) reconnect() {
	newConn, err := connectToPostgres(p.cfg)
	if err != nil {
		p.log.Error("PostgreSQL reconnection failed", err, nil)
		return
	}

	old := p.client.Swap(newConn)
	if sqlDB, err := old.DB(); err == nil {
		_ = sqlDB.Close()
	}
	p.log.Info("Successfully reconnected to PostgreSQL database", nil, nil)
}

// healthCheck pings the current connection with a 5 second timeout.
func (p *Postgres) healthCheck(ctx context.Context) error {
	dbConn := p.DB()
	if dbConn == nil {
		return errors.New("database client is not initialized")
	}

	db, err := dbConn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}
	return nil
}

// GracefulShutdown stops monitoring and closes the connection pool.
func (p *Postgres) GracefulShutdown() error {
	p.closeShutdownOnce.Do(func() {
		close(p.shutdownSignal)
	})

	sqlDB, err := p.DB().DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
