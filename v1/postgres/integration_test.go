//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

// setupPostgresContainer starts a disposable postgres:15 server and returns
// a Config pointing at it. The container is terminated when t finishes.
func setupPostgresContainer(t *testing.T) Config {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	port, err := getFreePort()
	require.NoError(t, err)

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		HostConfigModifier: func(hc *container.HostConfig) {
			hc.PortBindings = nat.PortMap{
				"5432/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(port)}},
			}
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, pgContainer.Terminate(context.Background()))
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := Config{
		Connection: Connection{
			Host:     host,
			Port:     mappedPort.Port(),
			User:     "testuser",
			Password: "testpass",
			DbName:   "testdb",
			SSLMode:  "disable",
		},
	}
	require.NoError(t, waitForPostgresReady(cfg.DSN(), 30*time.Second))
	t.Logf("Using PostgreSQL on %s:%s", host, mappedPort.Port())
	return cfg
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// waitForPostgresReady pings dsn through lib/pq until it answers or timeout passes.
func waitForPostgresReady(dsn string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for PostgreSQL to be ready after %s: %w", timeout, err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func TestNewPostgres_Integration(t *testing.T) {
	cfg := setupPostgresContainer(t)
	ctx := context.Background()

	pg, err := NewPostgres(cfg, nil)
	require.NoError(t, err)

	var result int
	require.NoError(t, pg.DB().Raw("SELECT 1").Scan(&result).Error)
	assert.Equal(t, 1, result)

	sqlDB, err := pg.DB().DB()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxOpenConns, sqlDB.Stats().MaxOpenConnections)

	t.Run("Reconnect", func(t *testing.T) {
		old := pg.DB()
		oldSQL, err := old.DB()
		require.NoError(t, err)
		require.NoError(t, oldSQL.Close())
		assert.Error(t, pg.healthCheck(ctx))

		pg.reconnect()
		assert.NotSame(t, old, pg.DB())
		assert.NoError(t, pg.healthCheck(ctx))
	})

	t.Run("GracefulShutdown", func(t *testing.T) {
		require.NoError(t, pg.GracefulShutdown())
		assert.Error(t, pg.healthCheck(ctx))
		assert.NoError(t, pg.GracefulShutdown())
	})
}

func TestMonitorConnection_Integration(t *testing.T) {
	cfg := setupPostgresContainer(t)

	ctrl := gomock.NewController(t)
	mockLogger := logger.NewMockLogger(ctrl)

	reconnected := make(chan struct{})
	mockLogger.EXPECT().Info("Successfully connected to PostgreSQL database", nil, gomock.Any())
	mockLogger.EXPECT().Warn("PostgreSQL health check failed, reconnecting", gomock.Any(), gomock.Any())
	mockLogger.EXPECT().Info("Successfully reconnected to PostgreSQL database", nil, gomock.Any()).
		Do(func(string, error, ...map[string]interface{}) { close(reconnected) })

	pg, err := NewPostgres(cfg, mockLogger)
	require.NoError(t, err)
	defer func() { _ = pg.GracefulShutdown() }()

	// Break the pool so the next health check fails.
	sqlDB, err := pg.DB().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		pg.MonitorConnection(ctx)
	}()

	select {
	case <-reconnected:
	case <-time.After(3 * healthCheckInterval):
		t.Fatal("MonitorConnection did not reconnect")
	}
	cancel()
	<-done

	assert.NoError(t, pg.healthCheck(context.Background()))
}

func TestFXModule_Integration(t *testing.T) {
	cfg := setupPostgresContainer(t)

	var pg *Postgres
	app := fxtest.New(t,
		FXModule,
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger { return logger.NewNop() }),
		fx.Populate(&pg),
	)
	app.RequireStart()

	require.NotNil(t, pg)
	var result int
	require.NoError(t, pg.DB().Raw("SELECT 1").Scan(&result).Error)
	assert.Equal(t, 1, result)

	app.RequireStop()
	assert.Error(t, pg.healthCheck(context.Background()), "pool must be closed on stop")
}
