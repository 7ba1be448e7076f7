package database

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
	"github.com/Aleph-Alpha/tickcodec/v1/postgres"
)

// FXModule provides a *Store and Client on top of a Connection and migrates
// the table on start.
//
// Usage:
//
//	app := fx.New(
//	    postgres.FXModule,
//	    database.FXModule,
//	    fx.Supply(postgres.Config{...}),
//	    fx.Provide(database.PostgresConnection),
//	    fx.Invoke(func(c database.Client) { ... }),
//	)
var FXModule = fx.Module("database",
	fx.Provide(
		NewStoreWithDI,
		ProvideClient,
	),
	fx.Invoke(RegisterDatabaseLifecycle),
)

// ProvideClient exposes a *Store as Client.
func ProvideClient(s *Store) Client {
	return s
}

// PostgresConnection uses pg as the Connection of a Store.
func PostgresConnection(pg *postgres.Postgres) Connection {
	return pg
}

// StoreParams groups the dependencies of NewStoreWithDI.
type StoreParams struct {
	fx.In

	Connection Connection
	Logger     logger.Logger `optional:"true"`
}

// NewStoreWithDI creates a Store using dependency injection.
func NewStoreWithDI(params StoreParams) *Store {
	return NewStore(params.Connection, params.Logger)
}

// RegisterDatabaseLifecycle migrates the schema when the application starts.
func RegisterDatabaseLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			store.log.Info("Database client initialized", nil, nil)
			return nil
		},
	})
}
