// Package postgres connects to PostgreSQL through GORM and keeps the
// connection healthy.
//
// A *Postgres owns the connection pool, pings the server periodically and
// swaps in a fresh connection when the ping fails. Readers call DB for the
// current *gorm.DB, so the database.Store built on top keeps working across
// reconnections.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/postgres"
//
//	pg, err := postgres.NewPostgres(postgres.Config{
//		Connection: postgres.Connection{
//			Host:     "localhost",
//			Port:     "5432",
//			User:     "postgres",
//			Password: "password",
//			DbName:   "artifacts",
//			SSLMode:  "disable",
//		},
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer pg.GracefulShutdown()
//
//	store := database.NewStore(pg, log)
//
// Encoded values are written to text columns: tickencoding.Bytes and
// tickencoding.Encoded implement driver.Valuer and sql.Scanner and declare
// the GORM data type "text".
package postgres
