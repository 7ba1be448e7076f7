// Package database stores byte-convertible values in a SQL table through
// GORM.
//
// Each Record keeps its payload as TickEncoded text in a "text" column, so
// values stay readable in psql and survive tooling that mangles binary
// columns. Store works with any GORM dialector; production deployments use
// the connection from the postgres package.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/database"
//
//	store := database.NewStore(pg, log)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//
//	if err := store.Put(ctx, "artifact/report", tickencoding.Bytes(data)); err != nil {
//	    return err
//	}
//
//	var digest Digest
//	err := store.Get(ctx, "artifact/digest", &digest)
//	if errors.Is(err, database.ErrNotFound) {
//	    // ...
//	}
//
// Errors:
//
// Get reports a missing record with ErrNotFound. A stored text that does not
// decode matches tickencoding.ErrEncodingMalformed and a target that rejects
// the decoded bytes matches tickencoding.ErrTargetConversion.
package database
