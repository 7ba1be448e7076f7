package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// Connection hands out the current *gorm.DB. *postgres.Postgres satisfies
// it and swaps the DB on reconnect; Static wraps a fixed one.
type Connection interface {
	DB() *gorm.DB
}

// Client stores byte-convertible values under unique names.
type Client interface {
	// Put inserts or replaces the value stored under name.
	Put(ctx context.Context, name string, src tickencoding.ByteView) error

	// Get decodes the value stored under name into dst.
	Get(ctx context.Context, name string, dst tickencoding.ByteSetter) error

	// Delete removes the value stored under name.
	Delete(ctx context.Context, name string) error

	// Names lists all stored names in ascending order.
	Names(ctx context.Context) ([]string, error)

	// Transaction runs fn with a Client bound to a single transaction.
	Transaction(ctx context.Context, fn func(tx Client) error) error
}

// Static adapts a fixed *gorm.DB to Connection.
type Static struct {
	Conn *gorm.DB
}

func (s Static) DB() *gorm.DB {
	return s.Conn
}
