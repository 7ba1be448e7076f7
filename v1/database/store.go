package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// ErrNotFound is returned when no record has the requested name.
var ErrNotFound = errors.New("database: record not found")

// Record is one stored value. Payload is persisted as TickEncoded text.
type Record struct {
	ID        uint               `gorm:"primaryKey"`
	Name      string             `gorm:"size:255;not null;uniqueIndex"`
	Payload   tickencoding.Bytes `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name independent of GORM's naming strategy.
func (Record) TableName() string {
	return "encoded_records"
}

// Store implements Client on top of GORM.
type Store struct {
	conn Connection
	log  logger.Logger
}

var _ Client = (*Store)(nil)

// NewStore returns a Store that runs its queries on conn. A nil log
// discards all output.
func NewStore(conn Connection, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{conn: conn, log: log}
}

func (s *Store) db(ctx context.Context) *gorm.DB {
	return s.conn.DB().WithContext(ctx)
}

// Migrate creates or updates the encoded_records table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Record{}.TableName(), err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, name string, src tickencoding.ByteView) error {
	rec := Record{Name: name, Payload: src.Bytes()}

	err := s.db(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		s.log.ErrorWithContext(ctx, "Failed to store record", err, map[string]interface{}{"name": name})
		return fmt.Errorf("failed to store %q: %w", name, err)
	}

	s.log.DebugWithContext(ctx, "Record stored", nil, map[string]interface{}{
		"name": name,
		"size": len(rec.Payload),
	})
	return nil
}

// Get decodes the stored value into dst. Text that does not decode yields a
// tickencoding.ErrEncodingMalformed error; a dst that rejects the bytes
// yields tickencoding.ErrTargetConversion.
func (s *Store) Get(ctx context.Context, name string, dst tickencoding.ByteSetter) error {
	var rec Record
	err := s.db(ctx).Where(map[string]interface{}{"name": name}).Take(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	case err != nil:
		return fmt.Errorf("failed to load %q: %w", name, err)
	}

	if err := dst.SetBytes(rec.Payload); err != nil {
		return &tickencoding.DecodeError{Kind: tickencoding.ErrTargetConversion, Err: err}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	res := s.db(ctx).Where(map[string]interface{}{"name": name}).Delete(&Record{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (s *Store) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db(ctx).Model(&Record{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return names, nil
}

// Transaction runs fn inside a database transaction. The transaction is
// rolled back when fn returns an error and committed otherwise.
//
// Example:
//
//	err := store.Transaction(ctx, func(tx database.Client) error {
//	    if err := tx.Put(ctx, "a", a); err != nil {
//	        return err
//	    }
//	    return tx.Delete(ctx, "b")
//	})
func (s *Store) Transaction(ctx context.Context, fn func(tx Client) error) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{conn: Static{Conn: tx}, log: s.log})
	})
}
