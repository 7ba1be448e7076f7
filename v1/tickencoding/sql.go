package tickencoding

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm/schema"
)

var (
	_ driver.Valuer                = Bytes(nil)
	_ sql.Scanner                  = (*Bytes)(nil)
	_ schema.GormDataTypeInterface = Bytes(nil)
)

// Value stores b as encoded text.
func (b Bytes) Value() (driver.Value, error) {
	return Default().EncodeBytes(b), nil
}

// Scan reads encoded text from a text or binary column. A NULL column
// yields a nil Bytes.
func (b *Bytes) Scan(src any) error {
	if src == nil {
		*b = nil
		return nil
	}
	text, err := scanText(src, "Bytes")
	if err != nil {
		return err
	}
	return Default().DecodeInto(text, b)
}

// GormDataType maps Bytes to a text column.
func (Bytes) GormDataType() string {
	return "text"
}

// Value stores the wrapped value as encoded text.
func (e Encoded[T, P]) Value() (driver.Value, error) {
	return Default().Encode(e), nil
}

// Scan reads encoded text into the wrapped value. A NULL column resets it to
// the zero value of T.
func (e *Encoded[T, P]) Scan(src any) error {
	if src == nil {
		var zero T
		e.Val = zero
		return nil
	}
	text, err := scanText(src, "Encoded")
	if err != nil {
		return err
	}
	return Default().DecodeInto(text, e)
}

// GormDataType maps every Encoded instantiation to a text column.
func (Encoded[T, P]) GormDataType() string {
	return "text"
}

// scanText accepts the column representations drivers use for text.
// The returned slice may alias a driver buffer and is only read.
func scanText(src any, target string) ([]byte, error) {
	switch v := src.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("tickencoding: cannot scan %T into %s", src, target)
	}
}
