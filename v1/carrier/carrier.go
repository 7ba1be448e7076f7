package carrier

import (
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

var (
	// ErrNotFound is returned when the carrier has no value for a key.
	ErrNotFound = errors.New("carrier: key not found")

	// ErrNotText is returned when a carrier value is not a string.
	ErrNotText = errors.New("carrier: value is not text")
)

// Carrier moves encoded values in and out of text carriers with a codec.
// The zero value uses the default encoding.
type Carrier struct {
	codec tickencoding.Codec
}

// New returns a Carrier that encodes and decodes with codec.
func New(codec tickencoding.Codec) Carrier {
	return Carrier{codec: codec}
}

// defaultCarrier backs the package-level functions with tickencoding.Default.
func defaultCarrier() Carrier {
	return New(tickencoding.Default())
}

func (c Carrier) decode(key, text string, dst tickencoding.ByteSetter) error {
	if err := c.codec.DecodeInto([]byte(text), dst); err != nil {
		return fmt.Errorf("carrier: key %q: %w", key, err)
	}
	return nil
}

func notFound(key string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, key)
}

func notText(key string, v interface{}) error {
	return fmt.Errorf("%w: key %q holds %T", ErrNotText, key, v)
}
