package tickencoding

import (
	"errors"
	"sync/atomic"
	"time"
)

// errNilTarget is returned when DecodeInto is given nothing to fill.
var errNilTarget = errors.New("tickencoding: nil decode target")

// Codec binds an Encoding to the encode/decode operations.
//
// The zero value is ready to use and encodes with DefaultEncoding.
// A Codec holds no mutable state and is safe for concurrent use as long as
// its Encoding and Observer are.
type Codec struct {
	// Encoding is the byte↔text primitive. Nil selects DefaultEncoding.
	Encoding Encoding

	// Observer, when set, is notified after every operation.
	Observer Observer
}

var defaultCodec atomic.Pointer[Codec]

// Default returns the Codec behind the package-level functions and the
// JSON, text and SQL methods of Bytes and Encoded. Until SetDefault is
// called it is the zero Codec.
func Default() Codec {
	if c := defaultCodec.Load(); c != nil {
		return *c
	}
	return Codec{}
}

// SetDefault replaces the Codec returned by Default. Call it during start-up,
// before any value is serialized; values written under one default cannot be
// read back under a default with a different Encoding.
//
// Example:
//
//	tickencoding.SetDefault(tickencoding.NewCodec(legacyEncoding{}).WithObserver(m))
func SetDefault(c Codec) {
	defaultCodec.Store(&c)
}

// NewCodec returns a Codec using enc.
func NewCodec(enc Encoding) Codec {
	return Codec{Encoding: enc}
}

// WithObserver returns a copy of c that reports operations to obs.
func (c Codec) WithObserver(obs Observer) Codec {
	c.Observer = obs
	return c
}

func (c Codec) encoding() Encoding {
	if c.Encoding == nil {
		return DefaultEncoding()
	}
	return c.Encoding
}

// Encode returns the encoded text of src's byte view. It never fails.
func (c Codec) Encode(src ByteView) string {
	return c.EncodeBytes(src.Bytes())
}

// EncodeBytes returns the encoded text of b. It never fails.
func (c Codec) EncodeBytes(b []byte) string {
	start := time.Now()
	text := c.encoding().Encode(b)
	c.observe(OperationEncode, len(b), len(text), start, nil)
	return text
}

// DecodeBytes converts encoded text back into bytes.
// The only error it returns is a *DecodeError of class ErrEncodingMalformed.
func (c Codec) DecodeBytes(text []byte) ([]byte, error) {
	start := time.Now()
	decoded, err := decodeWith(c.encoding(), text)
	c.observe(OperationDecode, len(decoded), len(text), start, err)
	return decoded, err
}

// DecodeInto decodes text and hands the resulting bytes to dst.
//
// Returns:
//   - nil when both the decoding and dst.SetBytes succeed
//   - a *DecodeError of class ErrEncodingMalformed when the text is invalid
//   - a *DecodeError of class ErrTargetConversion when dst rejects the bytes
//
// dst is not touched when the text itself is invalid.
func (c Codec) DecodeInto(text []byte, dst ByteSetter) error {
	if dst == nil {
		return errNilTarget
	}

	start := time.Now()
	decoded, err := decodeWith(c.encoding(), text)
	size := len(decoded)
	if err == nil {
		if setErr := dst.SetBytes(decoded); setErr != nil {
			err = &DecodeError{Kind: ErrTargetConversion, Err: setErr}
			size = 0
		}
	}
	c.observe(OperationDecode, size, len(text), start, err)
	return err
}

// DecodeAs decodes text into a new T using c.
//
// Example:
//
//	digest, err := tickencoding.DecodeAs[Digest](codec, []byte(text))
func DecodeAs[T any, P ByteConvertible[T]](c Codec, text []byte) (T, error) {
	var v T
	if err := c.DecodeInto(text, P(&v)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
