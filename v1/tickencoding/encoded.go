package tickencoding

import "github.com/invopop/jsonschema"

// Encoded wraps a byte-convertible value so that it serializes as encoded
// text. P is always *T; it is spelled out because Go cannot derive it in a
// type declaration.
//
//	type Digest [32]byte
//	// (*Digest).Bytes and (*Digest).SetBytes defined elsewhere
//
//	type Artifact struct {
//		Digest tickencoding.Encoded[Digest, *Digest] `json:"digest"`
//	}
//
// Unmarshalling replaces Val only when decoding and conversion both succeed.
type Encoded[T any, P ByteConvertible[T]] struct {
	Val T
}

// Wrap returns v wrapped for encoding. P is inferred.
func Wrap[T any, P ByteConvertible[T]](v T) Encoded[T, P] {
	return Encoded[T, P]{Val: v}
}

// Bytes returns the byte view of the wrapped value.
func (e Encoded[T, P]) Bytes() []byte {
	return P(&e.Val).Bytes()
}

// SetBytes rebuilds the wrapped value from b.
func (e *Encoded[T, P]) SetBytes(b []byte) error {
	var v T
	if err := P(&v).SetBytes(b); err != nil {
		return err
	}
	e.Val = v
	return nil
}

func (e Encoded[T, P]) String() string {
	return Default().Encode(e)
}

func (e Encoded[T, P]) MarshalJSON() ([]byte, error) {
	return Default().MarshalJSON(e)
}

func (e *Encoded[T, P]) UnmarshalJSON(data []byte) error {
	return Default().UnmarshalJSON(data, e)
}

func (e Encoded[T, P]) MarshalText() ([]byte, error) {
	return []byte(Default().Encode(e)), nil
}

func (e *Encoded[T, P]) UnmarshalText(text []byte) error {
	return Default().DecodeInto(text, e)
}

// JSONSchema describes every Encoded instantiation as a plain string,
// independent of T.
func (Encoded[T, P]) JSONSchema() *jsonschema.Schema {
	return StringSchema()
}

func (Encoded[T, P]) tickEncoded() {}
