package tickencoding

import "github.com/invopop/jsonschema"

// Bytes is a byte slice that serializes as encoded text.
//
// Use it for struct fields whose content is arbitrary binary data:
//
//	type Env struct {
//		Name  string             `json:"name"`
//		Value tickencoding.Bytes `json:"value"`
//	}
//
// A nil Bytes encodes as the empty string. Decoding the empty string yields
// an empty, non-nil Bytes.
type Bytes []byte

// Bytes returns b as a plain byte slice.
func (b Bytes) Bytes() []byte {
	return b
}

// SetBytes replaces the contents of b, taking ownership of p.
func (b *Bytes) SetBytes(p []byte) error {
	*b = p
	return nil
}

// String returns the encoded text of b.
func (b Bytes) String() string {
	return Default().EncodeBytes(b)
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	return Default().MarshalJSON(b)
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	return Default().UnmarshalJSON(data, b)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(Default().EncodeBytes(b)), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	return Default().DecodeInto(text, b)
}

// JSONSchema describes Bytes as a plain string.
func (Bytes) JSONSchema() *jsonschema.Schema {
	return StringSchema()
}

func (Bytes) tickEncoded() {}
