// Package tickencoding lets byte-convertible Go values travel through
// text-based serialization formats as compact encoded strings.
//
// Binary values such as digests, keys or raw process arguments cannot be
// placed in JSON or YAML documents as-is. This package converts their bytes to
// a text encoding on the way out, converts the text back to bytes on the way
// in, and describes the resulting wire shape to JSON Schema tooling under the
// fixed name "TickEncoded".
//
// # Architecture
//
// The package is organised around three contracts:
//   - Encoding: the byte↔text primitive (Base64URL by default)
//   - ByteView / ByteSetter: what a value must offer to be serialized / rebuilt
//   - Codec: an Encoding plus an optional Observer, used by every operation
//
// Two ready-made wrappers plug into encoding/json, encoding.TextMarshaler,
// database/sql and invopop/jsonschema:
//   - Bytes: a plain byte slice that encodes itself
//   - Encoded[T, P]: a field wrapper for any type whose pointer implements
//     ByteView and ByteSetter
//
// # Usage
//
//	type Digest [32]byte
//
//	func (d *Digest) Bytes() []byte { return d[:] }
//
//	func (d *Digest) SetBytes(b []byte) error {
//		if len(b) != len(d) {
//			return fmt.Errorf("digest must be %d bytes, got %d", len(d), len(b))
//		}
//		copy(d[:], b)
//		return nil
//	}
//
//	type Artifact struct {
//		Name   string                                  `json:"name"`
//		Digest tickencoding.Encoded[Digest, *Digest]   `json:"digest"`
//		Blob   tickencoding.Bytes                      `json:"blob"`
//	}
//
//	data, err := json.Marshal(Artifact{Name: "x", Blob: []byte{0x00, 0xFF}})
//	// {"name":"x","digest":"AAAA...","blob":"AP8"}
//
// # Errors
//
// Decoding fails in exactly two ways, both reported as *DecodeError:
//   - ErrEncodingMalformed: the text is not valid output of the Encoding
//   - ErrTargetConversion: the decoded bytes were rejected by SetBytes
//
// Errors raised by the host serializer (for example a JSON number where a
// string was expected, or a failing writer) are returned unchanged.
//
// # Schema
//
// Bytes and Encoded report a plain string schema through JSONSchema.
// Use NewReflector (or Namer with your own jsonschema.Reflector) so every
// encoded field is filed under the shared "TickEncoded" definition, or call
// Describe to register it in a definitions map directly.
//
// # Wire compatibility
//
// The default Base64URL encoding is not byte-compatible with the original
// tick encoding alphabet. Supply a different Encoding to Codec when
// interoperating with producers that use another scheme.
//
// Bytes, Encoded and the package-level SerializeAs / DeserializeAs always use
// Default(). Struct fields only pick up a custom Encoding or Observer once it
// is installed with SetDefault:
//
//	tickencoding.SetDefault(tickencoding.Codec{Encoding: legacy, Observer: m})
package tickencoding
