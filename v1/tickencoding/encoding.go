package tickencoding

import (
	"bytes"
	"encoding/base64"
	"unsafe"
)

// Encoding is the byte↔text primitive used by a Codec.
//
// Encode must succeed for every input, including an empty one, must be
// deterministic, and must map distinct inputs to distinct outputs.
// Decode must reject any input Encode could not have produced. The slice it
// returns is owned by the caller and must not alias src.
type Encoding interface {
	Encode(src []byte) string
	Decode(src []byte) ([]byte, error)
}

// Base64URL encodes bytes with the RFC 4648 URL-safe alphabet without padding.
// Decoding is strict: padding, line breaks and non-zero trailing bits are
// rejected so that every accepted text has exactly one byte sequence.
type Base64URL struct{}

var base64URL = base64.RawURLEncoding.Strict()

// Encode returns the unpadded URL-safe base64 form of src.
func (Base64URL) Encode(src []byte) string {
	return base64URL.EncodeToString(src)
}

// Decode parses text produced by Encode.
func (Base64URL) Decode(src []byte) ([]byte, error) {
	// The stdlib decoder skips \r and \n even in strict mode.
	if i := bytes.IndexAny(src, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}

	dst := make([]byte, base64URL.DecodedLen(len(src)))
	n, err := base64URL.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DefaultEncoding is used by a Codec whose Encoding is nil.
func DefaultEncoding() Encoding {
	return Base64URL{}
}

// decodeWith runs the primitive and classifies its failure. text may be
// borrowed from the host's buffer, so a result that aliases it is copied.
func decodeWith(enc Encoding, text []byte) ([]byte, error) {
	decoded, err := enc.Decode(text)
	if err != nil {
		return nil, &DecodeError{Kind: ErrEncodingMalformed, Err: err}
	}
	if decoded == nil {
		return []byte{}, nil
	}
	if overlaps(decoded, text) {
		decoded = bytes.Clone(decoded)
	}
	return decoded, nil
}

// overlaps reports whether x shares memory with the backing array of y.
func overlaps(x, y []byte) bool {
	if len(x) == 0 || cap(y) == 0 {
		return false
	}
	y = y[:cap(y)]
	xStart := uintptr(unsafe.Pointer(&x[0]))
	yStart := uintptr(unsafe.Pointer(&y[0]))
	return xStart <= yStart+uintptr(len(y)-1) && yStart <= xStart+uintptr(len(x)-1)
}
