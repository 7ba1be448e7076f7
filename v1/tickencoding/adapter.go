package tickencoding

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"
)

// SerializeAs writes the encoded text of src to w as a single string value.
// Only errors returned by w are propagated.
func SerializeAs(w io.StringWriter, src ByteView) error {
	return Default().SerializeAs(w, src)
}

// SerializeAs writes the encoded text of src to w using c.
func (c Codec) SerializeAs(w io.StringWriter, src ByteView) error {
	_, err := w.WriteString(c.Encode(src))
	return err
}

// DeserializeAs decodes text produced by SerializeAs into a new T.
// text is only borrowed; the returned value owns its bytes.
func DeserializeAs[T any, P ByteConvertible[T]](text []byte) (T, error) {
	return DecodeAs[T, P](Default(), text)
}

// MarshalJSON renders src as a JSON string holding its encoded text.
func (c Codec) MarshalJSON(src ByteView) ([]byte, error) {
	return json.Marshal(c.Encode(src))
}

// UnmarshalJSON reads a JSON string and decodes it into dst.
//
// A JSON null leaves dst untouched, following the encoding/json convention.
// Strings without escape sequences are decoded straight from data; only
// escaped strings are unquoted into a temporary buffer first.
func (c Codec) UnmarshalJSON(data []byte, dst ByteSetter) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text, err := jsonStringContents(data)
	if err != nil {
		return err
	}
	return c.DecodeInto(text, dst)
}

// jsonStringContents returns the characters of a JSON string literal.
// When the literal needs no unescaping the result aliases data.
func jsonStringContents(data []byte) ([]byte, error) {
	if inner, ok := plainJSONString(data); ok {
		return inner, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func plainJSONString(data []byte) ([]byte, bool) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return nil, false
	}
	inner := data[1 : len(data)-1]
	for _, b := range inner {
		if b == '\\' || b == '"' || b < 0x20 {
			return nil, false
		}
	}
	if !utf8.Valid(inner) {
		return nil, false
	}
	return inner, true
}
