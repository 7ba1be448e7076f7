package tickencoding

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeAs(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, SerializeAs(&sb, Bytes{0x00, 0x01, 0xFF}))
	assert.Equal(t, "AAH_", sb.String())
}

func TestSerializeAs_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, SerializeAs(&sb, Bytes(nil)))
	assert.Equal(t, "", sb.String())
}

func TestSerializeAs_PropagatesStreamError(t *testing.T) {
	err := SerializeAs(failingWriter{}, Bytes{0x01})
	assert.ErrorIs(t, err, errStream)
	assert.False(t, IsEncodingMalformed(err))
}

func TestDeserializeAs(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, SerializeAs(&sb, &digest{1, 2, 3, 4}))

	d, err := DeserializeAs[digest]([]byte(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, digest{1, 2, 3, 4}, d)
}

func TestDeserializeAs_Errors(t *testing.T) {
	_, err := DeserializeAs[digest]([]byte("!not-valid!"))
	assert.True(t, IsEncodingMalformed(err))

	_, err = DeserializeAs[digest]([]byte("AAH_"))
	assert.True(t, IsTargetConversion(err))
}

func TestJSONStringContents_BorrowsUnescaped(t *testing.T) {
	data := []byte(`"AAH_"`)

	inner, err := jsonStringContents(data)
	require.NoError(t, err)
	assert.Equal(t, "AAH_", string(inner))
	assert.Same(t, &data[1], &inner[0], "plain strings should not be copied")
}

func TestJSONStringContents_UnescapesIntoNewBuffer(t *testing.T) {
	data := []byte(`"\u0041AH_"`)

	inner, err := jsonStringContents(data)
	require.NoError(t, err)
	assert.Equal(t, "AAH_", string(inner))

	decoded, err := Codec{}.DecodeBytes(inner)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xFF}, decoded)
}

func TestJSONStringContents_RejectsNonStrings(t *testing.T) {
	for _, in := range []string{`42`, `{}`, `[]`, `true`, `"unterminated`} {
		_, err := jsonStringContents([]byte(in))
		assert.Error(t, err, in)
		assert.False(t, IsEncodingMalformed(err), in)
	}
}

func TestCodec_UnmarshalJSON_TypeMismatchIsHostError(t *testing.T) {
	var b Bytes
	err := Codec{}.UnmarshalJSON([]byte(`123`), &b)
	require.Error(t, err)

	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestCodec_UnmarshalJSON_NullIsNoop(t *testing.T) {
	b := Bytes{0x01}
	require.NoError(t, Codec{}.UnmarshalJSON([]byte(`null`), &b))
	assert.Equal(t, Bytes{0x01}, b)
}

func TestCodec_MarshalJSON(t *testing.T) {
	out, err := Codec{}.MarshalJSON(Bytes{0x00, 0x01, 0xFF})
	require.NoError(t, err)
	assert.JSONEq(t, `"AAH_"`, string(out))

	out, err = NewCodec(upperHex{}).MarshalJSON(Bytes{0xAB})
	require.NoError(t, err)
	assert.Equal(t, `"AB"`, string(out))
}
