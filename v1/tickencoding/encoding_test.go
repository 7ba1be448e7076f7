package tickencoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URL_RoundTrip(t *testing.T) {
	enc := Base64URL{}

	cases := map[string][]byte{
		"empty":       {},
		"single zero": {0x00},
		"mixed":       {0x00, 0x01, 0xFF},
		"all values":  allByteValues(),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			decoded, err := enc.Decode([]byte(enc.Encode(in)))
			require.NoError(t, err)
			assert.Equal(t, in, decoded)
		})
	}
}

func TestBase64URL_RoundTripRandomLengths(t *testing.T) {
	enc := Base64URL{}
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 128; n++ {
		in := make([]byte, n)
		rng.Read(in)

		decoded, err := enc.Decode([]byte(enc.Encode(in)))
		require.NoError(t, err, "length %d", n)
		require.Equal(t, in, decoded, "length %d", n)
	}
}

func TestBase64URL_KnownVectors(t *testing.T) {
	enc := Base64URL{}

	assert.Equal(t, "", enc.Encode(nil))
	assert.Equal(t, "AAH_", enc.Encode([]byte{0x00, 0x01, 0xFF}))
	assert.Equal(t, "AP8", enc.Encode([]byte{0x00, 0xFF}))
}

func TestBase64URL_Deterministic(t *testing.T) {
	enc := Base64URL{}
	in := allByteValues()

	first := enc.Encode(in)
	second := enc.Encode(in)
	assert.Equal(t, first, second)

	a, err := enc.Decode([]byte(first))
	require.NoError(t, err)
	b, err := enc.Decode([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBase64URL_DistinctInputsDistinctText(t *testing.T) {
	enc := Base64URL{}
	seen := make(map[string][]byte)

	inputs := [][]byte{{}, {0x00}, {0x00, 0x00}, {0x01}, {0xFF}, {0x00, 0x01, 0xFF}, {0xFF, 0x01, 0x00}}
	for _, in := range inputs {
		text := enc.Encode(in)
		if prev, ok := seen[text]; ok {
			t.Fatalf("%v and %v both encode to %q", prev, in, text)
		}
		seen[text] = in
	}
}

func TestBase64URL_RejectsMalformed(t *testing.T) {
	enc := Base64URL{}

	cases := map[string]string{
		"outside alphabet":  "!not-valid!",
		"std alphabet":      "AA+/",
		"padding":           "AA==",
		"dangling char":     "A",
		"non-zero trailing": "AB",
		"line break":        "AA\nAA",
		"carriage return":   "AAAA\r",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := enc.Decode([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestDefaultEncoding(t *testing.T) {
	assert.IsType(t, Base64URL{}, DefaultEncoding())
}
