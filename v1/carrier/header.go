package carrier

import (
	"net/http"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// SetHeader stores src under key, replacing any existing values.
func (c Carrier) SetHeader(h http.Header, key string, src tickencoding.ByteView) {
	h.Set(key, c.codec.Encode(src))
}

// Header decodes the first value of key into dst.
func (c Carrier) Header(h http.Header, key string, dst tickencoding.ByteSetter) error {
	values := h.Values(key)
	if len(values) == 0 {
		return notFound(key)
	}
	return c.decode(key, values[0], dst)
}

// SetHeader stores src under key with the default encoding.
func SetHeader(h http.Header, key string, src tickencoding.ByteView) {
	defaultCarrier().SetHeader(h, key, src)
}

// Header decodes the first value of key into dst with the default encoding.
func Header(h http.Header, key string, dst tickencoding.ByteSetter) error {
	return defaultCarrier().Header(h, key, dst)
}
