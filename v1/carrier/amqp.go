package carrier

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// SetTable stores src as a long string in an AMQP header table. t must not
// be nil.
func (c Carrier) SetTable(t amqp.Table, key string, src tickencoding.ByteView) {
	t[key] = c.codec.Encode(src)
}

// Table decodes the header table value of key into dst. Both long strings
// and byte arrays are accepted.
func (c Carrier) Table(t amqp.Table, key string, dst tickencoding.ByteSetter) error {
	v, ok := t[key]
	if !ok {
		return notFound(key)
	}
	switch text := v.(type) {
	case string:
		return c.decode(key, text, dst)
	case []byte:
		return c.decode(key, string(text), dst)
	default:
		return notText(key, v)
	}
}

// SetTable stores src in an AMQP header table with the default encoding.
func SetTable(t amqp.Table, key string, src tickencoding.ByteView) {
	defaultCarrier().SetTable(t, key, src)
}

// Table decodes an AMQP header table value with the default encoding.
func Table(t amqp.Table, key string, dst tickencoding.ByteSetter) error {
	return defaultCarrier().Table(t, key, dst)
}
