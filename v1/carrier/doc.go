// Package carrier stores binary values in string-only key/value carriers.
//
// HTTP headers, MinIO object user metadata and AMQP 0-9-1 header tables only
// hold text. The functions in this package write any tickencoding.ByteView
// as TickEncoded text and read it back into a tickencoding.ByteSetter.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/carrier"
//
//	carrier.SetHeader(req.Header, "X-Content-Digest", digest)
//
//	var got Digest
//	if err := carrier.Header(resp.Header, "X-Content-Digest", &got); err != nil {
//	    return err
//	}
//
// A missing key yields ErrNotFound and a value that is not text yields
// ErrNotText. Decoding failures are the *tickencoding.DecodeError values
// returned by the codec, so tickencoding.IsEncodingMalformed and
// tickencoding.IsTargetConversion apply.
//
// A Carrier bound to a custom codec is created with New:
//
//	c := carrier.New(tickencoding.Codec{}.WithObserver(metrics))
//	c.SetTable(msg.Headers, "checksum", sum)
package carrier
