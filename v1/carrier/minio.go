package carrier

import (
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

const amzMetaPrefix = "X-Amz-Meta-"

// SetUserMetadata stores src as user metadata on an upload.
func (c Carrier) SetUserMetadata(opts *minio.PutObjectOptions, key string, src tickencoding.ByteView) {
	if opts.UserMetadata == nil {
		opts.UserMetadata = make(map[string]string)
	}
	opts.UserMetadata[key] = c.codec.Encode(src)
}

// UserMetadata decodes the user metadata value of key into dst. S3 lowers or
// canonicalizes metadata keys depending on the backend, so the lookup ignores
// case and an optional X-Amz-Meta- prefix.
func (c Carrier) UserMetadata(info minio.ObjectInfo, key string, dst tickencoding.ByteSetter) error {
	text, ok := lookupUserMetadata(info, key)
	if !ok {
		return notFound(key)
	}
	return c.decode(key, text, dst)
}

// lookupUserMetadata prefers an exact key match. Otherwise it falls back to
// the first case-insensitive match in sorted key order.
func lookupUserMetadata(info minio.ObjectInfo, key string) (string, bool) {
	if v, ok := info.UserMetadata[key]; ok {
		return v, true
	}

	key = trimMetaPrefix(key)
	if v, ok := info.UserMetadata[key]; ok {
		return v, true
	}

	keys := make([]string, 0, len(info.UserMetadata))
	for k := range info.UserMetadata {
		if strings.EqualFold(trimMetaPrefix(k), key) {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		return info.UserMetadata[keys[0]], true
	}

	if values := info.Metadata.Values(amzMetaPrefix + key); len(values) > 0 {
		return values[0], true
	}
	return "", false
}

func trimMetaPrefix(k string) string {
	if len(k) >= len(amzMetaPrefix) && strings.EqualFold(k[:len(amzMetaPrefix)], amzMetaPrefix) {
		return k[len(amzMetaPrefix):]
	}
	return k
}

// SetUserMetadata stores src as user metadata with the default encoding.
func SetUserMetadata(opts *minio.PutObjectOptions, key string, src tickencoding.ByteView) {
	defaultCarrier().SetUserMetadata(opts, key, src)
}

// UserMetadata decodes user metadata with the default encoding.
func UserMetadata(info minio.ObjectInfo, key string, dst tickencoding.ByteSetter) error {
	return defaultCarrier().UserMetadata(info, key, dst)
}
