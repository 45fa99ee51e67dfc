// Package identifier derives stable, content-addressed identifiers for
// entities that have no natural key.
package identifier

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Entity-type prefixes.
const (
	Document     = "doc"
	Person       = "per"
	Organization = "org"
	Journal      = "jrnl"
	Subject      = "sub"
	VCard        = "vcard"
)

// namespace seeds every derived UUID. Changing it changes every identifier.
var namespace = uuid.MustParse("6f2b8f0e-4c1d-5a39-9e57-0b6c4a8d2e11")

// Derive returns "<prefix>-<uuid>" where the UUID is a name-based (SHA-1)
// UUID over the prefix and every key field. Each field is length-prefixed,
// so ("a b", "c") and ("a", "b c") yield different identifiers. Derive is
// total: empty prefixes, empty fields and an empty key list are all valid.
func Derive(prefix string, keys ...string) string {
	return prefix + "-" + uuid.NewSHA1(namespace, encode(prefix, keys)).String()
}

func encode(prefix string, keys []string) []byte {
	size := len(prefix) + binary.MaxVarintLen64
	for _, k := range keys {
		size += len(k) + binary.MaxVarintLen64
	}
	buf := make([]byte, 0, size)
	buf = appendField(buf, prefix)
	for _, k := range keys {
		buf = appendField(buf, k)
	}
	return buf
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}
