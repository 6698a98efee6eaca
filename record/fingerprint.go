package record

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
)

// Fingerprint returns a stable hash of every (field, value) pair in r.
// Field order does not matter; any differing field or value changes it.
func (r Record) Fingerprint() string {
	fields := make([]string, 0, len(r))
	for k := range r {
		fields = append(fields, k)
	}
	slices.Sort(fields)

	h := sha256.New()
	for _, field := range fields {
		h.Write([]byte(field))
		h.Write([]byte{0}) // separator

		h.Write(encodeValue(r[field]))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// encodeValue renders a value canonically. JSON keeps strings and numbers
// distinct ("1" vs 1) and sorts nested map keys.
func encodeValue(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf("%T:%v", v, v))
	}
	return data
}
