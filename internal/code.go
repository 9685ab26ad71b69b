package internal

import (
	"time"

	"github.com/google/orderedcode"
)

// RecordKey encodes (prefix, created, id) so that keys of the same prefix sort newest first.
func RecordKey(prefix string, created time.Time, id string) ([]byte, error) {
	return orderedcode.Append(nil, prefix, orderedcode.Decr(uint64(created.UnixNano())), id)
}

// ParseRecordKey is the inverse of RecordKey. The returned time is in UTC.
func ParseRecordKey(key []byte) (prefix string, created time.Time, id string, err error) {
	var nanos uint64
	_, err = orderedcode.Parse(string(key), &prefix, orderedcode.Decr(&nanos), &id)
	if err != nil {
		return "", time.Time{}, "", err
	}
	return prefix, time.Unix(0, int64(nanos)).UTC(), id, nil
}

// IndexKey encodes (prefix, id).
func IndexKey(prefix string, id string) ([]byte, error) {
	return orderedcode.Append(nil, prefix, id)
}

// KeyPrefix returns the encoding shared by every key starting with prefix.
func KeyPrefix(prefix string) []byte {
	buf, _ := orderedcode.Append(nil, prefix)
	return buf
}
