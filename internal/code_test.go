package internal

import (
	"bytes"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestRecordKeyOrdersNewestFirst(t *testing.T) {
	f := gofakeit.New(1)

	for i := 0; i < 1000; i++ {
		a := f.DateRange(time.Unix(0, 0), time.Now())
		b := f.DateRange(time.Unix(0, 0), time.Now())

		aKey, err := RecordKey("results", a, f.UUID())
		require.NoError(t, err)
		bKey, err := RecordKey("results", b, f.UUID())
		require.NoError(t, err)

		if a.After(b) {
			require.Negative(t, bytes.Compare(aKey, bKey))
		} else if b.After(a) {
			require.Positive(t, bytes.Compare(aKey, bKey))
		}

		require.True(t, bytes.HasPrefix(aKey, KeyPrefix("results")))
	}
}

func TestParseRecordKey(t *testing.T) {
	created := time.Date(2023, 4, 5, 6, 7, 8, 9, time.UTC)

	key, err := RecordKey("results", created, "id-1")
	require.NoError(t, err)

	prefix, parsed, id, err := ParseRecordKey(key)
	require.NoError(t, err)
	require.Equal(t, "results", prefix)
	require.True(t, created.Equal(parsed))
	require.Equal(t, "id-1", id)

	_, _, _, err = ParseRecordKey([]byte("garbage"))
	require.Error(t, err)
}

func TestIndexKeyDoesNotShareRecordPrefix(t *testing.T) {
	key, err := IndexKey("ids", "id-1")
	require.NoError(t, err)
	require.False(t, bytes.HasPrefix(key, KeyPrefix("results")))
	require.True(t, bytes.HasPrefix(key, KeyPrefix("ids")))
}
