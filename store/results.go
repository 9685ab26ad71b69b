package store

import (
	"bytes"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/internal"
	"github.com/ostafen/mathsets/mathset"
)

const (
	recordPrefix = "results"
	indexPrefix  = "ids"
)

var ErrRecordNotFound = errors.New("result record not found")

// Record is the stored outcome of one analyser run.
type Record struct {
	ID          string
	CreatedAt   time.Time
	Mode        string
	Point       float64
	Title       string
	Atoms       []mathset.Atom
	Affiliation *mathset.Affiliation
}

type encodedRecord struct {
	ID          string                  `msgpack:"id"`
	CreatedAt   *internal.LocalizedTime `msgpack:"created_at"`
	Mode        string                  `msgpack:"mode"`
	Point       float64                 `msgpack:"point"`
	Title       string                  `msgpack:"title"`
	Atoms       []internal.Atom         `msgpack:"atoms"`
	Affiliation *encodedAffiliation     `msgpack:"affiliation,omitempty"`
}

type encodedAffiliation struct {
	Contained bool      `msgpack:"contained"`
	Values    []float64 `msgpack:"values"`
}

func encodeRecord(r *Record) ([]byte, error) {
	rec := &encodedRecord{
		ID:        r.ID,
		CreatedAt: &internal.LocalizedTime{Time: r.CreatedAt},
		Mode:      r.Mode,
		Point:     r.Point,
		Title:     r.Title,
		Atoms:     internal.EncodeAtoms(r.Atoms),
	}
	if r.Affiliation != nil {
		rec.Affiliation = &encodedAffiliation{Contained: r.Affiliation.Contained, Values: r.Affiliation.Values}
	}
	return internal.Encode(rec)
}

func decodeRecord(data []byte) (*Record, error) {
	var rec encodedRecord
	if err := internal.Decode(data, &rec); err != nil {
		return nil, err
	}

	r := &Record{
		ID:    rec.ID,
		Mode:  rec.Mode,
		Point: rec.Point,
		Title: rec.Title,
		Atoms: internal.DecodeAtoms(rec.Atoms),
	}
	if rec.CreatedAt != nil {
		r.CreatedAt = rec.CreatedAt.Time
	}
	if rec.Affiliation != nil {
		r.Affiliation = &mathset.Affiliation{Contained: rec.Affiliation.Contained, Values: rec.Affiliation.Values}
	}
	return r, nil
}

// Results persists analyser results in a Store, newest first.
type Results struct {
	store Store
	now   func() time.Time
}

func NewResults(s Store) *Results {
	return &Results{store: s, now: time.Now}
}

// Save stores r, assigning its ID and creation time when they are unset.
func (res *Results) Save(r *Record) error {
	if r.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		r.ID = id.String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = res.now()
	}

	key, err := internal.RecordKey(recordPrefix, r.CreatedAt, r.ID)
	if err != nil {
		return err
	}
	idKey, err := internal.IndexKey(indexPrefix, r.ID)
	if err != nil {
		return err
	}
	value, err := encodeRecord(r)
	if err != nil {
		return err
	}

	tx, err := res.store.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Set(key, value); err != nil {
		return err
	}
	if err := tx.Set(idKey, key); err != nil {
		return err
	}
	return tx.Commit()
}

func (res *Results) Get(id string) (*Record, error) {
	idKey, err := internal.IndexKey(indexPrefix, id)
	if err != nil {
		return nil, err
	}

	tx, err := res.store.Begin(false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	key, err := tx.Get(idKey)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, errors.Wrapf(ErrRecordNotFound, "id %s", id)
	}

	value, err := tx.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errors.Wrapf(ErrRecordNotFound, "id %s", id)
	}
	return decodeRecord(value)
}

// List returns up to limit records, newest first. A non positive limit returns all of them.
func (res *Results) List(limit int) ([]*Record, error) {
	tx, err := res.store.Begin(false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	cursor, err := tx.Cursor()
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	prefix := internal.KeyPrefix(recordPrefix)
	if err := cursor.Seek(prefix); err != nil {
		return nil, err
	}

	records := make([]*Record, 0)
	for ; cursor.Valid() && (limit <= 0 || len(records) < limit); cursor.Next() {
		item, err := cursor.Item()
		if err != nil {
			return nil, err
		}
		if !bytes.HasPrefix(item.Key, prefix) {
			break
		}

		_, created, id, err := internal.ParseRecordKey(item.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupted key %x", item.Key)
		}

		r, err := decodeRecord(item.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupted record %x", item.Key)
		}
		if r.ID == "" {
			r.ID = id
		}
		if r.ID != id {
			return nil, errors.Errorf("record %s stored under key of %s", r.ID, id)
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = created
		}
		records = append(records, r)
	}
	return records, nil
}
