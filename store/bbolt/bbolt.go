package bbolt

import (
	"time"

	"go.etcd.io/bbolt"

	"github.com/ostafen/mathsets/store"
)

const resultsBucket = "results"

type boltStore struct {
	db *bbolt.DB
}

// Open opens or creates the database file at path.
func Open(path string) (store.Store, error) {
	db, err := bbolt.Open(path, 0666, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	s := &boltStore{db: db}
	if err := s.createBucketIfNotExists(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *boltStore) createBucketIfNotExists() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(resultsBucket))
		return err
	})
}

func (s *boltStore) Begin(update bool) (store.Tx, error) {
	tx, err := s.db.Begin(update)
	if err != nil {
		return nil, err
	}
	return &boltTx{Tx: tx}, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

type boltTx struct {
	*bbolt.Tx
}

func (tx *boltTx) bucket() *bbolt.Bucket {
	return tx.Bucket([]byte(resultsBucket))
}

func (tx *boltTx) Set(key, value []byte) error {
	return tx.bucket().Put(key, value)
}

func (tx *boltTx) Get(key []byte) ([]byte, error) {
	return tx.bucket().Get(key), nil
}

func (tx *boltTx) Delete(key []byte) error {
	return tx.bucket().Delete(key)
}

func (tx *boltTx) Cursor() (store.Cursor, error) {
	return &boltCursor{Cursor: tx.bucket().Cursor()}, nil
}

func (tx *boltTx) Commit() error {
	return tx.Tx.Commit()
}

func (tx *boltTx) Rollback() error {
	err := tx.Tx.Rollback()
	if err == bbolt.ErrTxClosed {
		return nil
	}
	return err
}

type boltCursor struct {
	*bbolt.Cursor

	key, value []byte
}

func (c *boltCursor) Seek(seek []byte) error {
	c.key, c.value = c.Cursor.Seek(seek)
	return nil
}

func (c *boltCursor) Next() {
	c.key, c.value = c.Cursor.Next()
}

func (c *boltCursor) Valid() bool {
	return c.key != nil
}

func (c *boltCursor) Item() (store.Item, error) {
	return store.Item{Key: c.key, Value: c.value}, nil
}

func (c *boltCursor) Close() error {
	return nil
}
