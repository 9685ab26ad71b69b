package badger

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostafen/mathsets/store"
)

const gcDiscardRatio = 0.5

type badgerStore struct {
	db       *badger.DB
	log      *zap.Logger
	inMemory bool
}

// Open opens or creates the database directory dir.
func Open(dir string, log *zap.Logger) (store.Store, error) {
	return OpenWithOptions(badger.DefaultOptions(dir), log)
}

// OpenInMemory opens a database that lives only as long as the returned store.
func OpenInMemory(log *zap.Logger) (store.Store, error) {
	return OpenWithOptions(badger.DefaultOptions("").WithInMemory(true), log)
}

func OpenWithOptions(opts badger.Options, log *zap.Logger) (store.Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := badger.Open(opts.WithLogger(&logger{log.Sugar()}))
	if err != nil {
		return nil, err
	}
	return &badgerStore{db: db, log: log, inMemory: opts.InMemory}, nil
}

func (s *badgerStore) Begin(update bool) (store.Tx, error) {
	return &badgerTx{Txn: s.db.NewTransaction(update)}, nil
}

// Close reclaims value log space once before closing the database.
func (s *badgerStore) Close() error {
	if !s.inMemory {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			s.log.Warn("value log GC failed", zap.Error(err))
		}
	}
	return s.db.Close()
}

type badgerTx struct {
	*badger.Txn
}

func (tx *badgerTx) Set(key, value []byte) error {
	return tx.Txn.Set(key, value)
}

func (tx *badgerTx) Get(key []byte) ([]byte, error) {
	item, err := tx.Txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (tx *badgerTx) Delete(key []byte) error {
	return tx.Txn.Delete(key)
}

func (tx *badgerTx) Commit() error {
	return tx.Txn.Commit()
}

func (tx *badgerTx) Rollback() error {
	tx.Txn.Discard()
	return nil
}

func (tx *badgerTx) Cursor() (store.Cursor, error) {
	return &badgerCursor{it: tx.NewIterator(badger.DefaultIteratorOptions)}, nil
}

type badgerCursor struct {
	it *badger.Iterator
}

func (c *badgerCursor) Seek(key []byte) error {
	c.it.Seek(key)
	return nil
}

func (c *badgerCursor) Next() {
	c.it.Next()
}

func (c *badgerCursor) Valid() bool {
	return c.it.Valid()
}

func (c *badgerCursor) Item() (store.Item, error) {
	item := c.it.Item()

	value, err := item.ValueCopy(nil)
	return store.Item{Key: item.KeyCopy(nil), Value: value}, err
}

func (c *badgerCursor) Close() error {
	c.it.Close()
	return nil
}

// logger routes badger's messages to zap.
type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
