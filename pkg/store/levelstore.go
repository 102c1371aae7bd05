package store

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelStore is a Store backed by goleveldb, grounded on the teacher's
// LevelDBStore (pkg/core/storage/leveldb_store.go). It is the alternative
// backend an operator picks via pkg/config when bbolt's single-writer
// file locking doesn't fit their deployment.
type LevelStore struct {
	db *leveldb.DB
}

// NewLevelStore opens (creating if absent) a LevelDB database directory
// at path.
func NewLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

// Put stores value under key, overwriting any existing entry.
func (s *LevelStore) Put(key, value []byte) error {
	return s.db.Put(key, value, nil)
}

// Get returns the value stored under key, or ErrNotFound.
func (s *LevelStore) Get(key []byte) ([]byte, error) {
	v, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Seek calls f for every key sharing prefix, in key order.
func (s *LevelStore) Seek(prefix []byte, f func(k, v []byte)) {
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		f(iter.Key(), iter.Value())
	}
}

// Close releases the underlying database.
func (s *LevelStore) Close() error {
	return s.db.Close()
}
