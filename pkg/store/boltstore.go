package store

import (
	"bytes"

	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore is a Store backed by a single bbolt database file, grounded
// on the teacher's BoltDBStore (pkg/core/storage/boltdb_store.go).
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if absent) a bbolt database at path and
// ensures the runs bucket exists.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Put stores value under key, overwriting any existing entry.
func (s *BoltStore) Put(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put(key, value)
	})
}

// Get returns the value stored under key, or ErrNotFound.
func (s *BoltStore) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get(key)
		if v == nil {
			return ErrNotFound
		}
		out = append(out, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Seek calls f for every key sharing prefix, in key order.
func (s *BoltStore) Seek(prefix []byte, f func(k, v []byte)) {
	_ = s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			f(k, v)
		}
		return nil
	})
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
