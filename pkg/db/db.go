// Package db implements key-value storage on pebble with prefix iteration.
package db

import (
	"errors"

	"github.com/cockroachdb/pebble"

	"github.com/LiskHQ/lisk-bridge/pkg/collection"
)

// ErrDataNotFound is returned by Get when the key does not exist.
var ErrDataNotFound = errors.New("data was not found")

// KeyValue is a copied entry returned by iteration.
type KeyValue interface {
	Key() []byte
	Value() []byte
}

// NewKeyValue returns a KeyValue holding key and value.
func NewKeyValue(key, value []byte) KeyValue {
	return &keyValue{
		key:   key,
		value: value,
	}
}

type keyValue struct {
	key   []byte
	value []byte
}

func (k *keyValue) Key() []byte   { return k.key }
func (k *keyValue) Value() []byte { return k.value }

// DB is a pebble backed key-value store. It is safe for concurrent use.
type DB struct {
	pebbleDB *pebble.DB
}

// NewDB opens or creates the database at path.
func NewDB(path string) (*DB, error) {
	return open(path, &pebble.Options{
		ErrorIfExists: false,
	})
}

func open(path string, opts *pebble.Options) (*DB, error) {
	pebbleDB, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &DB{
		pebbleDB: pebbleDB,
	}, nil
}

func (db *DB) Close() error {
	return db.pebbleDB.Close()
}

// Get returns a copy of the value stored at key, or ErrDataNotFound.
func (db *DB) Get(key []byte) ([]byte, error) {
	data, closer, err := db.pebbleDB.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrDataNotFound
		}
		return nil, err
	}
	copied := collection.Copy(data)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return copied, nil
}

func (db *DB) Exist(key []byte) (bool, error) {
	_, err := db.Get(key)
	if errors.Is(err, ErrDataNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (db *DB) Set(key, value []byte) error {
	return db.pebbleDB.Set(key, value, pebble.Sync)
}

func (db *DB) Del(key []byte) error {
	return db.pebbleDB.Delete(key, pebble.Sync)
}

// Iterate returns up to limit entries whose key starts with prefix, in key order.
// A limit of -1 returns all entries.
func (db *DB) Iterate(prefix []byte, limit int, reverse bool) ([]KeyValue, error) {
	iter := db.pebbleDB.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	return iteratePrefix(iter, limit, reverse), nil
}

// IterateKey is Iterate without values.
func (db *DB) IterateKey(prefix []byte, limit int, reverse bool) ([][]byte, error) {
	kvs, err := db.Iterate(prefix, limit, reverse)
	if err != nil {
		return nil, err
	}
	keys := make([][]byte, len(kvs))
	for i, kv := range kvs {
		keys[i] = kv.Key()
	}
	return keys, nil
}

func upperBound(b []byte) []byte {
	end := make([]byte, len(b))
	copy(end, b)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil // no upper-bound
}
