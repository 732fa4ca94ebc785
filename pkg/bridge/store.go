package bridge

import (
	"errors"
	"fmt"

	"github.com/LiskHQ/lisk-bridge/pkg/crypto"
	"github.com/LiskHQ/lisk-bridge/pkg/db"
)

// LockStore persists one lock per account.
type LockStore interface {
	Get(account []byte) (*Lock, bool, error)
	Set(account []byte, lock *Lock) error
	Del(account []byte) error
	// All returns every lock ordered by storage key.
	All() ([]*AccountLock, error)
}

var prefixLock = []byte{0x00}

type dbStore struct {
	database *db.DB
}

// NewDBStore returns LockStore persisting locks in database.
func NewDBStore(database *db.DB) LockStore {
	return &dbStore{database: database}
}

// lockKey is prefix || blake2b128(account) || account.
func lockKey(account []byte) []byte {
	key := make([]byte, 0, len(prefixLock)+crypto.StorageHashLength+len(account))
	key = append(key, prefixLock...)
	key = append(key, crypto.Blake2b128(account)...)
	return append(key, account...)
}

func (s *dbStore) Get(account []byte) (*Lock, bool, error) {
	data, err := s.database.Get(lockKey(account))
	if errors.Is(err, db.ErrDataNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	lock := &Lock{}
	if err := lock.Decode(data); err != nil {
		return nil, false, fmt.Errorf("invalid lock stored for %x: %w", account, err)
	}
	return lock, true, nil
}

func (s *dbStore) Set(account []byte, lock *Lock) error {
	return s.database.Set(lockKey(account), lock.Encode())
}

func (s *dbStore) Del(account []byte) error {
	return s.database.Del(lockKey(account))
}

func (s *dbStore) All() ([]*AccountLock, error) {
	kvs, err := s.database.Iterate(prefixLock, -1, false)
	if err != nil {
		return nil, err
	}
	result := make([]*AccountLock, len(kvs))
	offset := len(prefixLock) + crypto.StorageHashLength
	for i, kv := range kvs {
		if len(kv.Key()) < offset {
			return nil, fmt.Errorf("invalid lock key %x", kv.Key())
		}
		lock := &Lock{}
		if err := lock.Decode(kv.Value()); err != nil {
			return nil, fmt.Errorf("invalid lock stored at %x: %w", kv.Key(), err)
		}
		result[i] = &AccountLock{
			Account: kv.Key()[offset:],
			Lock:    lock,
		}
	}
	return result, nil
}
