package db

import (
	"encoding/hex"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LiskHQ/lisk-bridge/pkg/crypto"
)

func randomTempDir() string {
	return path.Join(os.TempDir(), hex.EncodeToString(crypto.RandomBytes(10)))
}

var testData = []struct {
	Key   []byte
	Value []byte
}{
	{
		Key:   []byte{0, 0},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{0, 1},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{1, 0},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{1, 1},
		Value: crypto.RandomBytes(100),
	},
}

func TestDB(t *testing.T) {
	dir := randomTempDir()
	defer os.RemoveAll(dir)
	fileDB, err := NewDB(dir)
	assert.NoError(t, err)
	defer fileDB.Close()

	inmemoryDB, err := NewInMemoryDB()
	assert.NoError(t, err)
	defer inmemoryDB.Close()

	for _, db := range []*DB{fileDB, inmemoryDB} {
		for _, kv := range testData {
			assert.NoError(t, db.Set(kv.Key, kv.Value))
		}

		fetched, err := db.Get(testData[0].Key)
		assert.NoError(t, err)
		assert.Equal(t, testData[0].Value, fetched)

		_, err = db.Get([]byte{2})
		assert.ErrorIs(t, err, ErrDataNotFound)

		exist, err := db.Exist(testData[0].Key)
		assert.NoError(t, err)
		assert.True(t, exist)

		exist, err = db.Exist([]byte{2, 2})
		assert.NoError(t, err)
		assert.False(t, exist)

		result, err := db.Iterate([]byte{0}, 1, false)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, testData[0].Key, result[0].Key())
		assert.Equal(t, testData[0].Value, result[0].Value())

		result, err = db.Iterate([]byte{0}, 1, true)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, testData[1].Key, result[0].Key())

		result, err = db.Iterate([]byte{0}, -1, true)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, testData[1].Key, result[0].Key())
		assert.Equal(t, testData[0].Key, result[1].Key())

		result, err = db.Iterate([]byte{}, -1, false)
		assert.NoError(t, err)
		assert.Len(t, result, 4)

		keys, err := db.IterateKey([]byte{1}, -1, false)
		assert.NoError(t, err)
		assert.Equal(t, [][]byte{testData[2].Key, testData[3].Key}, keys)

		assert.NoError(t, db.Del(testData[0].Key))
		exist, err = db.Exist(testData[0].Key)
		assert.NoError(t, err)
		assert.False(t, exist)

		result, err = db.Iterate([]byte{3}, -1, false)
		assert.NoError(t, err)
		assert.Len(t, result, 0)
	}
}

func TestDBReopen(t *testing.T) {
	dir := randomTempDir()
	defer os.RemoveAll(dir)

	db, err := NewDB(dir)
	assert.NoError(t, err)
	assert.NoError(t, db.Set([]byte("key"), []byte("value")))
	assert.NoError(t, db.Close())

	db, err = NewDB(dir)
	assert.NoError(t, err)
	defer db.Close()
	value, err := db.Get([]byte("key"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, []byte{0, 2}, upperBound([]byte{0, 1}))
	assert.Equal(t, []byte{1}, upperBound([]byte{0, 255}))
	assert.Nil(t, upperBound([]byte{255, 255}))
	assert.Nil(t, upperBound([]byte{}))
}
