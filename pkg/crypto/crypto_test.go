package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	empty := Hash()
	assert.Len(t, empty, HashLength)
	assert.Equal(t,
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		hex.EncodeToString(empty),
	)
	assert.Equal(t, Hash([]byte("abc")), Hash([]byte("a"), []byte("bc")))
	assert.Equal(t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		hex.EncodeToString(Hash([]byte("abc"))),
	)
}

func TestBlake2b128(t *testing.T) {
	digest := Blake2b128([]byte("account"))
	assert.Len(t, digest, StorageHashLength)
	assert.Equal(t, digest, Blake2b128([]byte("account")))
	assert.NotEqual(t, digest, Blake2b128([]byte("account2")))
}

func TestRandomBytes(t *testing.T) {
	assert.Len(t, RandomBytes(10), 10)
	assert.NotEqual(t, RandomBytes(32), RandomBytes(32))
}
