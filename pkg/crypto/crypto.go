// Package crypto provides hash related utility functions.
//
// It supports sha512 for merkle commitments and blake2b for storage keys.
package crypto

import (
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

const (
	// HashLength is the size of the digest returned by Hash.
	HashLength = sha512.Size
	// StorageHashLength is the size of the digest returned by Blake2b128.
	StorageHashLength = 16
)

// RandomBytes returns size bytes read from crypto/rand.
func RandomBytes(size int) []byte {
	r := make([]byte, size)
	if _, err := rand.Read(r); err != nil {
		panic(err)
	}
	return r
}

// Hash returns sha512 digest of the concatenation of data.
func Hash(data ...[]byte) []byte {
	hasher := sha512.New()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Blake2b128 returns 16 bytes blake2b digest of data.
func Blake2b128(data []byte) []byte {
	hasher, err := blake2b.New(StorageHashLength, nil)
	if err != nil {
		// only fails with invalid size or key length, both are constant here.
		panic(err)
	}
	hasher.Write(data)
	return hasher.Sum(nil)
}
