package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopy(t *testing.T) {
	original := []byte{1, 2, 3, 4, 5}
	copied := Copy(original)
	copied[2] = 6

	assert.Equal(t, []byte{1, 2, 3, 4, 5}, original)
	assert.Equal(t, []byte{}, Copy([]byte(nil)))
}

func TestDeepCopy(t *testing.T) {
	original := [][]byte{{1}, {2, 3}}
	copied := DeepCopy(original)
	copied[1][0] = 9
	copied[0] = []byte{7}

	assert.Equal(t, [][]byte{{1}, {2, 3}}, original)
	assert.Len(t, DeepCopy([][]byte(nil)), 0)
}
