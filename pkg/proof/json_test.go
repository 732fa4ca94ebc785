package proof

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProofJSON(t *testing.T) {
	proof, err := NewProof([]byte("block-111"), referenceBlockHash, referenceTransactions(42))
	assert.NoError(t, err)

	data, err := json.Marshal(proof)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"prevBlockHash": "626c6f636b2d313131",
		"blockHash": "efc692bf92dfe9847c82e1d881a2283796f7c36dec38a8229cb0422f97f26715fb941578522af4ecd366251e5dd3f19812e24579f2d0a7aa33dd8199861452c5",
		"transactions": [
			{"kind": "hash", "hash": "tx-111"},
			{"kind": "crossChainTransfer", "who": "0xdfkdfjh", "amount": 42, "destChainID": 99}
		]
	}`, string(data))

	decoded := &Proof{}
	assert.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, proof.Encode(), decoded.Encode())
	assert.True(t, decoded.IsValid())
}

func TestProofJSONErrors(t *testing.T) {
	cases := []struct {
		desc  string
		input string
	}{
		{
			desc:  "unknown kind",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[{"kind":"mint","hash":"a"}]}`,
		},
		{
			desc:  "hash with transfer fields",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[{"kind":"hash","hash":"a","amount":3}]}`,
		},
		{
			desc:  "transfer with hash field",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[{"kind":"crossChainTransfer","who":"a","hash":"b"}]}`,
		},
		{
			desc:  "misspelled transfer field",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[{"kind":"crossChainTransfer","who":"a","amount":1,"dest":99}]}`,
		},
		{
			desc:  "unknown proof field",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[],"height":1}`,
		},
		{
			desc:  "invalid hex",
			input: `{"prevBlockHash":"zz","blockHash":"","transactions":[]}`,
		},
		{
			desc:  "destination chain does not fit 8 bits",
			input: `{"prevBlockHash":"","blockHash":"","transactions":[{"kind":"crossChainTransfer","who":"a","destChainID":256}]}`,
		},
	}
	for _, c := range cases {
		t.Log(c.desc)
		assert.Error(t, json.Unmarshal([]byte(c.input), &Proof{}))
	}
}
