package proof

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/crypto"
)

const referenceEncoded = "08011209626c6f636b2d3131311a40" +
	"efc692bf92dfe9847c82e1d881a2283796f7c36dec38a8229cb0422f97f26715fb941578522af4ecd366251e5dd3f19812e24579f2d0a7aa33dd8199861452c5" +
	"220c080012080a0674782d313131" +
	"22130801120f0a09307864666b64666a6810541863"

func TestProofEncode(t *testing.T) {
	proof, err := NewProof([]byte("block-111"), referenceBlockHash, referenceTransactions(42))
	assert.NoError(t, err)
	assert.Equal(t, referenceEncoded, hex.EncodeToString(proof.Encode()))

	assert.Equal(t, "080012080a0674782d313131", hex.EncodeToString(NewHashOnly("tx-111").Encode()))
	assert.Equal(t, "0801120f0a09307864666b64666a6810541863", hex.EncodeToString(NewCrossChainTransfer("0xdfkdfjh", 42, 99).Encode()))
}

func TestDecodeProof(t *testing.T) {
	data, _ := hex.DecodeString(referenceEncoded)
	proof, err := DecodeProof(data)
	assert.NoError(t, err)
	assert.Equal(t, []byte("block-111"), proof.PrevBlockHash())
	assert.Equal(t, referenceBlockHash, proof.BlockHash())
	assert.Equal(t, referenceTransactions(42), proof.Transactions())
	assert.True(t, proof.IsValid())
	assert.Equal(t, data, proof.Encode())

	empty, err := DecodeProof([]byte{0x08, 0x01, 0x12, 0x00, 0x1a, 0x00})
	assert.NoError(t, err)
	assert.Len(t, empty.Transactions(), 0)
	assert.False(t, empty.IsValid())
}

func TestDecodeProofErrors(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		err   error
	}{
		{
			desc:  "unsupported version",
			input: "080212001a00",
			err:   ErrUnsupportedVersion,
		},
		{
			desc:  "missing block hash",
			input: "08011200",
			err:   codec.ErrFieldNumberNotFound,
		},
		{
			desc:  "trailing bytes",
			input: referenceEncoded + "0801",
			err:   codec.ErrUnreadBytes,
		},
		{
			desc:  "unknown transaction kind",
			input: "080112001a00" + "2204" + "08021200",
			err:   ErrUnknownTransactionKind,
		},
		{
			desc:  "destination chain does not fit 8 bits",
			input: "080112001a00" + "220c" + "08011208" + "0a0161" + "1054" + "188002",
			err:   codec.ErrOutOfRange,
		},
		{
			desc:  "amount does not fit 32 bits",
			input: "080112001a00" + "220f" + "0801120b" + "0a0161" + "108080808010" + "1863",
			err:   codec.ErrOutOfRange,
		},
		{
			desc:  "hash body with extra field",
			input: "080112001a00" + "2209" + "08001205" + "0a0161" + "1001",
			err:   codec.ErrUnreadBytes,
		},
		{
			desc:  "string not NFC normalized",
			input: "080112001a00" + "2209" + "08001205" + "0a0365cc81",
			err:   codec.ErrInvalidString,
		},
		{
			desc:  "non minimal varint",
			input: "08810012001a00",
			err:   codec.ErrUnnecessaryLeadingBytes,
		},
	}
	for _, c := range cases {
		t.Log(c.desc)
		input, err := hex.DecodeString(c.input)
		assert.NoError(t, err)
		_, err = DecodeProof(input)
		assert.ErrorIs(t, err, c.err)
	}
}

func TestDecodeTransaction(t *testing.T) {
	tx, err := DecodeTransaction(NewCrossChainTransfer("who", -42, 7).Encode())
	assert.NoError(t, err)
	assert.Equal(t, NewCrossChainTransfer("who", -42, 7), tx)

	_, err = DecodeTransaction(append(NewHashOnly("h").Encode(), 0x00))
	assert.Error(t, err)
}

func FuzzDecodeProof(f *testing.F) {
	reference, _ := hex.DecodeString(referenceEncoded)
	f.Add(reference)
	f.Add(crypto.RandomBytes(200))
	f.Fuzz(func(t *testing.T, data []byte) {
		proof, err := DecodeProof(data)
		if err != nil {
			return
		}
		// every accepted input has exactly one encoding
		assert.Equal(t, data, proof.Encode())
		assert.NoError(t, proof.Validate())
		proof.IsValid()
	})
}
