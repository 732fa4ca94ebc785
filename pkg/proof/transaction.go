package proof

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

// TransactionKind is the discriminant of a transaction in its encoded form.
type TransactionKind uint64

const (
	// KindHash identifies a transaction known only by its hash.
	KindHash TransactionKind = 0
	// KindCrossChainTransfer identifies a transfer to another chain.
	KindCrossChainTransfer TransactionKind = 1
)

var transactionKindNames = map[TransactionKind]string{
	KindHash:               "hash",
	KindCrossChainTransfer: "crossChainTransfer",
}

func (k TransactionKind) String() string {
	if name, exist := transactionKindNames[k]; exist {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint64(k))
}

func parseTransactionKind(name string) (TransactionKind, error) {
	for kind, kindName := range transactionKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, name)
}

// Transaction is one of HashOnly or CrossChainTransfer.
type Transaction interface {
	codec.Encodable
	// Kind returns the discriminant written on the wire.
	Kind() TransactionKind
	// Values returns the canonical strings committed as merkle leaves, in order.
	Values() []string
	// Validate checks that the transaction can be encoded and decoded byte exactly.
	Validate() error

	encodeBody() []byte
}

// HashOnly is a transaction of which only the hash is known.
type HashOnly struct {
	Hash string
}

// NewHashOnly returns a hash only transaction.
func NewHashOnly(hash string) HashOnly {
	return HashOnly{Hash: hash}
}

func (t HashOnly) Kind() TransactionKind { return KindHash }

func (t HashOnly) Values() []string {
	return []string{t.Hash}
}

func (t HashOnly) Validate() error {
	return validateString("hash", t.Hash)
}

func (t HashOnly) Encode() []byte {
	return encodeTransaction(t)
}

func (t HashOnly) encodeBody() []byte {
	writer := codec.NewWriter()
	writer.WriteString(1, t.Hash)
	return writer.Result()
}

// CrossChainTransfer is a transfer of Amount by Who to the chain DestChainID.
type CrossChainTransfer struct {
	Who         string
	Amount      int32
	DestChainID uint8
}

// NewCrossChainTransfer returns a cross chain transfer transaction.
func NewCrossChainTransfer(who string, amount int32, destChainID uint8) CrossChainTransfer {
	return CrossChainTransfer{
		Who:         who,
		Amount:      amount,
		DestChainID: destChainID,
	}
}

func (t CrossChainTransfer) Kind() TransactionKind { return KindCrossChainTransfer }

// Values returns who, amount and destination chain ID as base 10 strings.
func (t CrossChainTransfer) Values() []string {
	return []string{
		t.Who,
		strconv.FormatInt(int64(t.Amount), 10),
		strconv.FormatUint(uint64(t.DestChainID), 10),
	}
}

func (t CrossChainTransfer) Validate() error {
	return validateString("who", t.Who)
}

func (t CrossChainTransfer) Encode() []byte {
	return encodeTransaction(t)
}

func (t CrossChainTransfer) encodeBody() []byte {
	writer := codec.NewWriter()
	writer.WriteString(1, t.Who)
	writer.WriteInt32(2, t.Amount)
	writer.WriteUInt(3, uint64(t.DestChainID))
	return writer.Result()
}

// Values flattens the canonical values of txs in order.
func Values(txs []Transaction) []string {
	values := []string{}
	for _, tx := range txs {
		values = append(values, tx.Values()...)
	}
	return values
}

// Leaves returns the UTF-8 bytes of Values(txs).
func Leaves(txs []Transaction) [][]byte {
	values := Values(txs)
	leaves := make([][]byte, len(values))
	for i, value := range values {
		leaves[i] = []byte(value)
	}
	return leaves
}

func validateString(name, value string) error {
	if !utf8.ValidString(value) || !norm.NFC.IsNormalString(value) {
		return fmt.Errorf("%s %q: %w", name, value, ErrInvalidString)
	}
	return nil
}
