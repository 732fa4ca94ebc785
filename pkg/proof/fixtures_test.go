package proof

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

type blockHashFixture struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	TestCases []struct {
		Description string `yaml:"description"`
		Input       struct {
			PrevBlockHash codec.Hex `yaml:"prevBlockHash"`
			Transactions  []struct {
				Kind        string `yaml:"kind"`
				Hash        string `yaml:"hash"`
				Who         string `yaml:"who"`
				Amount      int32  `yaml:"amount"`
				DestChainID uint8  `yaml:"destChainID"`
			} `yaml:"transactions"`
		} `yaml:"input"`
		Output struct {
			TransactionsRoot codec.Hex `yaml:"transactionsRoot"`
			BlockHash        codec.Hex `yaml:"blockHash"`
		} `yaml:"output"`
	} `yaml:"testCases"`
}

func loadFixture(path string, fixture interface{}) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(file, fixture)
}
