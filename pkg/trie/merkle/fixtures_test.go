package merkle

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

type merkleFixture struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	TestCases []struct {
		Description string `yaml:"description"`
		Input       struct {
			Values []codec.Hex `yaml:"values"`
		} `yaml:"input"`
		Output struct {
			MerkleRoot codec.Hex `yaml:"merkleRoot"`
			Proofs     []struct {
				Index         uint64      `yaml:"index"`
				SiblingHashes []codec.Hex `yaml:"siblingHashes"`
			} `yaml:"proofs"`
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
