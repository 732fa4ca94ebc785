package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/proof"
	"github.com/LiskHQ/lisk-bridge/pkg/trie/merkle"
)

var errInvalid = errors.New("proof is invalid")

var (
	proofFlag = &cli.StringFlag{
		Name:  "proof",
		Usage: "Path to JSON proof. - reads from stdin",
	}
	encodedFlag = &cli.StringFlag{
		Name:  "encoded",
		Usage: "Hex encoded proof",
	}
)

type inclusionOutput struct {
	Root  codec.Hex     `json:"root"`
	Leaf  string        `json:"leaf"`
	Proof *merkle.Proof `json:"proof"`
}

func GetProofCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "proof",
		Usage: "Block proof related commands",
		Subcommands: []*cli.Command{
			{
				Name:  "verify",
				Usage: "verify that the block hash commits to the transactions",
				Flags: []cli.Flag{proofFlag, encodedFlag},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					if err := p.Verify(); err != nil {
						rt.logger.Debugf("Verification failed with %s", err)
						fmt.Fprintln(c.App.Writer, "invalid")
						return errInvalid
					}
					fmt.Fprintln(c.App.Writer, "valid")
					return nil
				},
			},
			{
				Name:  "hash",
				Usage: "print the block hash the proof content commits to",
				Flags: []cli.Flag{proofFlag, encodedFlag},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, hex.EncodeToString(p.ExpectedBlockHash()))
					return nil
				},
			},
			{
				Name:  "generate",
				Usage: "print the proof with the block hash computed from its content",
				Flags: []cli.Flag{proofFlag, encodedFlag},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					generated, err := proof.Generate(p.PrevBlockHash(), p.Transactions())
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, generated)
				},
			},
			{
				Name:  "encode",
				Usage: "print the proof in hex encoded bytes",
				Flags: []cli.Flag{proofFlag},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, hex.EncodeToString(p.Encode()))
					return nil
				},
			},
			{
				Name:  "decode",
				Usage: "print the hex encoded proof in JSON",
				Flags: []cli.Flag{encodedFlag},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, p)
				},
			},
			{
				Name:  "inclusion",
				Usage: "print the merkle proof of a leaf of the transactions tree",
				Flags: []cli.Flag{
					proofFlag,
					encodedFlag,
					&cli.Uint64Flag{
						Name:     "index",
						Usage:    "Index of the leaf in the flattened transaction values",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					p, err := rt.readProof(c)
					if err != nil {
						return err
					}
					index := c.Uint64("index")
					inclusion, err := p.InclusionProof(index)
					if err != nil {
						return err
					}
					root := proof.TransactionsRoot(p.Transactions())
					leaf := proof.Values(p.Transactions())[index]
					if !merkle.VerifyProof([]byte(leaf), inclusion, root) {
						return fmt.Errorf("generated inclusion proof for index %d does not verify", index)
					}
					return printJSON(c.App.Writer, &inclusionOutput{
						Root:  root,
						Leaf:  leaf,
						Proof: inclusion,
					})
				},
			},
		},
	}
}

// readProof reads the proof from --encoded or --proof and checks it against the configured limits.
func (rt *runtime) readProof(c *cli.Context) (*proof.Proof, error) {
	p, err := readProof(c)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if txs := len(p.Transactions()); txs > rt.config.Bridge.MaxTransactions {
		return nil, fmt.Errorf("proof has %d transactions but at most %d is allowed", txs, rt.config.Bridge.MaxTransactions)
	}
	return p, nil
}

func readProof(c *cli.Context) (*proof.Proof, error) {
	if encoded := c.String("encoded"); encoded != "" {
		data, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, err
		}
		return proof.DecodeProof(data)
	}
	proofPath := c.String("proof")
	if proofPath == "" {
		return nil, errors.New("either --proof or --encoded must be specified")
	}
	var data []byte
	var err error
	if proofPath == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(proofPath)
	}
	if err != nil {
		return nil, err
	}
	p := &proof.Proof{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("invalid proof file: %w", err)
	}
	return p, nil
}

func printJSON(w io.Writer, val interface{}) error {
	encoded, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(encoded))
	return nil
}
