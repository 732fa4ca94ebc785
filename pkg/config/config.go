// Package config provides config structure for the bridge.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"golang.org/x/exp/slices"
)

var (
	logLevels              = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	defaultMaxTransactions = 4096
)

type Config struct {
	System *SystemConfig `json:"system"`
	Bridge *BridgeConfig `json:"bridge"`
}

// ReadFile reads JSON config at filePath. Fields not present are left empty.
func ReadFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

func (c *Config) InsertDefault() error {
	if c.System == nil {
		c.System = &SystemConfig{}
	}
	if err := c.System.InsertDefault(); err != nil {
		return err
	}
	if c.Bridge == nil {
		c.Bridge = &BridgeConfig{}
	}
	return c.Bridge.InsertDefault()
}

// Merge overwrites c with the non empty values of config.
func (c *Config) Merge(config *Config) {
	if config.System != nil {
		if c.System == nil {
			c.System = &SystemConfig{}
		}
		c.System.Merge(config.System)
	}
	if config.Bridge != nil {
		if c.Bridge == nil {
			c.Bridge = &BridgeConfig{}
		}
		c.Bridge.Merge(config.Bridge)
	}
}

func (c *Config) Validate() error {
	if c.System == nil || c.Bridge == nil {
		return errors.New("config is not initialized")
	}
	if err := c.System.Validate(); err != nil {
		return err
	}
	return c.Bridge.Validate()
}

type SystemConfig struct {
	DataPath string `json:"dataPath"`
	LogLevel string `json:"logLevel"`
}

func (c *SystemConfig) InsertDefault() error {
	if c.DataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.DataPath = path.Join(home, ".lisk", "bridge")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

func (c *SystemConfig) Merge(config *SystemConfig) {
	if config.DataPath != "" {
		c.DataPath = config.DataPath
	}
	if config.LogLevel != "" {
		c.LogLevel = config.LogLevel
	}
}

func (c SystemConfig) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log level %s is not allowed", c.LogLevel)
	}
	if c.DataPath == "" {
		return errors.New("dataPath cannot be empty")
	}
	return nil
}

// BridgeConfig configures the lock ledger.
// ChainID is the chain this ledger runs on, MaxTransactions bounds the proofs accepted for unlocking.
type BridgeConfig struct {
	ChainID         uint16 `json:"chainID"`
	MaxTransactions int    `json:"maxTransactions"`
}

func (c *BridgeConfig) InsertDefault() error {
	if c.MaxTransactions == 0 {
		c.MaxTransactions = defaultMaxTransactions
	}
	return nil
}

func (c *BridgeConfig) Merge(config *BridgeConfig) {
	if config.ChainID != 0 {
		c.ChainID = config.ChainID
	}
	if config.MaxTransactions != 0 {
		c.MaxTransactions = config.MaxTransactions
	}
}

func (c BridgeConfig) Validate() error {
	if c.MaxTransactions < 1 {
		return fmt.Errorf("maxTransactions must be positive but %d is specified", c.MaxTransactions)
	}
	return nil
}
