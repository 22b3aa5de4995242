// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"github.com/spf13/viper"
)

// Config keys. Each one is also reachable as an env var with the
// SCHOLARSHIP_ prefix and dashes turned into underscores.
const (
	KeyRPCURL            = "rpc-url"
	KeyChainID           = "chain-id"
	KeyArtifactsDir      = "artifacts-dir"
	KeyFrontendDir       = "frontend-dir"
	KeyRecordFile        = "record-file"
	KeyRecordFormat      = "record-format"
	KeyConfirmTimeout    = "confirm-timeout"
	KeyRPCTimeout        = "rpc-timeout"
	KeyGasLimit          = "gas-limit"
	KeyLowBalanceWarning = "low-balance-warning"
	KeyPrivateKey        = "private-key"
	KeyMnemonic          = "mnemonic"
	KeyHDIndex           = "hd-index"
	KeyKeyFile           = "key-file"
	KeyKeyPassword       = "key-password"
	KeyYes               = "yes"
	KeyNonInteractive    = "non-interactive"
)

// Config is the resolved configuration handed to the deployer. Nothing below
// the cmd layer reads viper or the environment directly.
type Config struct {
	RPCURL            string
	ChainID           *big.Int
	ArtifactsDir      string
	FrontendDir       string
	RecordFile        string
	RecordFormat      string
	ConfirmTimeout    time.Duration
	RPCTimeout        time.Duration
	GasLimit          uint64
	LowBalanceWarning *big.Int

	Credentials Credentials

	AssumeYes      bool
	NonInteractive bool
}

// Credentials holds the raw signer material. At most one source is expected
// to be set; key.FromCredentials tries them in field order.
type Credentials struct {
	PrivateKey  string
	Mnemonic    string
	HDIndex     uint32
	KeyFile     string
	KeyPassword string
}

func (c Credentials) String() string {
	var sources []string
	if c.PrivateKey != "" {
		sources = append(sources, "private-key")
	}
	if c.Mnemonic != "" {
		sources = append(sources, "mnemonic")
	}
	if c.KeyFile != "" {
		sources = append(sources, "key-file:"+c.KeyFile)
	}
	if len(sources) == 0 {
		return "none"
	}
	return strings.Join(sources, ",")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRPCURL, constants.DefaultRPCURL)
	v.SetDefault(KeyArtifactsDir, constants.DefaultArtifactsDir)
	v.SetDefault(KeyFrontendDir, ".")
	v.SetDefault(KeyRecordFormat, constants.RecordFormatJSON)
	v.SetDefault(KeyConfirmTimeout, constants.ConfirmationTimeout)
	v.SetDefault(KeyRPCTimeout, constants.RPCRequestTimeout)
	v.SetDefault(KeyLowBalanceWarning, constants.DefaultLowBalanceWarning)
}

// New builds a Config from v, validating every value it reads.
func New(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		RPCURL:         strings.TrimSuffix(v.GetString(KeyRPCURL), "/"),
		ArtifactsDir:   v.GetString(KeyArtifactsDir),
		FrontendDir:    v.GetString(KeyFrontendDir),
		RecordFile:     v.GetString(KeyRecordFile),
		RecordFormat:   strings.ToLower(v.GetString(KeyRecordFormat)),
		ConfirmTimeout: v.GetDuration(KeyConfirmTimeout),
		RPCTimeout:     v.GetDuration(KeyRPCTimeout),
		GasLimit:       v.GetUint64(KeyGasLimit),
		Credentials: Credentials{
			PrivateKey:  strings.TrimSpace(v.GetString(KeyPrivateKey)),
			Mnemonic:    strings.TrimSpace(v.GetString(KeyMnemonic)),
			HDIndex:     v.GetUint32(KeyHDIndex),
			KeyFile:     v.GetString(KeyKeyFile),
			KeyPassword: v.GetString(KeyKeyPassword),
		},
		AssumeYes:      v.GetBool(KeyYes),
		NonInteractive: v.GetBool(KeyNonInteractive),
	}
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("%s must be set", KeyRPCURL)
	}
	if chainID := strings.TrimSpace(v.GetString(KeyChainID)); chainID != "" && chainID != "0" {
		id, ok := new(big.Int).SetString(chainID, 10)
		if !ok || id.Sign() <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", KeyChainID, chainID)
		}
		cfg.ChainID = id
	}
	switch cfg.RecordFormat {
	case constants.RecordFormatJSON, constants.RecordFormatYAML:
	default:
		return nil, fmt.Errorf("invalid %s %q: expected %s or %s",
			KeyRecordFormat, cfg.RecordFormat, constants.RecordFormatJSON, constants.RecordFormatYAML)
	}
	if cfg.ConfirmTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeyConfirmTimeout)
	}
	if cfg.RPCTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeyRPCTimeout)
	}
	threshold, err := utils.ParseEther(v.GetString(KeyLowBalanceWarning))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLowBalanceWarning, err)
	}
	cfg.LowBalanceWarning = threshold
	return cfg, nil
}

// RecordPath returns where the deployment record is written. Without an
// explicit record-file it is deployments/<chainID>.<format>.
func (c *Config) RecordPath(chainID *big.Int) string {
	if c.RecordFile != "" {
		return c.RecordFile
	}
	name := "unknown"
	if chainID != nil {
		name = chainID.String()
	}
	return filepath.Join(constants.DefaultDeploymentsDir, name+"."+c.RecordFormat)
}
