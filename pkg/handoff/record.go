// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handoff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Record is the machine readable outcome of a deployment, consumed by
// `frontend sync` and by other tooling.
type Record struct {
	Version            string           `json:"version" yaml:"version"`
	RunID              string           `json:"runId" yaml:"runId"`
	Network            NetworkRecord    `json:"network" yaml:"network"`
	Deployer           string           `json:"deployer" yaml:"deployer"`
	Contracts          []ContractRecord `json:"contracts" yaml:"contracts"`
	FrontendConfigPath string           `json:"frontendConfigPath" yaml:"frontendConfigPath"`
	DeployedAt         time.Time        `json:"deployedAt" yaml:"deployedAt"`
}

type NetworkRecord struct {
	ChainID string `json:"chainId" yaml:"chainId"`
	RPCURL  string `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
}

type ContractRecord struct {
	Name            string   `json:"name" yaml:"name"`
	Address         string   `json:"address" yaml:"address"`
	TxHash          string   `json:"txHash" yaml:"txHash"`
	BlockNumber     uint64   `json:"blockNumber" yaml:"blockNumber"`
	GasUsed         uint64   `json:"gasUsed" yaml:"gasUsed"`
	ConstructorArgs []string `json:"constructorArgs" yaml:"constructorArgs"`
	ArtifactPath    string   `json:"artifactPath" yaml:"artifactPath"`
	FrontendABIPath string   `json:"frontendAbiPath" yaml:"frontendAbiPath"`
}

// NewRecord builds the record of a complete run.
func NewRecord(res *deployer.Result) (*Record, error) {
	if !res.Complete() {
		return nil, fmt.Errorf("deployment run %s is incomplete", res.RunID)
	}
	chainID := ""
	if res.ChainID != nil {
		chainID = res.ChainID.String()
	}
	return &Record{
		Version: constants.RecordVersion,
		RunID:   res.RunID.String(),
		Network: NetworkRecord{
			ChainID: chainID,
			RPCURL:  res.RPCURL,
		},
		Deployer: res.Deployer.Hex(),
		Contracts: []ContractRecord{
			contractRecord(res.Token),
			contractRecord(res.Manager),
		},
		FrontendConfigPath: constants.FrontendAddressConfigPath,
		DeployedAt:         res.FinishedAt,
	}, nil
}

func contractRecord(d *models.Deployment) ContractRecord {
	args := d.ConstructorArgs
	if args == nil {
		args = []string{}
	}
	return ContractRecord{
		Name:            d.ContractName,
		Address:         d.Address.Hex(),
		TxHash:          d.TxHash.Hex(),
		BlockNumber:     d.BlockNumber,
		GasUsed:         d.GasUsed,
		ConstructorArgs: args,
		ArtifactPath:    artifact.RelPath(d.ContractName),
		FrontendABIPath: FrontendABIPath(d.ContractName),
	}
}

// Contract returns the entry for name.
func (r *Record) Contract(name string) (*ContractRecord, error) {
	for i := range r.Contracts {
		if r.Contracts[i].Name == name {
			return &r.Contracts[i], nil
		}
	}
	return nil, fmt.Errorf("record has no %s entry", name)
}

// Addresses extracts and validates the token and manager addresses.
func (r *Record) Addresses() (Addresses, error) {
	token, err := r.address(constants.TokenContractName)
	if err != nil {
		return Addresses{}, err
	}
	manager, err := r.address(constants.ManagerContractName)
	if err != nil {
		return Addresses{}, err
	}
	return Addresses{Token: token, Manager: manager}, nil
}

func (r *Record) address(name string) (common.Address, error) {
	c, err := r.Contract(name)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(c.Address) {
		return common.Address{}, fmt.Errorf("record has invalid %s address %q", name, c.Address)
	}
	return common.HexToAddress(c.Address), nil
}

// FormatFromPath picks the record format from the file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return constants.RecordFormatYAML
	default:
		return constants.RecordFormatJSON
	}
}

// WriteRecord writes rec to path in the given format.
func WriteRecord(path string, format string, rec *Record) error {
	switch format {
	case constants.RecordFormatYAML:
		content, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML record: %w", err)
		}
		return utils.WriteFile(path, content)
	case constants.RecordFormatJSON:
		return utils.WriteJSON(path, rec)
	default:
		return fmt.Errorf("unsupported record format %q", format)
	}
}

// ReadRecord loads a record written by WriteRecord.
func ReadRecord(path string) (*Record, error) {
	rec := &Record{}
	if FormatFromPath(path) == constants.RecordFormatYAML {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML from %s: %w", path, err)
		}
	} else if err := utils.ReadJSON(path, rec); err != nil {
		return nil, err
	}
	if _, err := rec.Addresses(); err != nil {
		return nil, fmt.Errorf("invalid deployment record %s: %w", path, err)
	}
	return rec, nil
}

