// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artifact loads compiled contract artifacts in the hardhat layout:
// <artifacts>/contracts/<Name>.sol/<Name>.json
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
)

// hardhatArtifact is the subset of the hardhat artifact format we read.
type hardhatArtifact struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

type Artifact struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
	// RawABI is the abi array as it appears in the artifact file
	RawABI json.RawMessage
}

// RelPath is the artifact path relative to the project root, as referenced
// by the frontend hand-off instructions.
func RelPath(contractName string) string {
	return filepath.ToSlash(filepath.Join(
		constants.DefaultArtifactsDir,
		constants.ArtifactContractsDir,
		contractName+constants.SolidityFileSuffix,
		contractName+constants.ArtifactFileSuffix,
	))
}

// CheckConstructorArgs validates the number of constructor arguments against the ABI.
func (a *Artifact) CheckConstructorArgs(n int) error {
	expected := len(a.ABI.Constructor.Inputs)
	if expected != n {
		return fmt.Errorf("%s constructor expects %d argument(s), got %d", a.ContractName, expected, n)
	}
	return nil
}

// Store resolves artifacts under a hardhat artifacts directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the artifact file for contractName inside the store.
func (s *Store) Path(contractName string) string {
	return filepath.Join(
		s.dir,
		constants.ArtifactContractsDir,
		contractName+constants.SolidityFileSuffix,
		contractName+constants.ArtifactFileSuffix,
	)
}

// Load reads and parses the artifact for contractName.
func (s *Store) Load(contractName string) (*Artifact, error) {
	path := s.Path(contractName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (did you run the contract compiler?)", constants.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return Parse(content)
}

// Parse decodes a hardhat artifact document.
func Parse(content []byte) (*Artifact, error) {
	var raw hardhatArtifact
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("invalid artifact JSON: %w", err)
	}
	if raw.ContractName == "" {
		return nil, fmt.Errorf("artifact has no contractName")
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", raw.ContractName)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid abi in artifact %s: %w", raw.ContractName, err)
	}
	bytecode := strings.TrimSpace(raw.Bytecode)
	if bytecode == "" || bytecode == "0x" {
		return nil, fmt.Errorf("%w: %s", constants.ErrEmptyBytecode, raw.ContractName)
	}
	if !strings.HasPrefix(bytecode, "0x") {
		bytecode = "0x" + bytecode
	}
	code, err := hexutil.Decode(bytecode)
	if err != nil {
		// unlinked libraries leave __$...$__ placeholders in the bytecode
		return nil, fmt.Errorf("invalid bytecode in artifact %s: %w", raw.ContractName, err)
	}
	return &Artifact{
		ContractName: raw.ContractName,
		SourceName:   raw.SourceName,
		ABI:          parsedABI,
		Bytecode:     code,
		RawABI:       raw.ABI,
	}, nil
}
