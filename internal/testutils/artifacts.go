// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	TokenABI = `[
		{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
		{"inputs":[],"name":"name","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"address","name":"account","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
	]`

	ManagerABI = `[
		{"inputs":[{"internalType":"address","name":"_tokenAddress","type":"address"}],"stateMutability":"nonpayable","type":"constructor"},
		{"inputs":[],"name":"token","outputs":[{"internalType":"contract IERC20","name":"","type":"address"}],"stateMutability":"view","type":"function"}
	]`

	// minimal runtime-less creation code, enough for artifact parsing
	SampleBytecode = "0x6080604052348015600f57600080fd5b50603f80601d6000396000f3fe6080604052600080fdfea164736f6c6343000814000a"
)

// WriteArtifact writes a hardhat style artifact for name under
// <artifactsDir>/contracts/<name>.sol/<name>.json and returns its path.
func WriteArtifact(t *testing.T, artifactsDir, name, abiJSON, bytecode string) string {
	t.Helper()
	doc := map[string]interface{}{
		"_format":          "hh-sol-artifact-1",
		"contractName":     name,
		"sourceName":       "contracts/" + name + ".sol",
		"abi":              json.RawMessage(abiJSON),
		"bytecode":         bytecode,
		"deployedBytecode": "0x6080604052600080fdfe",
		"linkReferences":   map[string]interface{}{},
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	dir := filepath.Join(artifactsDir, "contracts", name+".sol")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// WriteScholarshipArtifacts writes MyToken and ScholarshipManager artifacts
// into a fresh temp dir and returns it.
func WriteScholarshipArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteArtifact(t, dir, "MyToken", TokenABI, SampleBytecode)
	WriteArtifact(t, dir, "ScholarshipManager", ManagerABI, SampleBytecode)
	return dir
}
