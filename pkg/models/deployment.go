// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package models contains data structures and types used throughout the CLI.
package models

import (
	"fmt"

	"github.com/luxfi/geth/common"
)

// DeployRequest asks a contract factory to create one contract instance.
type DeployRequest struct {
	ContractName string
	Args         []interface{}
	// OnSubmitted, if set, is called once the creation tx is broadcast and
	// before waiting for confirmation
	OnSubmitted func(txHash common.Hash)
}

// Deployment is the confirmed result of a DeployRequest.
type Deployment struct {
	ContractName    string
	Address         common.Address
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Deployer        common.Address
	ConstructorArgs []string
}

// FormatArgs renders constructor arguments for display and records.
func FormatArgs(args []interface{}) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case common.Address:
			out = append(out, v.Hex())
		case fmt.Stringer:
			out = append(out, v.String())
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
