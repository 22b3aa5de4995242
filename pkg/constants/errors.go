// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoSigner            = errors.New("\n\nNo deployer account found. To resolve this:\n- Set SCHOLARSHIP_PRIVATE_KEY or SCHOLARSHIP_MNEMONIC.\n- Or use --key-file with an encrypted keystore file.\n") //nolint:stylecheck
	ErrArtifactNotFound    = errors.New("contract artifact not found")
	ErrEmptyBytecode       = errors.New("contract artifact has no deployable bytecode")
	ErrDeploymentReverted  = errors.New("deployment transaction reverted")
	ErrNoContractCode      = errors.New("no contract code at deployed address")
	ErrConfirmationTimeout = errors.New("timed out waiting for deployment confirmation")
	ErrChainIDMismatch     = errors.New("chain id reported by the node does not match configuration")
	ErrUserAborted         = errors.New("deployment aborted by user")
)
