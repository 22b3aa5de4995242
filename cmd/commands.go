// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// DeployCmd is the deploy command name
	DeployCmd = "deploy"

	// BalanceCmd is the balance command name
	BalanceCmd = "balance"

	// FrontendCmd is the frontend command name
	FrontendCmd = "frontend"
)
