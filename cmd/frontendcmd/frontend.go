// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package frontendcmd

import (
	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.App

// scholarship-deploy frontend
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontend",
		Short: "Hand a deployment off to the frontend",
		Long: `The frontend command suite re-prints or applies the frontend changes required
after a deployment: the contract addresses in src/services/eth.js and the
contract ABIs in src/contracts/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// frontend instructions
	cmd.AddCommand(newInstructionsCmd())
	// frontend sync
	cmd.AddCommand(newSyncCmd())
	return cmd
}
