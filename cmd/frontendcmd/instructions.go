// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package frontendcmd

import (
	"github.com/luxfi/scholarship-deploy/cmd/flags"
	"github.com/luxfi/scholarship-deploy/pkg/handoff"
	"github.com/spf13/cobra"
)

var instructionsRecord string

// scholarship-deploy frontend instructions
func newInstructionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructions",
		Short: "Print the frontend instructions of a deployment record",
		RunE:  printInstructions,
		Args:  cobra.NoArgs,
	}
	flags.AddRecordFlagToCmd(cmd, &instructionsRecord)
	return cmd
}

func printInstructions(cmd *cobra.Command, _ []string) error {
	rec, err := handoff.ReadRecord(instructionsRecord)
	if err != nil {
		return err
	}
	addrs, err := rec.Addresses()
	if err != nil {
		return err
	}
	return handoff.RenderInstructions(cmd.OutOrStdout(), addrs, "")
}
