// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"fmt"
	"strings"

	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
)

// DeploymentConfirmer shows the deployment plan and asks before any gas is
// spent. The default answer is No.
type DeploymentConfirmer struct {
	Prompter Prompter
	Out      *ux.UserLog
}

var _ deployer.Confirmer = (*DeploymentConfirmer)(nil)

func (c *DeploymentConfirmer) ConfirmDeployment(plan deployer.Plan) (bool, error) {
	balance := "unknown"
	if plan.Balance != nil {
		balance = utils.FormatEtherGrouped(plan.Balance) + " " + constants.NativeSymbol
	}
	chainID := "unknown"
	if plan.ChainID != nil {
		chainID = plan.ChainID.String()
	}
	if err := ux.PrintTable(c.Out.Writer(), []string{"Parameter", "Value"}, [][]string{
		{"RPC endpoint", plan.RPCURL},
		{"Chain ID", chainID},
		{"Deployer", plan.Deployer.Hex()},
		{"Balance", balance},
		{"Contracts", strings.Join(plan.Contracts, ", ")},
	}); err != nil {
		return false, err
	}
	return c.Prompter.CaptureNoYes(fmt.Sprintf("Deploy %s to chain %s?", strings.Join(plan.Contracts, " and "), chainID))
}
