// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deployer

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/models"
)

// Step is one state of the deployment sequence.
type Step string

const (
	StepResolveSigner    Step = "Resolve signer"
	StepReportBalance    Step = "Report balance"
	StepDeployToken      Step = "Deploy token"
	StepDeployManager    Step = "Deploy manager"
	StepEmitInstructions Step = "Emit instructions"
	StepDone             Step = "Done"
)

// Result describes a run. On failure it holds whatever was produced before
// the failing step.
type Result struct {
	RunID      uuid.UUID
	ChainID    *big.Int
	RPCURL     string
	Deployer   common.Address
	Balance    *big.Int
	Token      *models.Deployment
	Manager    *models.Deployment
	LastStep   Step
	StartedAt  time.Time
	FinishedAt time.Time
}

// Complete reports whether both contracts were deployed.
func (r *Result) Complete() bool {
	return r != nil && r.Token != nil && r.Manager != nil
}
