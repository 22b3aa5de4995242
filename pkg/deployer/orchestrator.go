// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployer runs the scholarship system deployment: resolve the
// deployer account, report its balance, deploy MyToken, deploy
// ScholarshipManager bound to the token, then hand the addresses off to the
// frontend.
package deployer

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
	"go.uber.org/zap"
)

// SignerProvider supplies the accounts able to sign for the target chain.
// Only the first one is used.
type SignerProvider interface {
	Accounts(ctx context.Context) ([]*key.Account, error)
}

// Ledger answers balance queries.
type Ledger interface {
	BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error)
}

// ContractFactory deploys a named contract and blocks until it is confirmed.
type ContractFactory interface {
	Deploy(ctx context.Context, deployer *key.Account, req models.DeployRequest) (*models.Deployment, error)
}

// Emitter publishes the outcome of a complete run.
type Emitter interface {
	Emit(ctx context.Context, res *Result) error
}

// Confirmer asks whether to go ahead before any gas is spent.
type Confirmer interface {
	ConfirmDeployment(plan Plan) (bool, error)
}

// StepObserver is notified around the steps that wait on the network.
type StepObserver interface {
	StepStarted(step string)
	WaitingFor(step string, what string)
	StepCompleted(step string, detail string)
	StepFailed(step string, err error)
}

// Plan is what the user is asked to confirm.
type Plan struct {
	ChainID   *big.Int
	RPCURL    string
	Deployer  common.Address
	Balance   *big.Int
	Contracts []string
}

type Params struct {
	Signers SignerProvider
	Ledger  Ledger
	Factory ContractFactory
	Emitter Emitter
	Out     *ux.UserLog
	Log     *zap.Logger
	ChainID *big.Int
	RPCURL  string

	// LowBalanceWarning is advisory: a lower balance prints a warning and
	// the run continues
	LowBalanceWarning *big.Int

	// Confirmer is skipped when nil
	Confirmer Confirmer
	// Observer is skipped when nil
	Observer StepObserver
}

type Orchestrator struct {
	Params
	now func() time.Time
}

func New(params Params) *Orchestrator {
	if params.Log == nil {
		params.Log = zap.NewNop()
	}
	if params.Out == nil {
		params.Out = ux.NewUserLog(params.Log, io.Discard)
	}
	return &Orchestrator{Params: params, now: time.Now}
}

// Run executes the sequence. It returns the (possibly partial) result
// together with the first error; there is no retry and no rollback.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID:     uuid.New(),
		ChainID:   o.ChainID,
		RPCURL:    o.RPCURL,
		StartedAt: o.now().UTC(),
	}
	log := o.Log.With(zap.String("runID", res.RunID.String()))

	o.Out.PrintLineSeparator()
	o.Out.PrintToUser("🚀 Starting scholarship system deployment")

	res.LastStep = StepResolveSigner
	deployer, err := o.resolveSigner(ctx)
	if err != nil {
		log.Error("no usable signer", zap.Error(err))
		return res, err
	}
	res.Deployer = deployer.Address
	o.Out.PrintToUser("👤 Deployer wallet: %s", deployer.Address.Hex())
	log.Info("signer resolved", zap.String("deployer", deployer.Address.Hex()), zap.String("source", string(deployer.Source)))

	res.LastStep = StepReportBalance
	res.Balance = o.reportBalance(ctx, log, deployer.Address)
	o.Out.PrintLineSeparator()
	o.Out.PrintToUser("")

	if o.Confirmer != nil {
		ok, err := o.Confirmer.ConfirmDeployment(Plan{
			ChainID:   o.ChainID,
			RPCURL:    o.RPCURL,
			Deployer:  deployer.Address,
			Balance:   res.Balance,
			Contracts: []string{constants.TokenContractName, constants.ManagerContractName},
		})
		if err != nil {
			return res, fmt.Errorf("failed to confirm deployment: %w", err)
		}
		if !ok {
			return res, constants.ErrUserAborted
		}
	}

	res.LastStep = StepDeployToken
	o.Out.PrintToUser("⏳ 1. Deploying %s...", constants.TokenContractName)
	token, err := o.deploy(ctx, log, StepDeployToken, deployer, models.DeployRequest{
		ContractName: constants.TokenContractName,
	})
	if err != nil {
		return res, err
	}
	res.Token = token
	o.Out.PrintToUser("✅ %s deployed at: %s", constants.TokenContractName, token.Address.Hex())

	res.LastStep = StepDeployManager
	o.Out.PrintToUser("")
	o.Out.PrintToUser("⏳ 2. Deploying %s...", constants.ManagerContractName)
	manager, err := o.deploy(ctx, log, StepDeployManager, deployer, models.DeployRequest{
		ContractName: constants.ManagerContractName,
		Args:         []interface{}{token.Address},
	})
	if err != nil {
		o.Out.PrintToUser("%s remains deployed at %s", constants.TokenContractName, token.Address.Hex())
		return res, err
	}
	res.Manager = manager
	o.Out.PrintToUser("✅ %s deployed at: %s", constants.ManagerContractName, manager.Address.Hex())

	res.LastStep = StepEmitInstructions
	res.FinishedAt = o.now().UTC()
	if o.Emitter != nil {
		if err := o.Emitter.Emit(ctx, res); err != nil {
			log.Error("hand-off failed", zap.Error(err))
			return res, fmt.Errorf("failed to emit post-deployment instructions: %w", err)
		}
	}
	res.LastStep = StepDone
	log.Info("deployment complete",
		zap.String("token", token.Address.Hex()),
		zap.String("manager", manager.Address.Hex()),
		zap.Duration("elapsed", res.FinishedAt.Sub(res.StartedAt)),
	)
	return res, nil
}

func (o *Orchestrator) resolveSigner(ctx context.Context) (*key.Account, error) {
	accounts, err := o.Signers.Accounts(ctx)
	if err != nil {
		return nil, &ConfigurationError{Step: StepResolveSigner, Err: err}
	}
	if len(accounts) == 0 || accounts[0] == nil {
		return nil, &ConfigurationError{Step: StepResolveSigner, Err: constants.ErrNoSigner}
	}
	return accounts[0], nil
}

// reportBalance prints the deployer balance. Nothing here can fail the run.
func (o *Orchestrator) reportBalance(ctx context.Context, log *zap.Logger, addr common.Address) *big.Int {
	balance, err := o.Ledger.BalanceAt(ctx, addr)
	if err != nil {
		log.Warn("balance query failed", zap.Error(err))
		o.Out.WarnToUser("Could not fetch wallet balance: %v", err)
		return nil
	}
	o.Out.PrintToUser("💰 Wallet balance: %s %s", utils.FormatEther(balance), constants.NativeSymbol)
	log.Info("deployer balance", zap.String("wei", balance.String()))
	if o.LowBalanceWarning != nil && balance.Cmp(o.LowBalanceWarning) < 0 {
		o.Out.WarnToUser("Balance is below %s %s, the deployment may run out of gas",
			utils.FormatEther(o.LowBalanceWarning), constants.NativeSymbol)
	}
	return balance
}

func (o *Orchestrator) deploy(
	ctx context.Context,
	log *zap.Logger,
	step Step,
	deployer *key.Account,
	req models.DeployRequest,
) (*models.Deployment, error) {
	name := string(step)
	if o.Observer != nil {
		o.Observer.StepStarted(name)
		req.OnSubmitted = func(txHash common.Hash) {
			log.Debug("waiting for confirmation", zap.String("contract", req.ContractName), zap.String("txHash", txHash.Hex()))
			o.Observer.WaitingFor(name, fmt.Sprintf("waiting for %s confirmation (tx %s)", req.ContractName, txHash.Hex()))
		}
	}
	d, err := o.Factory.Deploy(ctx, deployer, req)
	if err != nil {
		derr := &DeploymentError{Step: step, Contract: req.ContractName, Err: err}
		if o.Observer != nil {
			o.Observer.StepFailed(name, derr)
		}
		log.Error("deployment failed", zap.String("contract", req.ContractName), zap.Error(err))
		return nil, derr
	}
	if o.Observer != nil {
		o.Observer.StepCompleted(name, fmt.Sprintf("block %d", d.BlockNumber))
	}
	return d, nil
}
