// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"go.uber.org/zap"
)

// deployContract is a variable for testing purposes to allow mocking tx submission
var deployContract = bind.DeployContract

// Factory deploys contracts from compiled artifacts and waits for their
// confirmation.
type Factory struct {
	contracts      bind.ContractBackend
	confirmer      bind.DeployBackend
	store          *artifact.Store
	chainID        *big.Int
	gasLimit       uint64
	confirmTimeout time.Duration
	log            *zap.Logger
}

type FactoryParams struct {
	Store          *artifact.Store
	ChainID        *big.Int
	GasLimit       uint64
	ConfirmTimeout time.Duration
	Log            *zap.Logger
}

// NewFactory returns a Factory sending transactions through client.
func NewFactory(client *Client, params FactoryParams) *Factory {
	return newFactory(client.client, client.client, params)
}

func newFactory(contracts bind.ContractBackend, confirmer bind.DeployBackend, params FactoryParams) *Factory {
	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{
		contracts:      contracts,
		confirmer:      confirmer,
		store:          params.Store,
		chainID:        params.ChainID,
		gasLimit:       params.GasLimit,
		confirmTimeout: params.ConfirmTimeout,
		log:            log,
	}
}

// Deploy submits a creation transaction for req.ContractName signed by
// deployer and blocks until it is confirmed or confirmTimeout elapses.
func (f *Factory) Deploy(ctx context.Context, deployer *key.Account, req models.DeployRequest) (*models.Deployment, error) {
	art, err := f.store.Load(req.ContractName)
	if err != nil {
		return nil, err
	}
	if err := art.CheckConstructorArgs(len(req.Args)); err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(deployer.PrivateKey, f.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	if f.gasLimit > 0 {
		opts.GasLimit = f.gasLimit
	}

	address, tx, _, err := deployContract(opts, art.ABI, art.Bytecode, f.contracts, req.Args...)
	if err != nil {
		return nil, TransactionError(nil, err, "failed to submit %s deployment", req.ContractName)
	}
	f.log.Info("deployment submitted",
		zap.String("contract", req.ContractName),
		zap.String("txHash", tx.Hash().Hex()),
		zap.String("expectedAddress", address.Hex()),
	)
	if req.OnSubmitted != nil {
		req.OnSubmitted(tx.Hash())
	}

	receipt, err := f.waitConfirmed(ctx, tx)
	if err != nil {
		return nil, TransactionError(tx, err, "%s deployment not confirmed", req.ContractName)
	}
	deployed, err := f.checkReceipt(ctx, receipt, address)
	if err != nil {
		return nil, TransactionError(tx, err, "%s deployment failed", req.ContractName)
	}

	f.log.Info("deployment confirmed",
		zap.String("contract", req.ContractName),
		zap.String("address", deployed.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return &models.Deployment{
		ContractName:    req.ContractName,
		Address:         deployed,
		TxHash:          tx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		Deployer:        deployer.Address,
		ConstructorArgs: models.FormatArgs(req.Args),
	}, nil
}

func (f *Factory) waitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, f.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, f.confirmer, tx)
	if err != nil {
		// only our own deadline is a confirmation timeout; a cancelled parent is reported as is
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", constants.ErrConfirmationTimeout, f.confirmTimeout)
		}
		return nil, err
	}
	return receipt, nil
}

// checkReceipt validates a mined creation receipt and returns the address
// holding the new contract code.
func (f *Factory) checkReceipt(ctx context.Context, receipt *types.Receipt, expected common.Address) (common.Address, error) {
	if receipt.Status == types.ReceiptStatusFailed {
		return common.Address{}, constants.ErrDeploymentReverted
	}
	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = expected
	}
	if address != expected {
		f.log.Warn("receipt contract address differs from computed address",
			zap.String("receipt", address.Hex()),
			zap.String("computed", expected.Hex()),
		)
	}
	code, err := f.confirmer.CodeAt(ctx, address, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return common.Address{}, fmt.Errorf("%w: %s", constants.ErrNoContractCode, address.Hex())
	}
	return address, nil
}
