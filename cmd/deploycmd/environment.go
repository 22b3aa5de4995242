// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/evm"
	"go.uber.org/zap"
)

// environment is the connected target chain.
type environment struct {
	Ledger  deployer.Ledger
	Factory deployer.ContractFactory
	ChainID *big.Int
	RPCURL  string
	Close   func()
}

// newEnvironment is a variable for testing purposes to allow replacing the node
var newEnvironment = func(ctx context.Context, app *application.App) (*environment, error) {
	conf := app.Conf
	client, err := evm.Dial(ctx, conf.RPCURL, conf.RPCTimeout, app.Log)
	if err != nil {
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", conf.RPCURL, err)
	}
	if err := verifyChainID(conf.ChainID, chainID); err != nil {
		client.Close()
		return nil, err
	}
	version, err := client.ClientVersion(ctx)
	if err != nil {
		app.Log.Debug("web3_clientVersion not supported", zap.Error(err))
	}
	app.Log.Info("connected",
		zap.String("rpcURL", conf.RPCURL),
		zap.Stringer("chainID", chainID),
		zap.String("clientVersion", version),
	)
	factory := evm.NewFactory(client, evm.FactoryParams{
		Store:          artifact.NewStore(conf.ArtifactsDir),
		ChainID:        chainID,
		GasLimit:       conf.GasLimit,
		ConfirmTimeout: conf.ConfirmTimeout,
		Log:            app.Log,
	})
	return &environment{
		Ledger:  client,
		Factory: factory,
		ChainID: chainID,
		RPCURL:  client.URL(),
		Close:   client.Close,
	}, nil
}

// verifyChainID fails when a chain ID was configured and the node reports
// another one.
func verifyChainID(expected, actual *big.Int) error {
	if expected == nil || expected.Cmp(actual) == 0 {
		return nil
	}
	return fmt.Errorf("%w: configured %s, node reports %s", constants.ErrChainIDMismatch, expected, actual)
}
