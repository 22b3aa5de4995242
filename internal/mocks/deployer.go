// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"github.com/stretchr/testify/mock"
)

// SignerProvider is a mock implementation of deployer.SignerProvider
type SignerProvider struct {
	mock.Mock
}

func (m *SignerProvider) Accounts(ctx context.Context) ([]*key.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*key.Account), args.Error(1)
}

// Ledger is a mock implementation of deployer.Ledger
type Ledger struct {
	mock.Mock
}

func (m *Ledger) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// ContractFactory is a mock implementation of deployer.ContractFactory
type ContractFactory struct {
	mock.Mock
}

func (m *ContractFactory) Deploy(ctx context.Context, account *key.Account, req models.DeployRequest) (*models.Deployment, error) {
	args := m.Called(ctx, account, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

// Emitter is a mock implementation of deployer.Emitter
type Emitter struct {
	mock.Mock
}

func (m *Emitter) Emit(ctx context.Context, res *deployer.Result) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

// Confirmer is a mock implementation of deployer.Confirmer
type Confirmer struct {
	mock.Mock
}

func (m *Confirmer) ConfirmDeployment(plan deployer.Plan) (bool, error) {
	args := m.Called(plan)
	return args.Bool(0), args.Error(1)
}
