// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key resolves the deployer account from one of several credential
// sources:
// - a raw hex private key
// - a BIP39 mnemonic, derived along m/44'/60'/0'/0/<index>
// - an encrypted JSON keystore file
package key

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/config"
)

// SourceType identifies where an account was loaded from
type SourceType string

const (
	SourcePrivateKey SourceType = "private-key"
	SourceMnemonic   SourceType = "mnemonic"
	SourceKeystore   SourceType = "keystore"
)

var ErrInvalidKey = errors.New("invalid key material")

// Account is a signing identity for the target chain.
type Account struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
	Source     SourceType
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s)", a.Address.Hex(), a.Source)
}

// Source loads at most one account.
type Source interface {
	Type() SourceType
	// Available reports whether the source has credentials configured at all
	Available() bool
	Load(ctx context.Context) (*Account, error)
}

// ChainProvider yields the accounts of every available source, in order.
type ChainProvider struct {
	sources []Source
}

func NewChainProvider(sources ...Source) *ChainProvider {
	return &ChainProvider{sources: sources}
}

// Accounts returns one account per available source. Sources without
// credentials are skipped; an available source that fails to load is an error.
func (p *ChainProvider) Accounts(ctx context.Context) ([]*Account, error) {
	var accounts []*Account
	for _, s := range p.sources {
		if !s.Available() {
			continue
		}
		acct, err := s.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s account: %w", s.Type(), err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// FromCredentials builds the provider chain for cfg: private key, then
// mnemonic, then keystore.
func FromCredentials(creds config.Credentials) *ChainProvider {
	return NewChainProvider(
		NewPrivateKeySource(creds.PrivateKey),
		NewMnemonicSource(creds.Mnemonic, creds.HDIndex),
		NewKeystoreSource(creds.KeyFile, creds.KeyPassword),
	)
}
