// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/go-bip39"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
)

// MnemonicSource derives the account at m/44'/60'/0'/0/<index>.
type MnemonicSource struct {
	mnemonic string
	index    uint32
}

func NewMnemonicSource(mnemonic string, index uint32) *MnemonicSource {
	return &MnemonicSource{
		mnemonic: strings.Join(strings.Fields(mnemonic), " "),
		index:    index,
	}
}

func (*MnemonicSource) Type() SourceType {
	return SourceMnemonic
}

func (s *MnemonicSource) Available() bool {
	return s.mnemonic != ""
}

func (s *MnemonicSource) Load(_ context.Context) (*Account, error) {
	if !bip39.IsMnemonicValid(s.mnemonic) {
		return nil, fmt.Errorf("%w: mnemonic failed BIP39 validation", ErrInvalidKey)
	}
	pk, err := DeriveKey(bip39.NewSeed(s.mnemonic, ""), s.index)
	if err != nil {
		return nil, err
	}
	return &Account{
		Address:    common.Address(crypto.PubkeyToAddress(pk.PublicKey)),
		PrivateKey: pk,
		Source:     SourceMnemonic,
	}, nil
}

// DeriveKey walks the BIP44 Ethereum path for the given address index.
func DeriveKey(seed []byte, index uint32) (*ecdsa.PrivateKey, error) {
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + constants.BIP44Purpose,
		hdkeychain.HardenedKeyStart + constants.EthCoinType,
		hdkeychain.HardenedKeyStart + 0, // account
		0,                               // external chain
		index,
	}
	node := masterKey
	for depth, child := range path {
		node, err = node.Derive(child)
		if err != nil {
			return nil, fmt.Errorf("failed to derive level %d: %w", depth+1, err)
		}
	}

	ecPrivKey, err := node.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get EC private key: %w", err)
	}
	return ecPrivKey.ToECDSA(), nil
}
